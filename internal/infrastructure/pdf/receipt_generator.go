// Package pdf renderiza el ticket de venta del punto de caja.
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────┐
//	│  HEADER: Ticket de venta + fecha     │
//	│  Sucursal / Operador                 │
//	│  ──────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.U | Desc │
//	│  ──────────────────────────────────  │
//	│  Subtotal / Descuentos / TOTAL       │
//	│  Equivalente en divisa (opcional)    │
//	└──────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/application/checkout"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 45, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ checkout.TicketGenerator = (*MarotoTicketGenerator)(nil)

// MarotoTicketGenerator implementa checkout.TicketGenerator usando Maroto v2.
type MarotoTicketGenerator struct {
	businessName string
}

// NewMarotoTicketGenerator construye el generador.
func NewMarotoTicketGenerator(businessName string) *MarotoTicketGenerator {
	return &MarotoTicketGenerator{businessName: businessName}
}

// GenerateTicket genera el PDF del ticket y devuelve sus bytes.
func (g *MarotoTicketGenerator) GenerateTicket(_ context.Context, data *checkout.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ticket de venta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(data.Lines) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del negocio + fecha (izq), sucursal y operador (der).
func (g *MarotoTicketGenerator) headerRow(data *checkout.ReceiptData) core.Row {
	fecha := data.GeneratedAt.Format("02/01/2006 15:04")
	sucursal := data.BranchID
	if sucursal == "" {
		sucursal = "—"
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.businessName, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("TICKET DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fecha, props.Text{Size: 8, Align: align.Right, Top: 1, Color: colorGray}),
			text.New("Sucursal: "+sucursal, props.Text{Size: 8, Align: align.Right, Top: 6, Color: colorGray}),
			text.New("Operador: "+data.StaffID, props.Text{Size: 8, Align: align.Right, Top: 11, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("P. Unit.", 3, align.Right),
		h("Desc./u", 3, align.Right),
	)
}

// tableLineRows: una fila por línea del carrito.
func tableLineRows(lines []entity.CartLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				l.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				l.PerUnitDiscount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRows: bloque de totales y, si aplica, el equivalente en divisa.
func totalsRows(data *checkout.ReceiptData) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: 1})
	}
	totalRow := func(l, v string) core.Row {
		return row.New(6).Add(col.New(5), col.New(4).Add(label(l)), col.New(3).Add(value(v)))
	}

	rows := []core.Row{
		totalRow("Subtotal:", money(data.Subtotal, data.Currency)),
		totalRow("Desc. por línea:", money(data.LineDiscounts.Neg(), data.Currency)),
		totalRow("Desc. de orden:", money(data.OrderDiscount.Neg(), data.Currency)),
		row.New(8).Add(
			col.New(5),
			col.New(4).Add(text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 1,
			})),
			col.New(3).Add(text.New(money(data.GrandTotal, data.Currency), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 1,
			})),
		),
	}

	if data.ForeignAmount != nil {
		detalle := fmt.Sprintf("Equivalente: %s %s (tasa %s)",
			data.ForeignAmount.StringFixed(2), data.ForeignCurrency,
			data.ExchangeRate.String())
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(detalle, props.Text{Size: 8, Align: align.Right, Color: colorGray, Top: 1, Right: 1}),
		)))
	}
	return rows
}

func money(v decimal.Decimal, currency string) string {
	return v.StringFixed(2) + " " + currency
}
