package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible en el punto de venta.
// Con Components vacío es un producto de stock directo: su disponibilidad
// la limita DirectStock. Con Components no vacío es un producto compuesto:
// su disponibilidad la calcula la receta (BOM) sobre el inventario de
// materia prima; DirectStock se ignora para disponibilidad pero igual se
// descuenta en la venta si es mayor que cero (comportamiento heredado del
// POS original, ver motor de liquidación).
type Product struct {
	ID          string
	Name        string
	Category    string
	UnitPrice   decimal.Decimal
	UnitMeasure string
	DirectStock int64
	Components  []Component
	BranchID    string // vacío = producto global, visible en todas las sucursales
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Component una línea de la receta: cuánta materia prima consume una unidad vendida.
type Component struct {
	InventoryItemID string
	QuantityPerUnit decimal.Decimal // > 0
}

// IsComposite indica si la disponibilidad del producto se calcula por receta.
func (p *Product) IsComposite() bool {
	return len(p.Components) > 0
}
