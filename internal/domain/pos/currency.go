package pos

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// ForeignAmount deriva el monto en divisa extranjera desde el total local:
// round(total / tasa, 2). Una tasa <= 0 es un error de configuración; la
// venta en moneda local sigue siendo posible desactivando el modo divisa.
func ForeignAmount(grandTotal, exchangeRate decimal.Decimal) (decimal.Decimal, error) {
	if !exchangeRate.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrCurrencyConfig
	}
	return grandTotal.Div(exchangeRate).Round(2), nil
}

// ForeignFields calcula los campos de divisa a adjuntar a la transacción.
// Con el modo inactivo no se adjunta nada (punteros nil). Se recalcula en
// cada lectura: nunca se guarda en el carrito.
func ForeignFields(cart entity.Cart) (amount *decimal.Decimal, code string, rate *decimal.Decimal, err error) {
	if !cart.Foreign.Active {
		return nil, "", nil, nil
	}
	total := GrandTotal(cart)
	if !total.GreaterThan(decimal.Zero) {
		return nil, "", nil, nil
	}
	fa, err := ForeignAmount(total, cart.Foreign.ExchangeRate)
	if err != nil {
		return nil, "", nil, err
	}
	r := cart.Foreign.ExchangeRate
	return &fa, cart.Foreign.ForeignCurrency, &r, nil
}

// ValidCurrencyCode valida un código ISO 4217 (ej. "USD", "VES").
func ValidCurrencyCode(code string) bool {
	_, err := currency.ParseISO(code)
	return err == nil
}
