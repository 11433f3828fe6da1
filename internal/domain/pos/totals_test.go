package pos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/pos"
)

// ──────────────────────────────────────────────────────────────────────────────
// Ley de totales: para todo carrito,
//   grandTotal == max(0, subtotal - descuentosDeLínea - descuentoDeOrden)
// Los totales se derivan siempre, nunca se almacenan.
// ──────────────────────────────────────────────────────────────────────────────

func producto(id string, price float64) *entity.Product {
	return &entity.Product{ID: id, Name: "Producto " + id, UnitPrice: decimal.NewFromFloat(price)}
}

func TestAddLine_NuevaLineaYIncremento(t *testing.T) {
	cart := entity.Cart{}
	p := producto("p1", 100)

	cart = pos.AddLine(cart, p)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(1), cart.Lines[0].Quantity)
	assert.True(t, cart.Lines[0].UnitPrice.Equal(decimal.NewFromInt(100)),
		"la línea copia el precio de lista del producto")

	// Agregar el mismo producto incrementa la cantidad, no crea otra línea
	cart = pos.AddLine(cart, p)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(2), cart.Lines[0].Quantity)
}

func TestAddLine_NoMutaElCarritoDeEntrada(t *testing.T) {
	original := pos.AddLine(entity.Cart{}, producto("p1", 50))
	_ = pos.AddLine(original, producto("p1", 50))

	assert.Equal(t, int64(1), original.Lines[0].Quantity,
		"las transformaciones son puras: el valor de entrada no cambia")
}

func TestSetLineQuantity_AcotaEnCeroYElimina(t *testing.T) {
	cart := pos.AddLine(entity.Cart{}, producto("p1", 100))
	cart = pos.SetLineQuantity(cart, "p1", 4) // 1 + 4 = 5
	assert.Equal(t, int64(5), cart.Lines[0].Quantity)

	cart = pos.SetLineQuantity(cart, "p1", -10) // llega a 0 => se elimina
	assert.Empty(t, cart.Lines, "una línea que llega a 0 sale del carrito")
}

func TestSetLinePriceYDescuento_AcotanEnCero(t *testing.T) {
	cart := pos.AddLine(entity.Cart{}, producto("p1", 100))

	cart = pos.SetLinePrice(cart, "p1", decimal.NewFromInt(-5))
	assert.True(t, cart.Lines[0].UnitPrice.IsZero())

	cart = pos.SetLineDiscount(cart, "p1", decimal.NewFromInt(-3))
	assert.True(t, cart.Lines[0].PerUnitDiscount.IsZero())
}

func TestGrandTotal_LeyDeTotales(t *testing.T) {
	cart := entity.Cart{
		Lines: []entity.CartLine{
			{ProductID: "a", Quantity: 3, UnitPrice: decimal.NewFromInt(100), PerUnitDiscount: decimal.NewFromInt(20)},
			{ProductID: "b", Quantity: 2, UnitPrice: decimal.NewFromInt(50), PerUnitDiscount: decimal.Zero},
		},
		OrderDiscount: decimal.NewFromInt(40),
	}

	assert.True(t, pos.Subtotal(cart).Equal(decimal.NewFromInt(400)), "subtotal = 300 + 100")
	assert.True(t, pos.LineDiscountTotal(cart).Equal(decimal.NewFromInt(60)), "descuentos de línea = 20*3")
	assert.True(t, pos.GrandTotal(cart).Equal(decimal.NewFromInt(300)), "400 - 60 - 40 = 300")
}

// El descuento por unidad NO se acota contra el precio de la línea: una línea
// puede aportar negativo y solo el piso a nivel de orden lo absorbe.
func TestGrandTotal_DescuentoMayorAlPrecioSoloSePisaEnLaOrden(t *testing.T) {
	cart := entity.Cart{
		Lines: []entity.CartLine{
			{ProductID: "a", Quantity: 1, UnitPrice: decimal.NewFromInt(10), PerUnitDiscount: decimal.NewFromInt(25)},
			{ProductID: "b", Quantity: 1, UnitPrice: decimal.NewFromInt(12), PerUnitDiscount: decimal.Zero},
		},
	}

	// 22 - 25 = -3 => piso en 0
	assert.True(t, pos.GrandTotal(cart).IsZero(),
		"el piso max(0, ...) aplica sobre el total de la orden, no por línea")
}

func TestClear_VaciaLineasYDescuentoDeOrden(t *testing.T) {
	cart := pos.AddLine(entity.Cart{}, producto("p1", 100))
	cart = pos.SetOrderDiscount(cart, decimal.NewFromInt(15))

	cart = pos.Clear(cart)

	assert.Empty(t, cart.Lines)
	assert.True(t, cart.OrderDiscount.IsZero())
}
