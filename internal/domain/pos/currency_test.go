package pos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/pos"
)

// Ley del monto en divisa: con total 1500 y tasa 300, el monto extranjero es
// round(1500/300, 2) = 5.00; si la tasa cambia a 250 sin otro cambio, 6.00.

func TestForeignAmount_DerivacionYReaccionALaTasa(t *testing.T) {
	total := decimal.NewFromInt(1500)

	fa, err := pos.ForeignAmount(total, decimal.NewFromInt(300))
	require.NoError(t, err)
	assert.True(t, fa.Equal(decimal.NewFromInt(5)), "1500 / 300 = 5.00")

	fa, err = pos.ForeignAmount(total, decimal.NewFromInt(250))
	require.NoError(t, err)
	assert.True(t, fa.Equal(decimal.NewFromInt(6)), "cambiar la tasa recalcula el monto")
}

func TestForeignAmount_RedondeoADosDecimales(t *testing.T) {
	fa, err := pos.ForeignAmount(decimal.NewFromInt(1000), decimal.NewFromInt(355))
	require.NoError(t, err)
	assert.Equal(t, "2.82", fa.StringFixed(2))
}

func TestForeignAmount_TasaInvalidaEsErrorDeConfiguracion(t *testing.T) {
	_, err := pos.ForeignAmount(decimal.NewFromInt(100), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrCurrencyConfig)

	_, err = pos.ForeignAmount(decimal.NewFromInt(100), decimal.NewFromInt(-3))
	assert.ErrorIs(t, err, domain.ErrCurrencyConfig)
}

func TestForeignFields_ModoInactivoNoAdjuntaNada(t *testing.T) {
	cart := entity.Cart{
		Lines: []entity.CartLine{{ProductID: "a", Quantity: 1, UnitPrice: decimal.NewFromInt(100)}},
	}

	amount, code, rate, err := pos.ForeignFields(cart)
	require.NoError(t, err)
	assert.Nil(t, amount)
	assert.Nil(t, rate)
	assert.Empty(t, code)
}

func TestForeignFields_ModoActivoDerivaDesdeElTotal(t *testing.T) {
	cart := entity.Cart{
		Lines: []entity.CartLine{{ProductID: "a", Quantity: 3, UnitPrice: decimal.NewFromInt(500)}},
		Foreign: entity.ForeignMode{
			Active:          true,
			ForeignCurrency: "USD",
			ExchangeRate:    decimal.NewFromInt(300),
		},
	}

	amount, code, rate, err := pos.ForeignFields(cart)
	require.NoError(t, err)
	require.NotNil(t, amount)
	require.NotNil(t, rate)
	assert.True(t, amount.Equal(decimal.NewFromInt(5)), "1500 / 300 = 5.00")
	assert.Equal(t, "USD", code)
	assert.True(t, rate.Equal(decimal.NewFromInt(300)))
}

func TestValidCurrencyCode(t *testing.T) {
	assert.True(t, pos.ValidCurrencyCode("USD"))
	assert.True(t, pos.ValidCurrencyCode("VES"))
	assert.False(t, pos.ValidCurrencyCode("DOLARES"))
	assert.False(t, pos.ValidCurrencyCode(""))
}
