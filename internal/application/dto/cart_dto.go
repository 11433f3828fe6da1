package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// AddLineRequest agrega una unidad de un producto al carrito.
type AddLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// SetQuantityRequest delta sobre la cantidad de una línea (acota en >= 0).
type SetQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Delta     int64  `json:"delta"`
}

// SetAmountRequest fija precio o descuento de una línea (acota en >= 0).
type SetAmountRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Value     decimal.Decimal `json:"value"`
}

// SetOrderDiscountRequest descuento global de la orden.
type SetOrderDiscountRequest struct {
	Value decimal.Decimal `json:"value"`
}

// SetCustomerRequest asocia un cliente (vacío = venta de mostrador).
type SetCustomerRequest struct {
	CustomerID string `json:"customer_id"`
}

// SetForeignModeRequest configura el modo divisa del carrito.
type SetForeignModeRequest struct {
	Active          bool            `json:"active"`
	ForeignCurrency string          `json:"foreign_currency"`
	ExchangeRate    decimal.Decimal `json:"exchange_rate"`
}

// CartResponse estado del carrito con sus totales derivados.
type CartResponse struct {
	Status            string            `json:"status"`
	Lines             []entity.CartLine `json:"lines"`
	OrderDiscount     decimal.Decimal   `json:"order_discount"`
	CustomerID        string            `json:"customer_id,omitempty"`
	Currency          string            `json:"currency"`
	Subtotal          decimal.Decimal   `json:"subtotal"`
	LineDiscountTotal decimal.Decimal   `json:"line_discount_total"`
	GrandTotal        decimal.Decimal   `json:"grand_total"`
	ForeignAmount     *decimal.Decimal  `json:"foreign_amount,omitempty"`
	ForeignCurrency   string            `json:"foreign_currency,omitempty"`
	ExchangeRate      *decimal.Decimal  `json:"exchange_rate,omitempty"`
}
