package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SetPaymentRequest método de pago y cuenta de depósito, ambos requeridos
// antes de habilitar el commit.
type SetPaymentRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
	AccountID     string `json:"account_id" validate:"required"`
}

// TransactionResponse salida de una transacción liquidada.
type TransactionResponse struct {
	ID              string           `json:"id"`
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	ForeignAmount   *decimal.Decimal `json:"foreign_amount,omitempty"`
	ForeignCurrency string           `json:"foreign_currency,omitempty"`
	ExchangeRate    *decimal.Decimal `json:"exchange_rate,omitempty"`
	PaymentMethod   string           `json:"payment_method"`
	Type            string           `json:"type"`
	Timestamp       time.Time        `json:"timestamp"`
	BranchID        string           `json:"branch_id,omitempty"`
	AccountID       string           `json:"account_id"`
	CustomerID      string           `json:"customer_id,omitempty"`
	StaffID         string           `json:"staff_id,omitempty"`
}

// ScopedViewResponse vista filtrada por sucursal: inventario + transacciones.
type ScopedViewResponse struct {
	Scope        string                  `json:"scope"`
	Inventory    []InventoryItemResponse `json:"inventory"`
	Transactions []TransactionResponse   `json:"transactions"`
}
