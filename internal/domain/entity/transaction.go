package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción.
const (
	TransactionTypeSale = "SALE"
)

// Métodos de pago aceptados en caja.
const (
	PaymentCash     = "CASH"
	PaymentCard     = "CARD"
	PaymentTransfer = "TRANSFER"
)

// Transaction registro inmutable de una venta liquidada. Solo se elimina como
// corrección administrativa; nunca se actualiza.
// Los campos Foreign* solo se llenan si el carrito tenía modo divisa activo.
type Transaction struct {
	ID              string
	Amount          decimal.Decimal
	Currency        string
	ForeignAmount   *decimal.Decimal
	ForeignCurrency string
	ExchangeRate    *decimal.Decimal
	PaymentMethod   string
	Type            string
	Timestamp       time.Time
	BranchID        string
	AccountID       string
	CustomerID      string // vacío = venta de mostrador (walk-in)
	StaffID         string
}
