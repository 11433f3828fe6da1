package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialAccount cuenta de depósito candidata para el pago de una venta
// (caja, banco, billetera). El motor solo referencia su ID.
type FinancialAccount struct {
	ID        string
	Name      string
	Kind      string // CASH | BANK | WALLET
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
