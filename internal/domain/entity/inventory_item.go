package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa materia prima en la sucursal.
// QuantityOnHand se espera >= 0 en régimen estable, pero la primitiva de
// ajuste acepta deltas arbitrarios: es el caller quien decide si permite
// sobreventa (ver política POS_ALLOW_OVERSELL).
type InventoryItem struct {
	ID             string
	Name           string
	QuantityOnHand decimal.Decimal
	MinThreshold   decimal.Decimal
	UnitMeasure    string
	BranchID       string // vacío = registro global
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BelowThreshold indica si el ítem está por debajo de su mínimo de reposición.
func (i *InventoryItem) BelowThreshold() bool {
	return i.QuantityOnHand.LessThan(i.MinThreshold)
}
