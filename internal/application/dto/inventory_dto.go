package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest alta de materia prima en una sucursal.
type CreateInventoryItemRequest struct {
	Name           string          `json:"name" validate:"required"`
	QuantityOnHand decimal.Decimal `json:"quantity_on_hand"`
	MinThreshold   decimal.Decimal `json:"min_threshold"`
	UnitMeasure    string          `json:"unit_measure"`
	BranchID       string          `json:"branch_id"`
}

// AdjustQuantityRequest delta con signo: positivo repone, negativo consume.
// La primitiva no acota por abajo.
type AdjustQuantityRequest struct {
	ItemID string          `json:"item_id" validate:"required"`
	Delta  decimal.Decimal `json:"delta"`
}

// InventoryItemResponse salida de un ítem de inventario.
type InventoryItemResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	QuantityOnHand decimal.Decimal `json:"quantity_on_hand"`
	MinThreshold   decimal.Decimal `json:"min_threshold"`
	UnitMeasure    string          `json:"unit_measure"`
	BranchID       string          `json:"branch_id,omitempty"`
	BelowThreshold bool            `json:"below_threshold"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
