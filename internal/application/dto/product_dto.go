package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComponentInput una línea de receta: ítem de inventario y consumo por unidad.
type ComponentInput struct {
	InventoryItemID string          `json:"inventory_item_id"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
}

// CreateProductRequest entrada para crear un producto. Sin validaciones más
// allá de los campos requeridos: precio y stock pueden ser cero.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Category    string           `json:"category"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	UnitMeasure string           `json:"unit_measure"`
	DirectStock int64            `json:"direct_stock"`
	Components  []ComponentInput `json:"components"`
	BranchID    string           `json:"branch_id"`
}

// UpdateProductRequest actualización parcial; solo los campos no nulos se aplican.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	UnitMeasure *string          `json:"unit_measure"`
	DirectStock *int64           `json:"direct_stock"`
	Components  []ComponentInput `json:"components"`
	BranchID    *string          `json:"branch_id"`
}

// ImportProductsRequest lote de importación. Cada registro recibe un ID
// fresco; no hay de-duplicación.
type ImportProductsRequest struct {
	Products []CreateProductRequest `json:"products"`
}

// ProductResponse salida de un producto, con disponibilidad ya resuelta por
// la receta (AvailableUnits).
type ProductResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	UnitPrice      decimal.Decimal  `json:"unit_price"`
	UnitMeasure    string           `json:"unit_measure"`
	DirectStock    int64            `json:"direct_stock"`
	Components     []ComponentInput `json:"components,omitempty"`
	BranchID       string           `json:"branch_id,omitempty"`
	AvailableUnits int64            `json:"available_units"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
