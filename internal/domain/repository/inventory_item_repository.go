package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// InventoryItemRepository puerto de persistencia para materia prima.
// AdjustQuantity suma delta (con signo) a la existencia, sin acotar por
// abajo: el caller decide si permite stock negativo.
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetForUpdate(id string) (*entity.InventoryItem, error)
	AdjustQuantity(id string, delta decimal.Decimal) error
	Update(item *entity.InventoryItem) error
	Delete(id string) error
	List() ([]*entity.InventoryItem, error)
	GetByIDs(ids []string) (map[string]*entity.InventoryItem, error)
}
