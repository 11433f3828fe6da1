package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/pos"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// UseCase libro de materia prima por sucursal. Adjust es la primitiva del
// espécimen original: suma el delta con signo, sin acotar por abajo; el
// motor de liquidación consume a través de ella.
type UseCase struct {
	repo repository.InventoryItemRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.InventoryItemRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create alta de materia prima.
func (uc *UseCase) Create(in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:             uuid.New().String(),
		Name:           in.Name,
		QuantityOnHand: in.QuantityOnHand,
		MinThreshold:   in.MinThreshold,
		UnitMeasure:    in.UnitMeasure,
		BranchID:       in.BranchID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Adjust suma delta a la existencia: positivo repone, negativo consume.
// Sin acote inferior; un delta cero se rechaza como entrada inválida.
func (uc *UseCase) Adjust(in dto.AdjustQuantityRequest) (*dto.InventoryItemResponse, error) {
	if in.ItemID == "" || in.Delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.AdjustQuantity(in.ItemID, in.Delta); err != nil {
		return nil, err
	}
	item, err = uc.repo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List inventario visible en el alcance dado (filtro de sucursal aplicado
// antes de exponer la colección a cualquier consumidor).
func (uc *UseCase) List(scope string) ([]dto.InventoryItemResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items = pos.ScopeInventory(items, scope)
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *toItemResponse(item))
	}
	return out, nil
}

// GetByID devuelve un ítem por ID.
func (uc *UseCase) GetByID(id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Delete elimina un ítem del libro.
func (uc *UseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// LowStock ítems por debajo de su mínimo de reposición en el alcance.
func (uc *UseCase) LowStock(scope string) ([]dto.InventoryItemResponse, error) {
	items, err := uc.List(scope)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0)
	for _, item := range items {
		if item.BelowThreshold {
			out = append(out, item)
		}
	}
	return out, nil
}

func toItemResponse(i *entity.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:             i.ID,
		Name:           i.Name,
		QuantityOnHand: i.QuantityOnHand,
		MinThreshold:   i.MinThreshold,
		UnitMeasure:    i.UnitMeasure,
		BranchID:       i.BranchID,
		BelowThreshold: i.BelowThreshold(),
		UpdatedAt:      i.UpdatedAt,
	}
}
