package scope

import (
	"github.com/jhoicas/PuntoVenta-api/internal/application/checkout"
	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/pos"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// UseCase vista por sucursal: inventario y transacciones pasan por el filtro
// de alcance antes de exponerse a cualquier consumidor.
type UseCase struct {
	itemRepo repository.InventoryItemRepository
	txRepo   repository.TransactionRepository
}

// NewUseCase construye la vista.
func NewUseCase(itemRepo repository.InventoryItemRepository, txRepo repository.TransactionRepository) *UseCase {
	return &UseCase{itemRepo: itemRepo, txRepo: txRepo}
}

// View devuelve inventario y transacciones visibles desde el alcance dado
// ("ALL" o un ID de sucursal; los registros globales aparecen siempre).
func (uc *UseCase) View(scopeID string, txLimit, txOffset int) (*dto.ScopedViewResponse, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	txs, err := uc.txRepo.List(txLimit, txOffset)
	if err != nil {
		return nil, err
	}

	items = pos.ScopeInventory(items, scopeID)
	txs = pos.ScopeTransactions(txs, scopeID)

	out := &dto.ScopedViewResponse{Scope: scopeID}
	for _, item := range items {
		out.Inventory = append(out.Inventory, dto.InventoryItemResponse{
			ID:             item.ID,
			Name:           item.Name,
			QuantityOnHand: item.QuantityOnHand,
			MinThreshold:   item.MinThreshold,
			UnitMeasure:    item.UnitMeasure,
			BranchID:       item.BranchID,
			BelowThreshold: item.BelowThreshold(),
			UpdatedAt:      item.UpdatedAt,
		})
	}
	for _, t := range txs {
		out.Transactions = append(out.Transactions, *checkout.ToTransactionResponse(t))
	}
	return out, nil
}
