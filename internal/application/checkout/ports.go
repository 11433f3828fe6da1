package checkout

import (
	"context"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// TxRunner unidad de trabajo de la liquidación: ejecuta fn con repositorios
// atados a una misma transacción de BD. Todos los deltas del commit
// (transacción de venta, consumo de materia prima, stock directo) se aplican
// en un solo paso: si fn retorna error, nada queda aplicado.
type TxRunner interface {
	RunSettlement(ctx context.Context, fn func(
		txRepo repository.TransactionRepository,
		itemRepo repository.InventoryItemRepository,
		productRepo repository.ProductRepository,
	) error) error
}
