package backup

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
	"github.com/jhoicas/PuntoVenta-api/pkg/logger"
)

// Snapshot estado completo respaldable del núcleo POS.
type Snapshot struct {
	GeneratedAt  time.Time               `json:"generated_at"`
	Products     []*entity.Product       `json:"products"`
	Inventory    []*entity.InventoryItem `json:"inventory"`
	Transactions []*entity.Transaction   `json:"transactions"`
}

// CloudBackup colaborador externo de respaldo fuera de banda. Push y Pull son
// fire-and-forget desde la perspectiva del núcleo: sin reintentos ni backoff;
// un push fallido simplemente no avanza el marcador de última sincronización.
type CloudBackup interface {
	Push(ctx context.Context, snapshot *Snapshot) error
	Pull(ctx context.Context) (*Snapshot, error)
}

// UseCase orquesta el respaldo: arma el snapshot desde los repositorios y lo
// empuja al colaborador. Irrelevante para la corrección por venta.
type UseCase struct {
	productRepo repository.ProductRepository
	itemRepo    repository.InventoryItemRepository
	txRepo      repository.TransactionRepository
	cloud       CloudBackup
	log         *logger.Logger

	mu         sync.Mutex
	lastSynced time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	productRepo repository.ProductRepository,
	itemRepo repository.InventoryItemRepository,
	txRepo repository.TransactionRepository,
	cloud CloudBackup,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		productRepo: productRepo,
		itemRepo:    itemRepo,
		txRepo:      txRepo,
		cloud:       cloud,
		log:         log,
	}
}

// snapshotTxLimit cuántas transacciones entran en un snapshot.
const snapshotTxLimit = 10000

// Sync arma y empuja un snapshot. Solo si el push tuvo éxito se avanza el
// marcador de última sincronización; el caller decide si reintenta.
func (uc *UseCase) Sync(ctx context.Context) error {
	snapshot, err := uc.buildSnapshot()
	if err != nil {
		return err
	}
	if err := uc.cloud.Push(ctx, snapshot); err != nil {
		uc.log.Warn().Err(err).Msg("respaldo en la nube falló; marcador sin avanzar")
		return err
	}
	uc.mu.Lock()
	uc.lastSynced = snapshot.GeneratedAt
	uc.mu.Unlock()
	uc.log.Info().Time("generated_at", snapshot.GeneratedAt).Msg("respaldo sincronizado")
	return nil
}

// Restore trae el último snapshot remoto y lo entrega al caller. Aplicarlo
// sobre la BD es una operación administrativa fuera de este núcleo.
func (uc *UseCase) Restore(ctx context.Context) (*Snapshot, error) {
	return uc.cloud.Pull(ctx)
}

// LastSynced marcador de última sincronización exitosa (cero si nunca).
func (uc *UseCase) LastSynced() time.Time {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.lastSynced
}

func (uc *UseCase) buildSnapshot() (*Snapshot, error) {
	products, err := uc.productRepo.List(snapshotTxLimit, 0)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	txs, err := uc.txRepo.List(snapshotTxLimit, 0)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		GeneratedAt:  time.Now(),
		Products:     products,
		Inventory:    items,
		Transactions: txs,
	}, nil
}
