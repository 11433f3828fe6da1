package backup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/application/backup"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/pkg/logger"
)

type fakeProductRepo struct{ products []*entity.Product }

func (r *fakeProductRepo) Create(p *entity.Product) error                    { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error)        { return nil, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error                    { return nil }
func (r *fakeProductRepo) UpdateDirectStock(id string, stock int64) error    { return nil }
func (r *fakeProductRepo) Delete(id string) error                            { return nil }
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return r.products, nil }

type fakeItemRepo struct{ items []*entity.InventoryItem }

func (r *fakeItemRepo) Create(i *entity.InventoryItem) error                  { return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error)      { return nil, nil }
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) { return nil, nil }
func (r *fakeItemRepo) AdjustQuantity(id string, delta decimal.Decimal) error { return nil }
func (r *fakeItemRepo) Update(i *entity.InventoryItem) error                  { return nil }
func (r *fakeItemRepo) Delete(id string) error                                { return nil }
func (r *fakeItemRepo) List() ([]*entity.InventoryItem, error)                { return r.items, nil }
func (r *fakeItemRepo) GetByIDs(ids []string) (map[string]*entity.InventoryItem, error) {
	return nil, nil
}

type fakeTxRepo struct{ txs []*entity.Transaction }

func (r *fakeTxRepo) Create(t *entity.Transaction) error              { return nil }
func (r *fakeTxRepo) GetByID(id string) (*entity.Transaction, error)  { return nil, nil }
func (r *fakeTxRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	return r.txs, nil
}
func (r *fakeTxRepo) Delete(id string) error { return nil }

type fakeCloud struct {
	pushed []*backup.Snapshot
	pushEr error
	stored *backup.Snapshot
}

func (c *fakeCloud) Push(_ context.Context, s *backup.Snapshot) error {
	if c.pushEr != nil {
		return c.pushEr
	}
	c.pushed = append(c.pushed, s)
	c.stored = s
	return nil
}

func (c *fakeCloud) Pull(_ context.Context) (*backup.Snapshot, error) {
	return c.stored, nil
}

func newBackupUC(cloud *fakeCloud) *backup.UseCase {
	return backup.NewUseCase(
		&fakeProductRepo{products: []*entity.Product{{ID: "p1"}}},
		&fakeItemRepo{items: []*entity.InventoryItem{{ID: "i1"}}},
		&fakeTxRepo{},
		cloud,
		logger.Nop(),
	)
}

func TestSync_AvanzaMarcadorSoloEnExito(t *testing.T) {
	cloud := &fakeCloud{}
	uc := newBackupUC(cloud)
	require.True(t, uc.LastSynced().IsZero())

	require.NoError(t, uc.Sync(context.Background()))
	first := uc.LastSynced()
	assert.False(t, first.IsZero())
	require.Len(t, cloud.pushed, 1)
	assert.Len(t, cloud.pushed[0].Products, 1)
	assert.Len(t, cloud.pushed[0].Inventory, 1)

	// Un push fallido no mueve el marcador.
	cloud.pushEr = errors.New("remoto caído")
	assert.Error(t, uc.Sync(context.Background()))
	assert.Equal(t, first, uc.LastSynced())
}

func TestRestore_DevuelveElUltimoSnapshot(t *testing.T) {
	cloud := &fakeCloud{}
	uc := newBackupUC(cloud)
	require.NoError(t, uc.Sync(context.Background()))

	snapshot, err := uc.Restore(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Len(t, snapshot.Products, 1)
}
