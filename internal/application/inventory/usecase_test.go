package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/application/inventory"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

type fakeItemRepo struct {
	items map[string]*entity.InventoryItem
	order []string
}

func (r *fakeItemRepo) Create(i *entity.InventoryItem) error {
	r.items[i.ID] = i
	r.order = append(r.order, i.ID)
	return nil
}
func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) { return r.items[id], nil }
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.items[id], nil
}
func (r *fakeItemRepo) AdjustQuantity(id string, delta decimal.Decimal) error {
	if i, ok := r.items[id]; ok {
		i.QuantityOnHand = i.QuantityOnHand.Add(delta)
	}
	return nil
}
func (r *fakeItemRepo) Update(i *entity.InventoryItem) error { r.items[i.ID] = i; return nil }
func (r *fakeItemRepo) Delete(id string) error               { delete(r.items, id); return nil }
func (r *fakeItemRepo) List() ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, id := range r.order {
		if i, ok := r.items[id]; ok {
			out = append(out, i)
		}
	}
	return out, nil
}
func (r *fakeItemRepo) GetByIDs(ids []string) (map[string]*entity.InventoryItem, error) {
	out := map[string]*entity.InventoryItem{}
	for _, id := range ids {
		if i, ok := r.items[id]; ok {
			out[id] = i
		}
	}
	return out, nil
}

func seed(repo *fakeItemRepo, id, onHand, threshold, branch string) {
	repo.Create(&entity.InventoryItem{
		ID:             id,
		Name:           id,
		QuantityOnHand: decimal.RequireFromString(onHand),
		MinThreshold:   decimal.RequireFromString(threshold),
		BranchID:       branch,
	})
}

func TestAdjust_DeltaConSigno(t *testing.T) {
	repo := &fakeItemRepo{items: map[string]*entity.InventoryItem{}}
	seed(repo, "harina", "10", "0", "")
	uc := inventory.NewUseCase(repo)

	out, err := uc.Adjust(dto.AdjustQuantityRequest{ItemID: "harina", Delta: decimal.NewFromInt(5)})
	require.NoError(t, err)
	assert.Equal(t, "15", out.QuantityOnHand.String())

	out, err = uc.Adjust(dto.AdjustQuantityRequest{ItemID: "harina", Delta: decimal.NewFromInt(-20)})
	require.NoError(t, err)
	assert.Equal(t, "-5", out.QuantityOnHand.String(), "la primitiva no acota por abajo")
}

func TestAdjust_DeltaCeroEsInvalido(t *testing.T) {
	repo := &fakeItemRepo{items: map[string]*entity.InventoryItem{}}
	uc := inventory.NewUseCase(repo)
	_, err := uc.Adjust(dto.AdjustQuantityRequest{ItemID: "harina", Delta: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_ItemInexistente(t *testing.T) {
	repo := &fakeItemRepo{items: map[string]*entity.InventoryItem{}}
	uc := inventory.NewUseCase(repo)
	_, err := uc.Adjust(dto.AdjustQuantityRequest{ItemID: "nope", Delta: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FiltroDeSucursal(t *testing.T) {
	repo := &fakeItemRepo{items: map[string]*entity.InventoryItem{}}
	seed(repo, "global", "10", "0", "")
	seed(repo, "propio", "10", "0", "suc-1")
	seed(repo, "ajeno", "10", "0", "suc-2")
	uc := inventory.NewUseCase(repo)

	out, err := uc.List("suc-1")
	require.NoError(t, err)
	require.Len(t, out, 2, "ítems de la sucursal más los globales")

	all, err := uc.List(entity.ScopeAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestLowStock(t *testing.T) {
	repo := &fakeItemRepo{items: map[string]*entity.InventoryItem{}}
	seed(repo, "bajo", "2", "5", "")
	seed(repo, "ok", "20", "5", "")
	uc := inventory.NewUseCase(repo)

	out, err := uc.LowStock(entity.ScopeAll)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "bajo", out[0].ID)
}
