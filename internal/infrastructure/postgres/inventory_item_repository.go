package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo adaptador de materia prima sobre PostgreSQL (pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const itemColumns = `id, name, quantity_on_hand, min_threshold, unit_measure, branch_id, created_at, updated_at`

// Create alta de materia prima.
func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.QuantityOnHand, item.MinThreshold, item.UnitMeasure,
		item.BranchID, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem; nil si no existe.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el ítem bloqueando la fila (SELECT FOR UPDATE) para
// el commit de la liquidación.
func (r *InventoryItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.get(id, true)
}

func (r *InventoryItemRepo) get(id string, forUpdate bool) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var i entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Name, &i.QuantityOnHand, &i.MinThreshold, &i.UnitMeasure,
		&i.BranchID, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &i, nil
}

// AdjustQuantity suma delta (con signo) a la existencia. Sin acote inferior:
// la primitiva acepta dejar la existencia negativa.
func (r *InventoryItemRepo) AdjustQuantity(id string, delta decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET quantity_on_hand = quantity_on_hand + $2, updated_at = now() WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust quantity: %w", err)
	}
	return nil
}

// Update actualiza los datos del ítem.
func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET name = $2, quantity_on_hand = $3, min_threshold = $4,
			unit_measure = $5, branch_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.QuantityOnHand, item.MinThreshold, item.UnitMeasure,
		item.BranchID, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// Delete elimina el ítem.
func (r *InventoryItemRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

// List lista todo el libro (el filtro de sucursal se aplica en la capa de
// aplicación antes de exponer la colección).
func (r *InventoryItemRepo) List() ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+itemColumns+` FROM inventory_items ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var i entity.InventoryItem
		if err := rows.Scan(&i.ID, &i.Name, &i.QuantityOnHand, &i.MinThreshold,
			&i.UnitMeasure, &i.BranchID, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// GetByIDs carga un conjunto de ítems por ID en un mapa (para la resolución
// de receta). Los IDs inexistentes simplemente no aparecen.
func (r *InventoryItemRepo) GetByIDs(ids []string) (map[string]*entity.InventoryItem, error) {
	if len(ids) == 0 {
		return map[string]*entity.InventoryItem{}, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT `+itemColumns+` FROM inventory_items WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get inventory items by ids: %w", err)
	}
	defer rows.Close()
	out := make(map[string]*entity.InventoryItem, len(ids))
	for rows.Next() {
		var i entity.InventoryItem
		if err := rows.Scan(&i.ID, &i.Name, &i.QuantityOnHand, &i.MinThreshold,
			&i.UnitMeasure, &i.BranchID, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		out[i.ID] = &i
	}
	return out, rows.Err()
}
