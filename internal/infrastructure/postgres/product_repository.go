package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo adaptador de productos sobre PostgreSQL (usable con pool o tx).
// La receta vive en product_components y se carga junto con el producto.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste el producto y su receta.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, category, unit_price, unit_measure, direct_stock, branch_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.UnitPrice, product.UnitMeasure,
		product.DirectStock, product.BranchID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return r.replaceComponents(product.ID, product.Components)
}

// GetByID obtiene un producto con su receta; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, category, unit_price, unit_measure, direct_stock, branch_id, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.UnitPrice, &p.UnitMeasure, &p.DirectStock,
		&p.BranchID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	components, err := r.componentsOf(p.ID)
	if err != nil {
		return nil, err
	}
	p.Components = components
	return &p, nil
}

// Update actualiza producto y reemplaza su receta.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category = $3, unit_price = $4, unit_measure = $5,
			direct_stock = $6, branch_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.UnitPrice, product.UnitMeasure,
		product.DirectStock, product.BranchID, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return r.replaceComponents(product.ID, product.Components)
}

// UpdateDirectStock actualiza solo el stock directo (lo usa el motor de
// liquidación dentro de su transacción).
func (r *ProductRepo) UpdateDirectStock(id string, directStock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET direct_stock = $2, updated_at = now() WHERE id = $1`,
		id, directStock,
	)
	if err != nil {
		return fmt.Errorf("update direct stock: %w", err)
	}
	return nil
}

// Delete elimina el producto y su receta.
func (r *ProductRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM product_components WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("delete components: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List lista productos con paginación, receta incluida.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, category, unit_price, unit_measure, direct_stock, branch_id, created_at, updated_at
		FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.UnitPrice, &p.UnitMeasure,
			&p.DirectStock, &p.BranchID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range list {
		components, err := r.componentsOf(p.ID)
		if err != nil {
			return nil, err
		}
		p.Components = components
	}
	return list, nil
}

func (r *ProductRepo) componentsOf(productID string) ([]entity.Component, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT inventory_item_id, quantity_per_unit FROM product_components WHERE product_id = $1`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("get components: %w", err)
	}
	defer rows.Close()
	var components []entity.Component
	for rows.Next() {
		var c entity.Component
		if err := rows.Scan(&c.InventoryItemID, &c.QuantityPerUnit); err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		components = append(components, c)
	}
	return components, rows.Err()
}

func (r *ProductRepo) replaceComponents(productID string, components []entity.Component) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM product_components WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear components: %w", err)
	}
	for _, c := range components {
		if _, err := r.q.Exec(context.Background(),
			`INSERT INTO product_components (product_id, inventory_item_id, quantity_per_unit) VALUES ($1, $2, $3)`,
			productID, c.InventoryItemID, c.QuantityPerUnit); err != nil {
			return fmt.Errorf("insert component: %w", err)
		}
	}
	return nil
}
