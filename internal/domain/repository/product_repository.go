package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos del catálogo.
// Las implementaciones cargan Components junto con el producto.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateDirectStock(id string, directStock int64) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Product, error)
}
