package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// TransactionRepository puerto de persistencia para transacciones de venta.
// Las transacciones son inmutables: no hay Update; Delete existe solo como
// corrección administrativa.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	List(limit, offset int) ([]*entity.Transaction, error)
	Delete(id string) error
}
