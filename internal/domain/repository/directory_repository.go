package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// Puertos de los colaboradores externos del motor (directorios de clientes,
// cuentas, operadores y sucursales). El motor solo los consulta; su gestión
// completa vive fuera de este núcleo.

// CustomerRepository directorio de clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
}

// AccountRepository cuentas financieras candidatas a depósito.
type AccountRepository interface {
	Create(account *entity.FinancialAccount) error
	GetByID(id string) (*entity.FinancialAccount, error)
	List() ([]*entity.FinancialAccount, error)
}

// StaffRepository directorio de operadores.
type StaffRepository interface {
	Create(staff *entity.Staff) error
	GetByID(id string) (*entity.Staff, error)
	GetByUsername(username string) (*entity.Staff, error)
}

// BranchRepository sucursales del negocio.
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	List() ([]*entity.Branch, error)
}
