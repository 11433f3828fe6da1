// Package directory gestiona los colaboradores de la venta: clientes, cuentas
// de depósito y sucursales. CRUD mínimo; el motor de liquidación solo los
// referencia por ID.
package directory

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

type UseCase struct {
	customerRepo repository.CustomerRepository
	accountRepo  repository.AccountRepository
	branchRepo   repository.BranchRepository
}

func NewUseCase(
	customerRepo repository.CustomerRepository,
	accountRepo repository.AccountRepository,
	branchRepo repository.BranchRepository,
) *UseCase {
	return &UseCase{
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
		branchRepo:   branchRepo,
	}
}

func (uc *UseCase) CreateCustomer(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

func (uc *UseCase) GetCustomer(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

func (uc *UseCase) ListCustomers(limit, offset int) ([]dto.CustomerResponse, error) {
	customers, err := uc.customerRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

func (uc *UseCase) CreateAccount(in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	now := time.Now()
	account := &entity.FinancialAccount{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Kind:      in.Kind,
		Balance:   in.Balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

func (uc *UseCase) ListAccounts() ([]dto.AccountResponse, error) {
	accounts, err := uc.accountRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, *toAccountResponse(a))
	}
	return out, nil
}

func (uc *UseCase) CreateBranch(in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	now := time.Now()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.branchRepo.Create(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

func (uc *UseCase) ListBranches() ([]dto.BranchResponse, error) {
	branches, err := uc.branchRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, *toBranchResponse(b))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{ID: c.ID, Name: c.Name, TaxID: c.TaxID, Email: c.Email, Phone: c.Phone}
}

func toAccountResponse(a *entity.FinancialAccount) *dto.AccountResponse {
	return &dto.AccountResponse{ID: a.ID, Name: a.Name, Kind: a.Kind, Balance: a.Balance}
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{ID: b.ID, Name: b.Name, Address: b.Address, Phone: b.Phone}
}
