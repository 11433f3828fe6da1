package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/PuntoVenta-api/pkg/jwt"
)

// Roles de operador.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cajero"
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autenticación de operadores: login con bcrypt y emisión de JWT con
// staff_id, branch_id y role para el middleware RBAC.
type UseCase struct {
	staffRepo repository.StaffRepository
	jwtCfg    JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(staffRepo repository.StaffRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{staffRepo: staffRepo, jwtCfg: jwtCfg}
}

// Login valida credenciales y devuelve el token de acceso del operador.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	staff, err := uc.staffRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if staff == nil || !staff.Active {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, staff.ID, staff.BranchID, staff.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		StaffID:     staff.ID,
		Name:        staff.Name,
		Role:        staff.Role,
		BranchID:    staff.BranchID,
	}, nil
}

// Register alta de operador con hash bcrypt.
func (uc *UseCase) Register(in dto.RegisterStaffRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.staffRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = RoleCashier
	}
	now := time.Now()
	staff := &entity.Staff{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         role,
		BranchID:     in.BranchID,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.staffRepo.Create(staff); err != nil {
		return nil, err
	}
	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, staff.ID, staff.BranchID, staff.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		StaffID:     staff.ID,
		Name:        staff.Name,
		Role:        staff.Role,
		BranchID:    staff.BranchID,
	}, nil
}
