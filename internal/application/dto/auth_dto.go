package dto

// LoginRequest credenciales del operador.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de acceso y datos del operador.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	StaffID     string `json:"staff_id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	BranchID    string `json:"branch_id"`
}

// RegisterStaffRequest alta de operador (solo admin).
type RegisterStaffRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"`
	BranchID string `json:"branch_id"`
}
