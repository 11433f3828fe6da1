package entity

import "time"

// Staff operador de caja. PasswordHash es bcrypt; Role decide permisos RBAC.
type Staff struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	Role         string // "admin" | "cajero"
	BranchID     string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
