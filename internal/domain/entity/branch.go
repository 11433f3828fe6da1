package entity

import "time"

// Alcance especial que muestra registros de todas las sucursales.
const ScopeAll = "ALL"

// Branch representa una sucursal del negocio.
type Branch struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
