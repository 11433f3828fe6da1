package entity

import "time"

// Customer cliente registrado; opcional en la venta (mostrador si no se indica).
type Customer struct {
	ID        string
	Name      string
	TaxID     string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
