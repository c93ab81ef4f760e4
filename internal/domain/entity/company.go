package entity

import "time"

// Company representa una unidad operativa dentro de un tenant (enfoque Colombia).
// Las órdenes, clientes y técnicos pertenecen a una empresa concreta.
type Company struct {
	ID        string
	TenantID  string
	Name      string
	NIT       string // NIT colombiano (con o sin dígito de verificación)
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
