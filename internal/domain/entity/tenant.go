package entity

import "time"

// Planes disponibles (deben coincidir con el CHECK de la tabla tenants).
const (
	PlanBasico      = "basico"
	PlanProfesional = "profesional"
	PlanEmpresarial = "empresarial"
)

// Tenant representa la cuenta raíz de un cliente SaaS. Un tenant posee una o
// más empresas (Company) y todos sus datos están aislados por tenant_id.
type Tenant struct {
	ID        string
	Name      string
	Plan      string // ver constantes Plan*
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
