package entity

import "time"

// Membership asocia una persona a un tenant con un rol operativo. Los
// técnicos asignables a órdenes son memberships con rol operador y Active.
type Membership struct {
	ID             string
	TenantID       string
	Name           string
	Role           string // ver constantes Role* (operador = técnico asignable)
	Active         bool
	Plate          *string // placa del vehículo, nil si no registra vehículo
	Motorcycle     bool    // true: pico y placa aplica sobre el primer dígito
	MunicipalityID *string // municipio base, usado como fallback geográfico
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Assignable indica si el membership puede ser candidato de asignación.
func (m *Membership) Assignable() bool {
	return m.Active && m.Role == RoleOperador
}

// CompanyMembership vincula un Membership con una empresa concreta. El
// vínculo lleva su propia bandera Active y opcionalmente una zona de
// cobertura; tanto el membership como el vínculo deben estar activos para
// que el técnico sea candidato en esa empresa.
type CompanyMembership struct {
	ID           string
	MembershipID string
	CompanyID    string
	ZoneID       *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
