package dto

// CreateMembershipRequest alta de técnico u otro miembro del tenant.
type CreateMembershipRequest struct {
	Name           string  `json:"name"`
	Role           string  `json:"role"` // operador = técnico asignable
	Plate          *string `json:"plate,omitempty"`
	Motorcycle     bool    `json:"motorcycle"`
	MunicipalityID *string `json:"municipality_id,omitempty"`
}

// UpdateMembershipRequest actualización parcial de un membership. Plate vacío
// borra la placa registrada.
type UpdateMembershipRequest struct {
	Name           *string `json:"name,omitempty"`
	Active         *bool   `json:"active,omitempty"`
	Plate          *string `json:"plate,omitempty"`
	Motorcycle     *bool   `json:"motorcycle,omitempty"`
	MunicipalityID *string `json:"municipality_id,omitempty"`
}

// LinkCompanyRequest vincula un membership a una empresa, opcionalmente con
// zona de cobertura.
type LinkCompanyRequest struct {
	CompanyID string  `json:"company_id"`
	ZoneID    *string `json:"zone_id,omitempty"`
}

// MembershipResponse membership para respuestas HTTP.
type MembershipResponse struct {
	ID             string  `json:"id"`
	TenantID       string  `json:"tenant_id"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	Active         bool    `json:"active"`
	Plate          *string `json:"plate,omitempty"`
	Motorcycle     bool    `json:"motorcycle"`
	MunicipalityID *string `json:"municipality_id,omitempty"`
}

// CompanyLinkResponse vínculo membership-empresa.
type CompanyLinkResponse struct {
	ID           string  `json:"id"`
	MembershipID string  `json:"membership_id"`
	CompanyID    string  `json:"company_id"`
	ZoneID       *string `json:"zone_id,omitempty"`
	Active       bool    `json:"active"`
}
