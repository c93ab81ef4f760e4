package dto

// CreateZoneRequest alta de una zona de cobertura de la empresa.
type CreateZoneRequest struct {
	Name           string  `json:"name"`
	MunicipalityID *string `json:"municipality_id,omitempty"`
}

// ZoneResponse zona de cobertura.
type ZoneResponse struct {
	ID             string  `json:"id"`
	CompanyID      string  `json:"company_id"`
	Name           string  `json:"name"`
	MunicipalityID *string `json:"municipality_id,omitempty"`
}

// MunicipalityResponse entrada del catálogo de municipios.
type MunicipalityResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	DANECode string `json:"dane_code,omitempty"`
}
