package dto

// CreateClientRequest alta de cliente (opcionalmente con su primera dirección).
type CreateClientRequest struct {
	Name       string                `json:"name"`
	DocumentID string                `json:"document_id"`
	Email      string                `json:"email"`
	Phone      string                `json:"phone"`
	Address    *CreateAddressRequest `json:"address,omitempty"`
}

// CreateAddressRequest dirección de servicio de un cliente.
type CreateAddressRequest struct {
	Line           string  `json:"line"`
	ZoneID         *string `json:"zone_id,omitempty"`
	MunicipalityID *string `json:"municipality_id,omitempty"`
}

// UpdateClientRequest actualización parcial de un cliente.
type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// UpdateAddressRequest actualización parcial de una dirección.
type UpdateAddressRequest struct {
	Line           *string `json:"line,omitempty"`
	ZoneID         *string `json:"zone_id,omitempty"`
	MunicipalityID *string `json:"municipality_id,omitempty"`
}

// ClientResponse cliente para respuestas HTTP.
type ClientResponse struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	Name       string `json:"name"`
	DocumentID string `json:"document_id"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Score      string `json:"score"`
}

// AddressResponse dirección para respuestas HTTP.
type AddressResponse struct {
	ID             string  `json:"id"`
	ClientID       string  `json:"client_id"`
	Line           string  `json:"line"`
	ZoneID         *string `json:"zone_id,omitempty"`
	MunicipalityID *string `json:"municipality_id,omitempty"`
	Active         bool    `json:"active"`
}
