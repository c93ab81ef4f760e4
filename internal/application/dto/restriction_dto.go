package dto

// CreateRestrictionRequest regla de pico y placa para un día de la semana.
// Weekday usa la convención de time.Weekday: 0 = domingo.
type CreateRestrictionRequest struct {
	Weekday int `json:"weekday"`
	Digit1  int `json:"digit1"`
	Digit2  int `json:"digit2"`
}

// UpdateRestrictionRequest actualización parcial de una regla.
type UpdateRestrictionRequest struct {
	Digit1 *int  `json:"digit1,omitempty"`
	Digit2 *int  `json:"digit2,omitempty"`
	Active *bool `json:"active,omitempty"`
}

// RestrictionResponse regla para respuestas HTTP.
type RestrictionResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Weekday   int    `json:"weekday"`
	Digit1    int    `json:"digit1"`
	Digit2    int    `json:"digit2"`
	Active    bool   `json:"active"`
}
