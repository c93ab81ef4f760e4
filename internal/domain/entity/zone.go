package entity

import "time"

// Zone agrupación geográfica fina (más estrecha que un municipio). Es la
// primera llave de emparejamiento técnico-dirección.
type Zone struct {
	ID             string
	CompanyID      string
	Name           string
	MunicipalityID *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Municipality municipio colombiano (código DANE opcional).
type Municipality struct {
	ID        string
	Name      string
	DANECode  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
