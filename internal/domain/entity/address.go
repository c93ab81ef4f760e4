package entity

import "time"

// Address dirección de servicio de un cliente. Un cliente puede tener varias;
// la bandera Active marca las utilizables. Zone y Municipality alimentan la
// búsqueda geográfica de técnicos.
type Address struct {
	ID             string
	ClientID       string
	Line           string // dirección textual (Cra 15 # 93-60, Apto 301...)
	ZoneID         *string
	MunicipalityID *string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
