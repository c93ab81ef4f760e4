package entity

import "time"

// Categorías de puntaje del cliente, recalculadas al liquidar órdenes.
const (
	ScoreA = "A" // 10 o más órdenes liquidadas
	ScoreB = "B" // entre 3 y 9
	ScoreC = "C" // menos de 3
)

// Client representa un cliente final de la empresa (quien recibe el servicio).
type Client struct {
	ID         string
	CompanyID  string
	Name       string
	SearchKey  string // nombre normalizado (sin tildes, minúsculas) para búsqueda
	DocumentID string // NIT o Cédula (Colombia)
	Email      string
	Phone      string
	Score      string // A, B, C — ver constantes Score*
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
