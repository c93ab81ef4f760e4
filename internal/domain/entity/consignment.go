package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una consignación de efectivo.
const (
	ConsignmentRegistrada = "REGISTRADA"
	ConsignmentConfirmada = "CONFIRMADA"
)

// Consignment consignación bancaria del efectivo recaudado por un técnico.
// El monto es NUMERIC en la base; se maneja con decimal para no perder
// centavos en la conciliación.
type Consignment struct {
	ID           string
	TenantID     string
	CompanyID    string
	MembershipID string // técnico que consigna
	Date         time.Time
	Amount       decimal.Decimal
	BankRef      string // número de comprobante de la consignación
	Status       string // REGISTRADA, CONFIRMADA
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
