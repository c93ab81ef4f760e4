package entity

import "time"

// Estados de una orden de servicio (deben coincidir con el CHECK de la tabla
// service_orders). Las transiciones las fijan flujos externos; entrar o salir
// de LIQUIDADA dispara el recálculo de puntaje del cliente.
const (
	OrderNueva           = "NUEVA"
	OrderAgendada        = "AGENDADA"
	OrderEnRuta          = "EN_RUTA"
	OrderTecnicoFinalizo = "TECNICO_FINALIZO"
	OrderLiquidada       = "LIQUIDADA"
	OrderAnulada         = "ANULADA"
)

// ValidOrderStatus valida que el estado pertenezca al conjunto cerrado.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderNueva, OrderAgendada, OrderEnRuta, OrderTecnicoFinalizo, OrderLiquidada, OrderAnulada:
		return true
	}
	return false
}

// WindowsOverlap indica si dos ventanas semiabiertas [startA, endA) y
// [startB, endB) se tocan. Es la forma compacta del predicado de tres casos
// (solape parcial, ventana envolvente, ventana contenida) que el store de
// asignación expresa en SQL: dos ventanas se solapan exactamente cuando cada
// una empieza antes de que la otra termine. Ventanas espalda con espalda
// ([10,11) y [11,12)) no se solapan.
func WindowsOverlap(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}

// ServiceOrder una unidad de trabajo agendable. El técnico puede asignarse
// en la creación (explícito o por el motor de asignación) o después.
// Invariante: StartTime < EndTime cuando ambos están presentes.
type ServiceOrder struct {
	ID            string
	TenantID      string
	CompanyID     string
	ClientID      string
	AddressID     *string // nil: se usó la primera dirección activa del cliente
	TechnicianID  *string // membership del técnico, nil = sin asignar
	ServiceTypeID string
	StartTime     *time.Time
	EndTime       *time.Time
	Status        string // ver constantes Order*
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ServiceType tipo de servicio (fumigación, lavado de tanques...). Se crea o
// reutiliza por nombre dentro de (tenant, empresa) al crear órdenes.
type ServiceType struct {
	ID        string
	TenantID  string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
