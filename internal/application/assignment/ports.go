package assignment

import (
	"context"
	"time"

	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
)

// Candidate técnico provisionalmente elegible, con los datos mínimos que
// necesitan los filtros (placa y tipo de vehículo).
type Candidate struct {
	MembershipID string
	Plate        *string
	Motorcycle   bool
}

// Store es el puerto de lectura del motor de asignación. Todas las consultas
// son de solo lectura; el motor nunca escribe. Lo implementa
// postgres.AssignmentStore.
type Store interface {
	// FindAddressByID devuelve la dirección o nil si no existe.
	FindAddressByID(ctx context.Context, addressID string) (*entity.Address, error)
	// FindActiveAddressByClient devuelve la primera dirección activa del cliente o nil.
	FindActiveAddressByClient(ctx context.Context, clientID string) (*entity.Address, error)
	// FindCandidatesByZone técnicos activos (rol operador, membership y
	// vínculo activos) cuyo vínculo con la empresa tiene esa zona.
	FindCandidatesByZone(ctx context.Context, companyID, zoneID string) ([]Candidate, error)
	// FindCandidatesByMunicipality técnicos activos cuyo municipio base (del
	// membership) coincide. Solo se consulta si la zona no arrojó candidatos.
	FindCandidatesByMunicipality(ctx context.Context, companyID, municipalityID string) ([]Candidate, error)
	// FindActiveRestrictionRule regla de pico y placa activa para la empresa
	// y el día, o nil si no hay.
	FindActiveRestrictionRule(ctx context.Context, companyID string, weekday time.Weekday) (*entity.DrivingRestrictionRule, error)
	// CountOverlappingOrders órdenes del técnico que se cruzan con [start, end).
	CountOverlappingOrders(ctx context.Context, technicianID string, start, end time.Time) (int, error)
	// CountOrdersOnDay órdenes del técnico cuya hora de inicio cae en [dayStart, dayEnd).
	CountOrdersOnDay(ctx context.Context, technicianID string, dayStart, dayEnd time.Time) (int, error)
}
