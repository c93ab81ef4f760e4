package orders

import (
	"context"

	"github.com/tenaxis/tenaxis-api/internal/application/assignment"
	"github.com/tenaxis/tenaxis-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el tipo de servicio y la orden
// se persistan atómicamente.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		typeRepo repository.ServiceTypeRepository,
	) error) error
}

// Assigner abstrae el motor de asignación para poder sustituirlo en tests.
// Lo implementa *assignment.Engine.
type Assigner interface {
	Assign(ctx context.Context, req assignment.Request) (string, error)
}

// ClientScorer colaborador externo: recalcula el puntaje del cliente cuando
// una orden entra o sale del estado LIQUIDADA.
type ClientScorer interface {
	Recalculate(ctx context.Context, clientID string) error
}

// TicketGenerator genera la representación PDF de una orden de servicio.
type TicketGenerator interface {
	GenerateOrderTicket(ctx context.Context, data TicketData) ([]byte, error)
}
