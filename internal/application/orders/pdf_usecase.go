package orders

import (
	"context"
	"time"

	"github.com/tenaxis/tenaxis-api/internal/domain"
	"github.com/tenaxis/tenaxis-api/internal/domain/repository"
)

// TicketData datos ya resueltos para el PDF de una orden.
type TicketData struct {
	OrderID        string
	Status         string
	ServiceType    string
	CompanyName    string
	CompanyNIT     string
	ClientName     string
	ClientDocument string
	AddressLine    string
	TechnicianName string // vacío si la orden está sin asignar
	StartTime      *time.Time
	EndTime        *time.Time
	Notes          string
}

// OrderPDFUseCase arma los datos del ticket de servicio y delega la
// generación al TicketGenerator (maroto en infraestructura).
type OrderPDFUseCase struct {
	orderRepo      repository.OrderRepository
	companyRepo    repository.CompanyRepository
	clientRepo     repository.ClientRepository
	addressRepo    repository.AddressRepository
	membershipRepo repository.MembershipRepository
	typeRepo       repository.ServiceTypeRepository
	generator      TicketGenerator
}

// NewOrderPDFUseCase construye el caso de uso.
func NewOrderPDFUseCase(
	orderRepo repository.OrderRepository,
	companyRepo repository.CompanyRepository,
	clientRepo repository.ClientRepository,
	addressRepo repository.AddressRepository,
	membershipRepo repository.MembershipRepository,
	typeRepo repository.ServiceTypeRepository,
	generator TicketGenerator,
) *OrderPDFUseCase {
	return &OrderPDFUseCase{
		orderRepo:      orderRepo,
		companyRepo:    companyRepo,
		clientRepo:     clientRepo,
		addressRepo:    addressRepo,
		membershipRepo: membershipRepo,
		typeRepo:       typeRepo,
		generator:      generator,
	}
}

// Generate devuelve los bytes del PDF del ticket de la orden.
func (uc *OrderPDFUseCase) Generate(ctx context.Context, companyID, orderID string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	company, err := uc.companyRepo.GetByID(order.CompanyID)
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(order.ClientID)
	if err != nil {
		return nil, err
	}
	if company == nil || client == nil {
		return nil, domain.ErrNotFound
	}

	data := TicketData{
		OrderID:        order.ID,
		Status:         order.Status,
		CompanyName:    company.Name,
		CompanyNIT:     company.NIT,
		ClientName:     client.Name,
		ClientDocument: client.DocumentID,
		StartTime:      order.StartTime,
		EndTime:        order.EndTime,
		Notes:          order.Notes,
	}

	if st, err := uc.typeRepo.GetByID(order.ServiceTypeID); err != nil {
		return nil, err
	} else if st != nil {
		data.ServiceType = st.Name
	}

	// Sin dirección en la orden, el ticket cae a la dirección activa del
	// cliente, igual que hace el motor al ubicar candidatos.
	if order.AddressID != nil {
		addr, err := uc.addressRepo.GetByID(*order.AddressID)
		if err != nil {
			return nil, err
		}
		if addr != nil {
			data.AddressLine = addr.Line
		}
	} else {
		addr, err := uc.addressRepo.FirstActiveByClient(order.ClientID)
		if err != nil {
			return nil, err
		}
		if addr != nil {
			data.AddressLine = addr.Line
		}
	}

	if order.TechnicianID != nil {
		tech, err := uc.membershipRepo.GetByID(*order.TechnicianID)
		if err != nil {
			return nil, err
		}
		if tech != nil {
			data.TechnicianName = tech.Name
		}
	}

	return uc.generator.GenerateOrderTicket(ctx, data)
}
