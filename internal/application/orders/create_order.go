package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tenaxis/tenaxis-api/internal/application/assignment"
	"github.com/tenaxis/tenaxis-api/internal/application/dto"
	"github.com/tenaxis/tenaxis-api/internal/domain"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
	"github.com/tenaxis/tenaxis-api/internal/domain/repository"
)

// CreateOrderUseCase crea órdenes de servicio. Si el request no trae técnico,
// delega en el motor de asignación; que el motor no encuentre técnico nunca
// bloquea la creación (la orden queda sin asignar).
type CreateOrderUseCase struct {
	tx              TxRunner
	assigner        Assigner
	defaultDuration time.Duration
}

// NewCreateOrderUseCase construye el caso de uso. defaultDurationMinutes se
// usa para derivar la hora fin cuando el cliente solo envía la hora inicio.
func NewCreateOrderUseCase(tx TxRunner, assigner Assigner, defaultDurationMinutes int) *CreateOrderUseCase {
	if defaultDurationMinutes <= 0 {
		defaultDurationMinutes = 60
	}
	return &CreateOrderUseCase{
		tx:              tx,
		assigner:        assigner,
		defaultDuration: time.Duration(defaultDurationMinutes) * time.Minute,
	}
}

// Create valida la ventana, resuelve el técnico y persiste orden y tipo de
// servicio en una sola transacción.
func (uc *CreateOrderUseCase) Create(ctx context.Context, tenantID, companyID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.ClientID == "" || in.ServiceType == "" {
		return nil, domain.ErrInvalidInput
	}

	start, end := in.StartTime, in.EndTime
	if start != nil && end == nil {
		derived := start.Add(uc.defaultDuration)
		end = &derived
	}
	if start != nil && end != nil && !start.Before(*end) {
		return nil, domain.ErrInvalidWindow
	}

	technicianID := in.TechnicianID
	if technicianID == nil {
		// El técnico explícito se respeta tal cual; solo sin él corre el motor.
		assigned, err := uc.assigner.Assign(ctx, assignment.Request{
			CompanyID: companyID,
			ClientID:  in.ClientID,
			AddressID: in.AddressID,
			StartTime: start,
			EndTime:   end,
		})
		if err != nil {
			return nil, err
		}
		if assigned != "" {
			technicianID = &assigned
		}
	}

	now := time.Now()
	order := &entity.ServiceOrder{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		CompanyID:    companyID,
		ClientID:     in.ClientID,
		AddressID:    in.AddressID,
		TechnicianID: technicianID,
		StartTime:    start,
		EndTime:      end,
		Status:       entity.OrderNueva,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.tx.Run(ctx, func(orderRepo repository.OrderRepository, typeRepo repository.ServiceTypeRepository) error {
		st, err := typeRepo.GetByName(tenantID, companyID, in.ServiceType)
		if err != nil {
			return err
		}
		if st == nil {
			st = &entity.ServiceType{
				ID:        uuid.New().String(),
				TenantID:  tenantID,
				CompanyID: companyID,
				Name:      in.ServiceType,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := typeRepo.Create(st); err != nil {
				return err
			}
		}
		order.ServiceTypeID = st.ID
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}

	return toOrderResponse(order), nil
}

func toOrderResponse(o *entity.ServiceOrder) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:            o.ID,
		CompanyID:     o.CompanyID,
		ClientID:      o.ClientID,
		AddressID:     o.AddressID,
		TechnicianID:  o.TechnicianID,
		ServiceTypeID: o.ServiceTypeID,
		StartTime:     o.StartTime,
		EndTime:       o.EndTime,
		Status:        o.Status,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
	}
}
