package orders

import (
	"context"
	"time"

	"github.com/tenaxis/tenaxis-api/internal/application/dto"
	"github.com/tenaxis/tenaxis-api/internal/domain"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
	"github.com/tenaxis/tenaxis-api/internal/domain/repository"
)

// ManageOrderUseCase consulta y actualización de órdenes existentes,
// incluyendo reasignación manual de técnico y cambios de estado.
type ManageOrderUseCase struct {
	orderRepo repository.OrderRepository
	scorer    ClientScorer
}

// NewManageOrderUseCase construye el caso de uso.
func NewManageOrderUseCase(orderRepo repository.OrderRepository, scorer ClientScorer) *ManageOrderUseCase {
	return &ManageOrderUseCase{orderRepo: orderRepo, scorer: scorer}
}

// GetByID devuelve la orden si pertenece a la empresa.
func (uc *ManageOrderUseCase) GetByID(companyID, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.ownedOrder(companyID, orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListByCompany lista órdenes de la empresa con paginación.
func (uc *ManageOrderUseCase) ListByCompany(companyID string, limit, offset int) ([]*dto.OrderResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.orderRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// ListByTechnician lista las órdenes de un técnico, acotadas a la empresa
// del token.
func (uc *ManageOrderUseCase) ListByTechnician(companyID, technicianID string, limit, offset int) ([]*dto.OrderResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.orderRepo.ListByTechnician(companyID, technicianID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// Update aplica cambios parciales: dirección, técnico (reasignación manual,
// sin pasar por los filtros del motor), ventana y notas. Mantiene el
// invariante inicio < fin.
func (uc *ManageOrderUseCase) Update(ctx context.Context, companyID, orderID string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.ownedOrder(companyID, orderID)
	if err != nil {
		return nil, err
	}

	if in.AddressID != nil {
		order.AddressID = in.AddressID
	}
	if in.TechnicianID != nil {
		if *in.TechnicianID == "" {
			order.TechnicianID = nil // desasignar
		} else {
			order.TechnicianID = in.TechnicianID
		}
	}
	if in.StartTime != nil {
		order.StartTime = in.StartTime
	}
	if in.EndTime != nil {
		order.EndTime = in.EndTime
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	if order.StartTime != nil && order.EndTime != nil && !order.StartTime.Before(*order.EndTime) {
		return nil, domain.ErrInvalidWindow
	}

	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ChangeStatus fija el nuevo estado. Las transiciones las deciden flujos
// externos; aquí solo se valida el conjunto cerrado de estados y se dispara
// el recálculo de puntaje del cliente al entrar o salir de LIQUIDADA.
// El recálculo corre después de persistir el estado: si falla, el cambio de
// estado ya quedó y el error solo refleja el puntaje pendiente. Como el
// recálculo recuenta las órdenes liquidadas desde cero, la siguiente
// transición que toque LIQUIDADA para ese cliente lo corrige.
func (uc *ManageOrderUseCase) ChangeStatus(ctx context.Context, companyID, orderID, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	order, err := uc.ownedOrder(companyID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == status {
		return toOrderResponse(order), nil
	}

	touchesLiquidada := order.Status == entity.OrderLiquidada || status == entity.OrderLiquidada

	if err := uc.orderRepo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	order.Status = status

	if touchesLiquidada && uc.scorer != nil {
		if err := uc.scorer.Recalculate(ctx, order.ClientID); err != nil {
			return nil, err
		}
	}
	return toOrderResponse(order), nil
}

func (uc *ManageOrderUseCase) ownedOrder(companyID, orderID string) (*entity.ServiceOrder, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return order, nil
}
