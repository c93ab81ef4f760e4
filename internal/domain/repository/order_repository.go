package repository

import "github.com/tenaxis/tenaxis-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para ServiceOrder.
type OrderRepository interface {
	Create(order *entity.ServiceOrder) error
	GetByID(id string) (*entity.ServiceOrder, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.ServiceOrder, error)
	ListByTechnician(companyID, technicianID string, limit, offset int) ([]*entity.ServiceOrder, error)
	Update(order *entity.ServiceOrder) error
	UpdateStatus(id, status string) error
}

// ServiceTypeRepository define el puerto de persistencia para ServiceType.
type ServiceTypeRepository interface {
	Create(st *entity.ServiceType) error
	GetByID(id string) (*entity.ServiceType, error)
	// GetByName busca por nombre dentro de (tenant, empresa); nil si no existe.
	GetByName(tenantID, companyID, name string) (*entity.ServiceType, error)
	ListByCompany(companyID string) ([]*entity.ServiceType, error)
}
