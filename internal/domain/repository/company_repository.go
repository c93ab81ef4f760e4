package repository

import "github.com/tenaxis/tenaxis-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Company, error)
	Update(company *entity.Company) error
}

// TenantRepository define el puerto de persistencia para Tenant.
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
}
