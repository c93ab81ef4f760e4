package repository

import "github.com/tenaxis/tenaxis-api/internal/domain/entity"

// MembershipRepository define el puerto de persistencia para Membership y
// sus vínculos con empresas.
type MembershipRepository interface {
	Create(m *entity.Membership) error
	GetByID(id string) (*entity.Membership, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Membership, error)
	Update(m *entity.Membership) error

	LinkCompany(link *entity.CompanyMembership) error
	UnlinkCompany(linkID string) error
	ListCompanyLinks(membershipID string) ([]*entity.CompanyMembership, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Membership, error)
}
