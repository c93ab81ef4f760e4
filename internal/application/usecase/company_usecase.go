package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tenaxis/tenaxis-api/internal/application/dto"
	"github.com/tenaxis/tenaxis-api/internal/domain"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
	"github.com/tenaxis/tenaxis-api/internal/domain/repository"
)

// CompanyUseCase casos de uso para empresas del tenant y para consultar la
// cuenta misma.
type CompanyUseCase struct {
	repo       repository.CompanyRepository
	tenantRepo repository.TenantRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository, tenantRepo repository.TenantRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, tenantRepo: tenantRepo}
}

// GetTenant devuelve la cuenta SaaS del token.
func (uc *CompanyUseCase) GetTenant(tenantID string) (*dto.TenantResponse, error) {
	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.TenantResponse{
		ID:     tenant.ID,
		Name:   tenant.Name,
		Plan:   tenant.Plan,
		Status: tenant.Status,
	}, nil
}

// Create crea una empresa dentro del tenant.
func (uc *CompanyUseCase) Create(tenantID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" || in.NIT == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      in.Name,
		NIT:       in.NIT,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa, validando que pertenezca al tenant.
func (uc *CompanyUseCase) GetByID(tenantID, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil || company.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// Update aplica cambios parciales a una empresa del tenant. El NIT no se
// puede cambiar.
func (uc *CompanyUseCase) Update(tenantID, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil || company.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		company.Name = *in.Name
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List lista empresas del tenant.
func (uc *CompanyUseCase) List(tenantID string, limit, offset int) ([]*dto.CompanyResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByTenant(tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCompanyResponse(c))
	}
	return out, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:       c.ID,
		TenantID: c.TenantID,
		Name:     c.Name,
		NIT:      c.NIT,
		Address:  c.Address,
		Phone:    c.Phone,
		Email:    c.Email,
		Status:   c.Status,
	}
}
