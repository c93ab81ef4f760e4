package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tenaxis/tenaxis-api/internal/application/dto"
	"github.com/tenaxis/tenaxis-api/internal/domain"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
	"github.com/tenaxis/tenaxis-api/internal/domain/repository"
)

// ConsignmentUseCase contabilidad de recaudo: consignaciones del efectivo
// que los técnicos recogen en campo.
type ConsignmentUseCase struct {
	repo           repository.ConsignmentRepository
	membershipRepo repository.MembershipRepository
}

// NewConsignmentUseCase construye el caso de uso.
func NewConsignmentUseCase(repo repository.ConsignmentRepository, membershipRepo repository.MembershipRepository) *ConsignmentUseCase {
	return &ConsignmentUseCase{repo: repo, membershipRepo: membershipRepo}
}

// Create registra una consignación en estado REGISTRADA.
func (uc *ConsignmentUseCase) Create(tenantID, companyID string, in dto.CreateConsignmentRequest) (*dto.ConsignmentResponse, error) {
	if in.MembershipID == "" || in.BankRef == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.membershipRepo.GetByID(in.MembershipID)
	if err != nil {
		return nil, err
	}
	if m == nil || m.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	now := time.Now()
	c := &entity.Consignment{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		CompanyID:    companyID,
		MembershipID: in.MembershipID,
		Date:         date,
		Amount:       in.Amount,
		BankRef:      in.BankRef,
		Status:       entity.ConsignmentRegistrada,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toConsignmentResponse(c), nil
}

// Confirm marca la consignación como CONFIRMADA (conciliación manual).
func (uc *ConsignmentUseCase) Confirm(companyID, id string) (*dto.ConsignmentResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if c.Status == entity.ConsignmentConfirmada {
		return nil, domain.ErrConflict
	}
	if err := uc.repo.UpdateStatus(id, entity.ConsignmentConfirmada); err != nil {
		return nil, err
	}
	c.Status = entity.ConsignmentConfirmada
	return toConsignmentResponse(c), nil
}

// List lista consignaciones de la empresa, con rango de fechas opcional.
func (uc *ConsignmentUseCase) List(companyID string, from, to *time.Time, limit, offset int) ([]*dto.ConsignmentResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByCompany(companyID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ConsignmentResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toConsignmentResponse(c))
	}
	return out, nil
}

// ListByMembership lista las consignaciones de un técnico del tenant.
func (uc *ConsignmentUseCase) ListByMembership(tenantID, membershipID string, limit, offset int) ([]*dto.ConsignmentResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	m, err := uc.membershipRepo.GetByID(membershipID)
	if err != nil {
		return nil, err
	}
	if m == nil || m.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByMembership(membershipID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ConsignmentResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toConsignmentResponse(c))
	}
	return out, nil
}

func toConsignmentResponse(c *entity.Consignment) *dto.ConsignmentResponse {
	return &dto.ConsignmentResponse{
		ID:           c.ID,
		CompanyID:    c.CompanyID,
		MembershipID: c.MembershipID,
		Date:         c.Date,
		Amount:       c.Amount,
		BankRef:      c.BankRef,
		Status:       c.Status,
		Notes:        c.Notes,
	}
}
