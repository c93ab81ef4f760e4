package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tenaxis/tenaxis-api/internal/application/dto"
	"github.com/tenaxis/tenaxis-api/internal/domain"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
	"github.com/tenaxis/tenaxis-api/internal/domain/repository"
)

// MembershipUseCase casos de uso para técnicos y demás miembros del tenant.
type MembershipUseCase struct {
	repo     repository.MembershipRepository
	zoneRepo repository.ZoneRepository
}

// NewMembershipUseCase construye el caso de uso.
func NewMembershipUseCase(repo repository.MembershipRepository, zoneRepo repository.ZoneRepository) *MembershipUseCase {
	return &MembershipUseCase{repo: repo, zoneRepo: zoneRepo}
}

// Create crea un membership. El rol debe pertenecer al conjunto cerrado.
func (uc *MembershipUseCase) Create(tenantID string, in dto.CreateMembershipRequest) (*dto.MembershipResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Role {
	case entity.RoleAdmin, entity.RoleSupervisor, entity.RoleOperador:
	default:
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	m := &entity.Membership{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		Name:           in.Name,
		Role:           in.Role,
		Active:         true,
		Plate:          in.Plate,
		Motorcycle:     in.Motorcycle,
		MunicipalityID: in.MunicipalityID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMembershipResponse(m), nil
}

// LinkCompany vincula el membership a una empresa (con zona opcional).
func (uc *MembershipUseCase) LinkCompany(tenantID, membershipID string, in dto.LinkCompanyRequest) (*dto.CompanyLinkResponse, error) {
	if in.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.repo.GetByID(membershipID)
	if err != nil {
		return nil, err
	}
	if m == nil || m.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	if in.ZoneID != nil {
		zone, err := uc.zoneRepo.GetZoneByID(*in.ZoneID)
		if err != nil {
			return nil, err
		}
		if zone == nil || zone.CompanyID != in.CompanyID {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	link := &entity.CompanyMembership{
		ID:           uuid.New().String(),
		MembershipID: membershipID,
		CompanyID:    in.CompanyID,
		ZoneID:       in.ZoneID,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.LinkCompany(link); err != nil {
		return nil, err
	}
	return &dto.CompanyLinkResponse{
		ID:           link.ID,
		MembershipID: link.MembershipID,
		CompanyID:    link.CompanyID,
		ZoneID:       link.ZoneID,
		Active:       link.Active,
	}, nil
}

// Update aplica cambios parciales: nombre, estado, placa (vacía la borra),
// tipo de vehículo y municipio base.
func (uc *MembershipUseCase) Update(tenantID, membershipID string, in dto.UpdateMembershipRequest) (*dto.MembershipResponse, error) {
	m, err := uc.repo.GetByID(membershipID)
	if err != nil {
		return nil, err
	}
	if m == nil || m.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		m.Name = *in.Name
	}
	if in.Active != nil {
		m.Active = *in.Active
	}
	if in.Plate != nil {
		if *in.Plate == "" {
			m.Plate = nil
		} else {
			m.Plate = in.Plate
		}
	}
	if in.Motorcycle != nil {
		m.Motorcycle = *in.Motorcycle
	}
	if in.MunicipalityID != nil {
		m.MunicipalityID = in.MunicipalityID
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return toMembershipResponse(m), nil
}

// ListCompanyLinks lista los vínculos a empresas del membership.
func (uc *MembershipUseCase) ListCompanyLinks(tenantID, membershipID string) ([]*dto.CompanyLinkResponse, error) {
	m, err := uc.repo.GetByID(membershipID)
	if err != nil {
		return nil, err
	}
	if m == nil || m.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	links, err := uc.repo.ListCompanyLinks(membershipID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyLinkResponse, 0, len(links))
	for _, link := range links {
		out = append(out, &dto.CompanyLinkResponse{
			ID:           link.ID,
			MembershipID: link.MembershipID,
			CompanyID:    link.CompanyID,
			ZoneID:       link.ZoneID,
			Active:       link.Active,
		})
	}
	return out, nil
}

// UnlinkCompany desactiva el vínculo; el membership deja de ser candidato en
// esa empresa.
func (uc *MembershipUseCase) UnlinkCompany(tenantID, membershipID, linkID string) error {
	links, err := uc.ListCompanyLinks(tenantID, membershipID)
	if err != nil {
		return err
	}
	for _, link := range links {
		if link.ID == linkID {
			return uc.repo.UnlinkCompany(linkID)
		}
	}
	return domain.ErrNotFound
}

// List lista memberships del tenant.
func (uc *MembershipUseCase) List(tenantID string, limit, offset int) ([]*dto.MembershipResponse, error) {
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
	out := make([]*dto.MembershipResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMembershipResponse(m))
	}
	return out, nil
}

func toMembershipResponse(m *entity.Membership) *dto.MembershipResponse {
	return &dto.MembershipResponse{
		ID:             m.ID,
		TenantID:       m.TenantID,
		Name:           m.Name,
		Role:           m.Role,
		Active:         m.Active,
		Plate:          m.Plate,
		Motorcycle:     m.Motorcycle,
		MunicipalityID: m.MunicipalityID,
	}
}
