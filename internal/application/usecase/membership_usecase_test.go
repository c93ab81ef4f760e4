package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenaxis/tenaxis-api/internal/application/dto"
	"github.com/tenaxis/tenaxis-api/internal/application/usecase"
	"github.com/tenaxis/tenaxis-api/internal/domain"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
)

type memMembershipRepo struct {
	members []*entity.Membership
	links   []*entity.CompanyMembership
}

func (r *memMembershipRepo) Create(m *entity.Membership) error {
	r.members = append(r.members, m)
	return nil
}

func (r *memMembershipRepo) GetByID(id string) (*entity.Membership, error) {
	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memMembershipRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for _, m := range r.members {
		if m.TenantID == tenantID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMembershipRepo) Update(m *entity.Membership) error {
	for i, existing := range r.members {
		if existing.ID == m.ID {
			r.members[i] = m
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memMembershipRepo) LinkCompany(link *entity.CompanyMembership) error {
	for _, l := range r.links {
		if l.MembershipID == link.MembershipID && l.CompanyID == link.CompanyID {
			return domain.ErrDuplicate
		}
	}
	r.links = append(r.links, link)
	return nil
}

func (r *memMembershipRepo) UnlinkCompany(linkID string) error {
	for _, l := range r.links {
		if l.ID == linkID {
			l.Active = false
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memMembershipRepo) ListCompanyLinks(membershipID string) ([]*entity.CompanyMembership, error) {
	var out []*entity.CompanyMembership
	for _, l := range r.links {
		if l.MembershipID == membershipID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memMembershipRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Membership, error) {
	return nil, nil
}

type memZoneRepo struct {
	zones []*entity.Zone
}

func (r *memZoneRepo) CreateZone(z *entity.Zone) error { r.zones = append(r.zones, z); return nil }

func (r *memZoneRepo) GetZoneByID(id string) (*entity.Zone, error) {
	for _, z := range r.zones {
		if z.ID == id {
			return z, nil
		}
	}
	return nil, nil
}

func (r *memZoneRepo) ListZonesByCompany(string) ([]*entity.Zone, error) { return nil, nil }

func (r *memZoneRepo) GetMunicipalityByID(string) (*entity.Municipality, error) { return nil, nil }

func (r *memZoneRepo) ListMunicipalities() ([]*entity.Municipality, error) { return nil, nil }

func strPtr(s string) *string { return &s }

func seededMembershipUC(t *testing.T) (*usecase.MembershipUseCase, *dto.MembershipResponse) {
	t.Helper()
	repo := &memMembershipRepo{}
	zones := &memZoneRepo{zones: []*entity.Zone{
		{ID: "zone-1", CompanyID: "co-1", Name: "Chapinero"},
	}}
	uc := usecase.NewMembershipUseCase(repo, zones)
	m, err := uc.Create("tenant-1", dto.CreateMembershipRequest{
		Name: "Carlos Rueda", Role: entity.RoleOperador, Plate: strPtr("ABC123"),
	})
	require.NoError(t, err)
	return uc, m
}

// ────────────────────────────────────────────────────────────────────────────

func TestMembershipCreate_RolInvalido(t *testing.T) {
	uc := usecase.NewMembershipUseCase(&memMembershipRepo{}, &memZoneRepo{})

	_, err := uc.Create("tenant-1", dto.CreateMembershipRequest{Name: "X", Role: "gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMembershipLinkCompany_ValidaZonaDeLaEmpresa(t *testing.T) {
	uc, m := seededMembershipUC(t)

	// Zona de otra empresa: rechazada.
	_, err := uc.LinkCompany("tenant-1", m.ID, dto.LinkCompanyRequest{
		CompanyID: "co-2", ZoneID: strPtr("zone-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Zona inexistente: rechazada.
	_, err = uc.LinkCompany("tenant-1", m.ID, dto.LinkCompanyRequest{
		CompanyID: "co-1", ZoneID: strPtr("zone-404"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	link, err := uc.LinkCompany("tenant-1", m.ID, dto.LinkCompanyRequest{
		CompanyID: "co-1", ZoneID: strPtr("zone-1"),
	})
	require.NoError(t, err)
	assert.True(t, link.Active)
	require.NotNil(t, link.ZoneID)
	assert.Equal(t, "zone-1", *link.ZoneID)
}

func TestMembershipUnlinkCompany(t *testing.T) {
	uc, m := seededMembershipUC(t)

	link, err := uc.LinkCompany("tenant-1", m.ID, dto.LinkCompanyRequest{CompanyID: "co-1"})
	require.NoError(t, err)

	// El vínculo de otro membership no es alcanzable.
	err = uc.UnlinkCompany("tenant-1", "member-otro", link.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, uc.UnlinkCompany("tenant-1", m.ID, link.ID))

	links, err := uc.ListCompanyLinks("tenant-1", m.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.False(t, links[0].Active)
}

func TestMembershipUpdate_PlacaVaciaLaBorra(t *testing.T) {
	uc, m := seededMembershipUC(t)

	out, err := uc.Update("tenant-1", m.ID, dto.UpdateMembershipRequest{Plate: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, out.Plate)

	out, err = uc.Update("tenant-1", m.ID, dto.UpdateMembershipRequest{Plate: strPtr("XYZ789")})
	require.NoError(t, err)
	require.NotNil(t, out.Plate)
	assert.Equal(t, "XYZ789", *out.Plate)
}

func TestMembershipUpdate_OtroTenantNoVe(t *testing.T) {
	uc, m := seededMembershipUC(t)

	_, err := uc.Update("tenant-2", m.ID, dto.UpdateMembershipRequest{Name: strPtr("Otro")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
