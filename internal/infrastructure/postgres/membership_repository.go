package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tenaxis/tenaxis-api/internal/domain"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
	"github.com/tenaxis/tenaxis-api/internal/domain/repository"
)

var _ repository.MembershipRepository = (*MembershipRepo)(nil)

// MembershipRepo implementación de MembershipRepository.
type MembershipRepo struct {
	q Querier
}

// NewMembershipRepository construye el adaptador.
func NewMembershipRepository(q Querier) *MembershipRepo {
	return &MembershipRepo{q: q}
}

const membershipColumns = `id, tenant_id, name, role, active, plate, motorcycle, municipality_id, created_at, updated_at`

// Create persiste un nuevo membership.
func (r *MembershipRepo) Create(m *entity.Membership) error {
	query := `
		INSERT INTO memberships (` + membershipColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.TenantID, m.Name, m.Role, m.Active, m.Plate, m.Motorcycle,
		m.MunicipalityID, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// GetByID obtiene un membership por ID.
func (r *MembershipRepo) GetByID(id string) (*entity.Membership, error) {
	var m entity.Membership
	err := r.q.QueryRow(context.Background(),
		`SELECT `+membershipColumns+` FROM memberships WHERE id = $1`, id).Scan(
		&m.ID, &m.TenantID, &m.Name, &m.Role, &m.Active, &m.Plate, &m.Motorcycle,
		&m.MunicipalityID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return &m, nil
}

// ListByTenant lista memberships del tenant con paginación.
func (r *MembershipRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Membership, error) {
	query := `
		SELECT ` + membershipColumns + `
		FROM memberships WHERE tenant_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	return r.list(query, tenantID, limit, offset)
}

// ListByCompany lista memberships vinculados a la empresa (vínculo activo).
func (r *MembershipRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Membership, error) {
	query := `
		SELECT m.id, m.tenant_id, m.name, m.role, m.active, m.plate, m.motorcycle, m.municipality_id, m.created_at, m.updated_at
		FROM memberships m
		JOIN company_memberships cm ON cm.membership_id = m.id
		WHERE cm.company_id = $1 AND cm.active
		ORDER BY m.name LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

// Update actualiza un membership.
func (r *MembershipRepo) Update(m *entity.Membership) error {
	query := `
		UPDATE memberships SET name = $2, role = $3, active = $4, plate = $5, motorcycle = $6, municipality_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Role, m.Active, m.Plate, m.Motorcycle, m.MunicipalityID, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update membership: %w", err)
	}
	return nil
}

// LinkCompany crea el vínculo membership-empresa.
func (r *MembershipRepo) LinkCompany(link *entity.CompanyMembership) error {
	query := `
		INSERT INTO company_memberships (id, membership_id, company_id, zone_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		link.ID, link.MembershipID, link.CompanyID, link.ZoneID, link.Active,
		link.CreatedAt, link.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company membership: %w", err)
	}
	return nil
}

// UnlinkCompany desactiva el vínculo (no se borra, queda el histórico).
func (r *MembershipRepo) UnlinkCompany(linkID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE company_memberships SET active = false, updated_at = now() WHERE id = $1`, linkID)
	if err != nil {
		return fmt.Errorf("unlink company membership: %w", err)
	}
	return nil
}

// ListCompanyLinks lista los vínculos del membership.
func (r *MembershipRepo) ListCompanyLinks(membershipID string) ([]*entity.CompanyMembership, error) {
	query := `
		SELECT id, membership_id, company_id, zone_id, active, created_at, updated_at
		FROM company_memberships WHERE membership_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, membershipID)
	if err != nil {
		return nil, fmt.Errorf("list company memberships: %w", err)
	}
	defer rows.Close()
	var list []*entity.CompanyMembership
	for rows.Next() {
		var l entity.CompanyMembership
		if err := rows.Scan(&l.ID, &l.MembershipID, &l.CompanyID, &l.ZoneID, &l.Active,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company membership: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

func (r *MembershipRepo) list(query string, args ...any) ([]*entity.Membership, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()
	var list []*entity.Membership
	for rows.Next() {
		var m entity.Membership
		if err := rows.Scan(&m.ID, &m.TenantID, &m.Name, &m.Role, &m.Active, &m.Plate,
			&m.Motorcycle, &m.MunicipalityID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
