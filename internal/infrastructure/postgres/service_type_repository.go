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

var _ repository.ServiceTypeRepository = (*ServiceTypeRepo)(nil)

const serviceTypeColumns = `id, tenant_id, company_id, name, created_at, updated_at`

// ServiceTypeRepo implementación de ServiceTypeRepository sobre Postgres.
type ServiceTypeRepo struct {
	q Querier
}

// NewServiceTypeRepository construye el adaptador.
func NewServiceTypeRepository(q Querier) *ServiceTypeRepo {
	return &ServiceTypeRepo{q: q}
}

// Create persiste un nuevo tipo de servicio.
func (r *ServiceTypeRepo) Create(st *entity.ServiceType) error {
	query := `
		INSERT INTO service_types (` + serviceTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		st.ID, st.TenantID, st.CompanyID, st.Name, st.CreatedAt, st.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de servicio por ID.
func (r *ServiceTypeRepo) GetByID(id string) (*entity.ServiceType, error) {
	query := `SELECT ` + serviceTypeColumns + ` FROM service_types WHERE id = $1`
	return r.getOne(query, id)
}

// GetByName busca por nombre exacto dentro de (tenant, empresa).
func (r *ServiceTypeRepo) GetByName(tenantID, companyID, name string) (*entity.ServiceType, error) {
	query := `
		SELECT ` + serviceTypeColumns + `
		FROM service_types
		WHERE tenant_id = $1 AND company_id = $2 AND name = $3`
	return r.getOne(query, tenantID, companyID, name)
}

// ListByCompany lista los tipos de servicio de la empresa.
func (r *ServiceTypeRepo) ListByCompany(companyID string) ([]*entity.ServiceType, error) {
	query := `
		SELECT ` + serviceTypeColumns + `
		FROM service_types
		WHERE company_id = $1
		ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list service types: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceType
	for rows.Next() {
		var st entity.ServiceType
		if err := rows.Scan(&st.ID, &st.TenantID, &st.CompanyID, &st.Name, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service type: %w", err)
		}
		list = append(list, &st)
	}
	return list, rows.Err()
}

func (r *ServiceTypeRepo) getOne(query string, args ...any) (*entity.ServiceType, error) {
	var st entity.ServiceType
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&st.ID, &st.TenantID, &st.CompanyID, &st.Name, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service type: %w", err)
	}
	return &st, nil
}
