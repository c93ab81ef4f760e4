package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tenaxis/tenaxis-api/internal/domain"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
	"github.com/tenaxis/tenaxis-api/internal/domain/repository"
)

var _ repository.ConsignmentRepository = (*ConsignmentRepo)(nil)

const consignmentColumns = `id, tenant_id, company_id, membership_id, date, amount,
	bank_ref, status, notes, created_at, updated_at`

// ConsignmentRepo implementación de ConsignmentRepository sobre Postgres. El
// monto viaja como decimal.Decimal gracias al codec registrado en el pool.
type ConsignmentRepo struct {
	q Querier
}

// NewConsignmentRepository construye el adaptador.
func NewConsignmentRepository(q Querier) *ConsignmentRepo {
	return &ConsignmentRepo{q: q}
}

// Create persiste una nueva consignación.
func (r *ConsignmentRepo) Create(c *entity.Consignment) error {
	query := `
		INSERT INTO consignments (` + consignmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.TenantID, c.CompanyID, c.MembershipID, c.Date, c.Amount,
		c.BankRef, c.Status, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert consignment: %w", err)
	}
	return nil
}

// GetByID obtiene una consignación por ID.
func (r *ConsignmentRepo) GetByID(id string) (*entity.Consignment, error) {
	query := `SELECT ` + consignmentColumns + ` FROM consignments WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	c, err := scanConsignment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// ListByCompany lista consignaciones de la empresa con rango de fechas
// opcional (from inclusivo, to exclusivo).
func (r *ConsignmentRepo) ListByCompany(companyID string, from, to *time.Time, limit, offset int) ([]*entity.Consignment, error) {
	query := `
		SELECT ` + consignmentColumns + `
		FROM consignments
		WHERE company_id = $1
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date < $3)
		ORDER BY date DESC
		LIMIT $4 OFFSET $5`
	return r.list(query, companyID, from, to, limit, offset)
}

// ListByMembership lista las consignaciones de un técnico.
func (r *ConsignmentRepo) ListByMembership(membershipID string, limit, offset int) ([]*entity.Consignment, error) {
	query := `
		SELECT ` + consignmentColumns + `
		FROM consignments
		WHERE membership_id = $1
		ORDER BY date DESC
		LIMIT $2 OFFSET $3`
	return r.list(query, membershipID, limit, offset)
}

// UpdateStatus cambia el estado de la consignación.
func (r *ConsignmentRepo) UpdateStatus(id, status string) error {
	query := `UPDATE consignments SET status = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update consignment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ConsignmentRepo) list(query string, args ...any) ([]*entity.Consignment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list consignments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Consignment
	for rows.Next() {
		c, err := scanConsignment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanConsignment(row pgx.Row) (*entity.Consignment, error) {
	var c entity.Consignment
	err := row.Scan(
		&c.ID, &c.TenantID, &c.CompanyID, &c.MembershipID, &c.Date, &c.Amount,
		&c.BankRef, &c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan consignment: %w", err)
	}
	return &c, nil
}
