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

var _ repository.RestrictionRepository = (*RestrictionRepo)(nil)

const restrictionColumns = `id, company_id, weekday, digit_1, digit_2, active, created_at, updated_at`

// RestrictionRepo implementación de RestrictionRepository sobre Postgres.
// El día de la semana se guarda como entero 0-6 (0 = domingo), la misma
// convención de time.Weekday.
type RestrictionRepo struct {
	q Querier
}

// NewRestrictionRepository construye el adaptador.
func NewRestrictionRepository(q Querier) *RestrictionRepo {
	return &RestrictionRepo{q: q}
}

// Create persiste una nueva regla.
func (r *RestrictionRepo) Create(rule *entity.DrivingRestrictionRule) error {
	query := `
		INSERT INTO driving_restrictions (` + restrictionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.CompanyID, int(rule.Weekday), rule.Digit1, rule.Digit2,
		rule.Active, rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert restriction: %w", err)
	}
	return nil
}

// GetByID obtiene una regla por ID.
func (r *RestrictionRepo) GetByID(id string) (*entity.DrivingRestrictionRule, error) {
	query := `SELECT ` + restrictionColumns + ` FROM driving_restrictions WHERE id = $1`
	return r.getOne(query, id)
}

// FindActive devuelve la regla activa de la empresa para el día dado, o nil
// si no hay restricción ese día.
func (r *RestrictionRepo) FindActive(companyID string, weekday time.Weekday) (*entity.DrivingRestrictionRule, error) {
	query := `
		SELECT ` + restrictionColumns + `
		FROM driving_restrictions
		WHERE company_id = $1 AND weekday = $2 AND active
		LIMIT 1`
	return r.getOne(query, companyID, int(weekday))
}

// ListByCompany lista todas las reglas de la empresa, activas o no.
func (r *RestrictionRepo) ListByCompany(companyID string) ([]*entity.DrivingRestrictionRule, error) {
	query := `
		SELECT ` + restrictionColumns + `
		FROM driving_restrictions
		WHERE company_id = $1
		ORDER BY weekday`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list restrictions: %w", err)
	}
	defer rows.Close()
	var list []*entity.DrivingRestrictionRule
	for rows.Next() {
		rule, err := scanRestriction(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rule)
	}
	return list, rows.Err()
}

// Update actualiza dígitos y estado de la regla.
func (r *RestrictionRepo) Update(rule *entity.DrivingRestrictionRule) error {
	query := `
		UPDATE driving_restrictions
		SET weekday = $2, digit_1 = $3, digit_2 = $4, active = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		rule.ID, int(rule.Weekday), rule.Digit1, rule.Digit2, rule.Active, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update restriction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la regla.
func (r *RestrictionRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM driving_restrictions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete restriction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RestrictionRepo) getOne(query string, args ...any) (*entity.DrivingRestrictionRule, error) {
	row := r.q.QueryRow(context.Background(), query, args...)
	rule, err := scanRestriction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rule, nil
}

func scanRestriction(row pgx.Row) (*entity.DrivingRestrictionRule, error) {
	var rule entity.DrivingRestrictionRule
	var weekday int
	err := row.Scan(
		&rule.ID, &rule.CompanyID, &weekday, &rule.Digit1, &rule.Digit2,
		&rule.Active, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan restriction: %w", err)
	}
	rule.Weekday = time.Weekday(weekday)
	return &rule, nil
}
