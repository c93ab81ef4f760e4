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

var _ repository.ZoneRepository = (*ZoneRepo)(nil)

// ZoneRepo implementación de ZoneRepository (zonas y municipios).
type ZoneRepo struct {
	q Querier
}

// NewZoneRepository construye el adaptador.
func NewZoneRepository(q Querier) *ZoneRepo {
	return &ZoneRepo{q: q}
}

// CreateZone persiste una nueva zona.
func (r *ZoneRepo) CreateZone(zone *entity.Zone) error {
	query := `
		INSERT INTO zones (id, company_id, name, municipality_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		zone.ID, zone.CompanyID, zone.Name, zone.MunicipalityID, zone.CreatedAt, zone.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert zone: %w", err)
	}
	return nil
}

// GetZoneByID obtiene una zona por ID.
func (r *ZoneRepo) GetZoneByID(id string) (*entity.Zone, error) {
	query := `SELECT id, company_id, name, municipality_id, created_at, updated_at FROM zones WHERE id = $1`
	var z entity.Zone
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&z.ID, &z.CompanyID, &z.Name, &z.MunicipalityID, &z.CreatedAt, &z.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get zone: %w", err)
	}
	return &z, nil
}

// ListZonesByCompany lista las zonas de la empresa.
func (r *ZoneRepo) ListZonesByCompany(companyID string) ([]*entity.Zone, error) {
	query := `
		SELECT id, company_id, name, municipality_id, created_at, updated_at
		FROM zones WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Zone
	for rows.Next() {
		var z entity.Zone
		if err := rows.Scan(&z.ID, &z.CompanyID, &z.Name, &z.MunicipalityID, &z.CreatedAt, &z.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan zone: %w", err)
		}
		list = append(list, &z)
	}
	return list, rows.Err()
}

// GetMunicipalityByID obtiene un municipio por ID.
func (r *ZoneRepo) GetMunicipalityByID(id string) (*entity.Municipality, error) {
	query := `SELECT id, name, dane_code, created_at, updated_at FROM municipalities WHERE id = $1`
	var m entity.Municipality
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.DANECode, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get municipality: %w", err)
	}
	return &m, nil
}

// ListMunicipalities lista el catálogo de municipios.
func (r *ZoneRepo) ListMunicipalities() ([]*entity.Municipality, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, dane_code, created_at, updated_at FROM municipalities ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list municipalities: %w", err)
	}
	defer rows.Close()
	var list []*entity.Municipality
	for rows.Next() {
		var m entity.Municipality
		if err := rows.Scan(&m.ID, &m.Name, &m.DANECode, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan municipality: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
