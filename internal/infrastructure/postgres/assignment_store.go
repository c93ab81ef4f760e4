package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tenaxis/tenaxis-api/internal/application/assignment"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
)

var _ assignment.Store = (*AssignmentStore)(nil)

// candidateQuery base de las dos búsquedas de candidatos: memberships con rol
// operador, activos y con vínculo activo a la empresa. El WHERE final lo pone
// cada nivel (zona del vínculo o municipio base del membership).
const candidateQuery = `
	SELECT m.id, m.plate, m.motorcycle
	FROM memberships m
	JOIN company_memberships cm ON cm.membership_id = m.id
	WHERE cm.company_id = $1
	  AND m.role = 'operador'
	  AND m.active
	  AND cm.active`

// AssignmentStore puerto de lectura del motor de asignación sobre Postgres.
// Solo ejecuta SELECTs; el motor decide, los casos de uso escriben.
type AssignmentStore struct {
	q Querier
}

// NewAssignmentStore construye el adaptador.
func NewAssignmentStore(q Querier) *AssignmentStore {
	return &AssignmentStore{q: q}
}

// FindAddressByID devuelve la dirección o nil si no existe.
func (s *AssignmentStore) FindAddressByID(ctx context.Context, addressID string) (*entity.Address, error) {
	query := `
		SELECT id, client_id, line, zone_id, municipality_id, active, created_at, updated_at
		FROM addresses WHERE id = $1`
	return s.getAddress(ctx, query, addressID)
}

// FindActiveAddressByClient devuelve la primera dirección activa del cliente
// o nil si no tiene ninguna. "Primera" es la más antigua por creación, para
// que el resultado sea estable entre llamadas.
func (s *AssignmentStore) FindActiveAddressByClient(ctx context.Context, clientID string) (*entity.Address, error) {
	query := `
		SELECT id, client_id, line, zone_id, municipality_id, active, created_at, updated_at
		FROM addresses
		WHERE client_id = $1 AND active
		ORDER BY created_at
		LIMIT 1`
	return s.getAddress(ctx, query, clientID)
}

// FindCandidatesByZone técnicos cuyo vínculo con la empresa cubre la zona.
func (s *AssignmentStore) FindCandidatesByZone(ctx context.Context, companyID, zoneID string) ([]assignment.Candidate, error) {
	query := candidateQuery + `
	  AND cm.zone_id = $2
	ORDER BY m.id`
	return s.listCandidates(ctx, query, companyID, zoneID)
}

// FindCandidatesByMunicipality técnicos cuyo municipio base coincide. Es el
// segundo nivel de búsqueda, nunca se mezcla con el de zona.
func (s *AssignmentStore) FindCandidatesByMunicipality(ctx context.Context, companyID, municipalityID string) ([]assignment.Candidate, error) {
	query := candidateQuery + `
	  AND m.municipality_id = $2
	ORDER BY m.id`
	return s.listCandidates(ctx, query, companyID, municipalityID)
}

// FindActiveRestrictionRule regla de pico y placa activa de la empresa para
// el día, o nil si ese día no hay restricción.
func (s *AssignmentStore) FindActiveRestrictionRule(ctx context.Context, companyID string, weekday time.Weekday) (*entity.DrivingRestrictionRule, error) {
	query := `
		SELECT id, company_id, weekday, digit_1, digit_2, active, created_at, updated_at
		FROM driving_restrictions
		WHERE company_id = $1 AND weekday = $2 AND active
		LIMIT 1`
	var rule entity.DrivingRestrictionRule
	var wd int
	err := s.q.QueryRow(ctx, query, companyID, int(weekday)).Scan(
		&rule.ID, &rule.CompanyID, &wd, &rule.Digit1, &rule.Digit2,
		&rule.Active, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find restriction rule: %w", err)
	}
	rule.Weekday = time.Weekday(wd)
	return &rule, nil
}

// CountOverlappingOrders cuenta las órdenes del técnico que se cruzan con la
// ventana [start, end): la orden cubre el inicio, cubre el fin, o queda
// contenida en la ventana. El predicado de tres casos es el espejo SQL de
// entity.WindowsOverlap. Órdenes anuladas no bloquean.
func (s *AssignmentStore) CountOverlappingOrders(ctx context.Context, technicianID string, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM service_orders
		WHERE technician_id = $1
		  AND status <> 'ANULADA'
		  AND start_time IS NOT NULL AND end_time IS NOT NULL
		  AND (
		        (start_time <= $2 AND end_time > $2)
		     OR (start_time < $3 AND end_time >= $3)
		     OR (start_time >= $2 AND end_time <= $3)
		  )`
	var count int
	if err := s.q.QueryRow(ctx, query, technicianID, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("count overlapping orders: %w", err)
	}
	return count, nil
}

// CountOrdersOnDay cuenta las órdenes del técnico que inician en [dayStart, dayEnd).
func (s *AssignmentStore) CountOrdersOnDay(ctx context.Context, technicianID string, dayStart, dayEnd time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM service_orders
		WHERE technician_id = $1
		  AND status <> 'ANULADA'
		  AND start_time >= $2 AND start_time < $3`
	var count int
	if err := s.q.QueryRow(ctx, query, technicianID, dayStart, dayEnd).Scan(&count); err != nil {
		return 0, fmt.Errorf("count orders on day: %w", err)
	}
	return count, nil
}

func (s *AssignmentStore) getAddress(ctx context.Context, query string, arg string) (*entity.Address, error) {
	var a entity.Address
	err := s.q.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.ClientID, &a.Line, &a.ZoneID, &a.MunicipalityID,
		&a.Active, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find address: %w", err)
	}
	return &a, nil
}

func (s *AssignmentStore) listCandidates(ctx context.Context, query string, args ...any) ([]assignment.Candidate, error) {
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}
	defer rows.Close()
	var list []assignment.Candidate
	for rows.Next() {
		var c assignment.Candidate
		if err := rows.Scan(&c.MembershipID, &c.Plate, &c.Motorcycle); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
