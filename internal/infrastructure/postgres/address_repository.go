package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
	"github.com/tenaxis/tenaxis-api/internal/domain/repository"
)

var _ repository.AddressRepository = (*AddressRepo)(nil)

// AddressRepo implementación de AddressRepository.
type AddressRepo struct {
	q Querier
}

// NewAddressRepository construye el adaptador.
func NewAddressRepository(q Querier) *AddressRepo {
	return &AddressRepo{q: q}
}

const addressColumns = `id, client_id, line, zone_id, municipality_id, active, created_at, updated_at`

// Create persiste una nueva dirección.
func (r *AddressRepo) Create(address *entity.Address) error {
	query := `
		INSERT INTO addresses (` + addressColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		address.ID, address.ClientID, address.Line, address.ZoneID, address.MunicipalityID,
		address.Active, address.CreatedAt, address.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

// GetByID obtiene una dirección por ID.
func (r *AddressRepo) GetByID(id string) (*entity.Address, error) {
	return r.getOne(`SELECT `+addressColumns+` FROM addresses WHERE id = $1`, id)
}

// FirstActiveByClient devuelve la primera dirección activa del cliente o nil.
// El orden de creación define cuál es "la primera".
func (r *AddressRepo) FirstActiveByClient(clientID string) (*entity.Address, error) {
	query := `
		SELECT ` + addressColumns + `
		FROM addresses WHERE client_id = $1 AND active
		ORDER BY created_at LIMIT 1`
	return r.getOne(query, clientID)
}

// ListByClient lista las direcciones del cliente.
func (r *AddressRepo) ListByClient(clientID string) ([]*entity.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE client_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Address
	for rows.Next() {
		var a entity.Address
		if err := rows.Scan(&a.ID, &a.ClientID, &a.Line, &a.ZoneID, &a.MunicipalityID,
			&a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza una dirección.
func (r *AddressRepo) Update(address *entity.Address) error {
	query := `
		UPDATE addresses SET line = $2, zone_id = $3, municipality_id = $4, active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		address.ID, address.Line, address.ZoneID, address.MunicipalityID, address.Active, address.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	return nil
}

// Deactivate marca la dirección como inactiva.
func (r *AddressRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE addresses SET active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate address: %w", err)
	}
	return nil
}

func (r *AddressRepo) getOne(query string, args ...any) (*entity.Address, error) {
	var a entity.Address
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&a.ID, &a.ClientID, &a.Line, &a.ZoneID, &a.MunicipalityID,
		&a.Active, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address: %w", err)
	}
	return &a, nil
}
