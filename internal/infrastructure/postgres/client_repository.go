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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, company_id, name, search_key, document_id, email, phone, score, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.CompanyID, client.Name, client.SearchKey, client.DocumentID,
		client.Email, client.Phone, client.Score, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.getOne(`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
}

// GetByCompanyAndDocument obtiene un cliente por empresa y NIT/cédula.
func (r *ClientRepo) GetByCompanyAndDocument(companyID, documentID string) (*entity.Client, error) {
	return r.getOne(`SELECT `+clientColumns+` FROM clients WHERE company_id = $1 AND document_id = $2`, companyID, documentID)
}

// Search busca por clave normalizada con LIKE.
func (r *ClientRepo) Search(companyID, searchKey string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients WHERE company_id = $1 AND search_key LIKE '%' || $2 || '%'
		ORDER BY name LIMIT $3 OFFSET $4`
	return r.list(query, companyID, searchKey, limit, offset)
}

// ListByCompany lista clientes de la empresa con paginación.
func (r *ClientRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

// Update actualiza un cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, search_key = $3, document_id = $4, email = $5, phone = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.SearchKey, client.DocumentID, client.Email, client.Phone, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// UpdateScore fija la categoría de puntaje del cliente.
func (r *ClientRepo) UpdateScore(clientID, score string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE clients SET score = $2, updated_at = now() WHERE id = $1`, clientID, score)
	if err != nil {
		return fmt.Errorf("update client score: %w", err)
	}
	return nil
}

// CountLiquidatedOrders cuenta órdenes LIQUIDADA del cliente.
func (r *ClientRepo) CountLiquidatedOrders(clientID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM service_orders WHERE client_id = $1 AND status = 'LIQUIDADA'`, clientID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count liquidated orders: %w", err)
	}
	return n, nil
}

func (r *ClientRepo) getOne(query string, args ...any) (*entity.Client, error) {
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.SearchKey, &c.DocumentID,
		&c.Email, &c.Phone, &c.Score, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

func (r *ClientRepo) list(query string, args ...any) ([]*entity.Client, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.SearchKey, &c.DocumentID,
			&c.Email, &c.Phone, &c.Score, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
