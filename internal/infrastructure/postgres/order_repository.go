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

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, tenant_id, company_id, client_id, address_id, technician_id,
	service_type_id, start_time, end_time, status, notes, created_at, updated_at`

// OrderRepo implementación de OrderRepository sobre Postgres.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Acepta tanto el pool como una
// transacción activa (lo usa el TxRunner al crear órdenes).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una nueva orden de servicio.
func (r *OrderRepo) Create(order *entity.ServiceOrder) error {
	query := `
		INSERT INTO service_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.TenantID, order.CompanyID, order.ClientID,
		order.AddressID, order.TechnicianID, order.ServiceTypeID,
		order.StartTime, order.EndTime, order.Status, order.Notes,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(id string) (*entity.ServiceOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM service_orders WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return order, nil
}

// ListByCompany lista las órdenes de la empresa, más recientes primero.
func (r *OrderRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.ServiceOrder, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM service_orders
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

// ListByTechnician lista las órdenes asignadas a un técnico dentro de una
// empresa. El filtro de empresa va en el SQL para que la paginación no se
// corra cuando el técnico tiene órdenes en otras empresas.
func (r *OrderRepo) ListByTechnician(companyID, technicianID string, limit, offset int) ([]*entity.ServiceOrder, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM service_orders
		WHERE company_id = $1 AND technician_id = $2
		ORDER BY start_time DESC NULLS LAST
		LIMIT $3 OFFSET $4`
	return r.list(query, companyID, technicianID, limit, offset)
}

// Update actualiza los campos editables de la orden.
func (r *OrderRepo) Update(order *entity.ServiceOrder) error {
	query := `
		UPDATE service_orders
		SET address_id = $2, technician_id = $3, service_type_id = $4,
		    start_time = $5, end_time = $6, status = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		order.ID, order.AddressID, order.TechnicianID, order.ServiceTypeID,
		order.StartTime, order.EndTime, order.Status, order.Notes, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia únicamente el estado de la orden.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	query := `UPDATE service_orders SET status = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.ServiceOrder, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list service orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.ServiceOrder, error) {
	var o entity.ServiceOrder
	err := row.Scan(
		&o.ID, &o.TenantID, &o.CompanyID, &o.ClientID, &o.AddressID,
		&o.TechnicianID, &o.ServiceTypeID, &o.StartTime, &o.EndTime,
		&o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan service order: %w", err)
	}
	return &o, nil
}
