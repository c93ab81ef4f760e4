package repository

import (
	"time"

	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
)

// ConsignmentRepository define el puerto de persistencia para consignaciones
// de efectivo.
type ConsignmentRepository interface {
	Create(c *entity.Consignment) error
	GetByID(id string) (*entity.Consignment, error)
	ListByCompany(companyID string, from, to *time.Time, limit, offset int) ([]*entity.Consignment, error)
	ListByMembership(membershipID string, limit, offset int) ([]*entity.Consignment, error)
	UpdateStatus(id, status string) error
}
