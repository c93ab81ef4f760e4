package repository

import (
	"time"

	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
)

// RestrictionRepository define el puerto de persistencia para las reglas de
// pico y placa.
type RestrictionRepository interface {
	Create(rule *entity.DrivingRestrictionRule) error
	GetByID(id string) (*entity.DrivingRestrictionRule, error)
	// FindActive devuelve la regla activa de la empresa para el día, o nil.
	FindActive(companyID string, weekday time.Weekday) (*entity.DrivingRestrictionRule, error)
	ListByCompany(companyID string) ([]*entity.DrivingRestrictionRule, error)
	Update(rule *entity.DrivingRestrictionRule) error
	Delete(id string) error
}
