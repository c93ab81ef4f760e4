package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tenaxis/tenaxis-api/internal/application/dto"
	"github.com/tenaxis/tenaxis-api/internal/domain"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
	"github.com/tenaxis/tenaxis-api/internal/domain/repository"
)

// RestrictionUseCase casos de uso para las reglas de pico y placa.
type RestrictionUseCase struct {
	repo repository.RestrictionRepository
}

// NewRestrictionUseCase construye el caso de uso.
func NewRestrictionUseCase(repo repository.RestrictionRepository) *RestrictionUseCase {
	return &RestrictionUseCase{repo: repo}
}

// Create registra la regla de un día. Se espera a lo sumo una activa por
// (empresa, día): si ya hay una se rechaza con conflicto.
func (uc *RestrictionUseCase) Create(companyID string, in dto.CreateRestrictionRequest) (*dto.RestrictionResponse, error) {
	if in.Weekday < 0 || in.Weekday > 6 || !validDigit(in.Digit1) || !validDigit(in.Digit2) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindActive(companyID, time.Weekday(in.Weekday))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	rule := &entity.DrivingRestrictionRule{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Weekday:   time.Weekday(in.Weekday),
		Digit1:    in.Digit1,
		Digit2:    in.Digit2,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(rule); err != nil {
		return nil, err
	}
	return toRestrictionResponse(rule), nil
}

// List lista las reglas de la empresa.
func (uc *RestrictionUseCase) List(companyID string) ([]*dto.RestrictionResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RestrictionResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRestrictionResponse(r))
	}
	return out, nil
}

// Update cambia dígitos o estado de una regla. Reactivar una regla falla con
// conflicto si ya hay otra activa para el mismo día.
func (uc *RestrictionUseCase) Update(companyID, id string, in dto.UpdateRestrictionRequest) (*dto.RestrictionResponse, error) {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil || rule.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Digit1 != nil {
		if !validDigit(*in.Digit1) {
			return nil, domain.ErrInvalidInput
		}
		rule.Digit1 = *in.Digit1
	}
	if in.Digit2 != nil {
		if !validDigit(*in.Digit2) {
			return nil, domain.ErrInvalidInput
		}
		rule.Digit2 = *in.Digit2
	}
	if in.Active != nil && *in.Active && !rule.Active {
		existing, err := uc.repo.FindActive(companyID, rule.Weekday)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != rule.ID {
			return nil, domain.ErrConflict
		}
	}
	if in.Active != nil {
		rule.Active = *in.Active
	}
	rule.UpdatedAt = time.Now()
	if err := uc.repo.Update(rule); err != nil {
		return nil, err
	}
	return toRestrictionResponse(rule), nil
}

// Delete elimina una regla de la empresa.
func (uc *RestrictionUseCase) Delete(companyID, id string) error {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if rule == nil || rule.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validDigit(d int) bool { return d >= 0 && d <= 9 }

func toRestrictionResponse(r *entity.DrivingRestrictionRule) *dto.RestrictionResponse {
	return &dto.RestrictionResponse{
		ID:        r.ID,
		CompanyID: r.CompanyID,
		Weekday:   int(r.Weekday),
		Digit1:    r.Digit1,
		Digit2:    r.Digit2,
		Active:    r.Active,
	}
}
