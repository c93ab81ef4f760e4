package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenaxis/tenaxis-api/internal/application/dto"
	"github.com/tenaxis/tenaxis-api/internal/application/usecase"
	"github.com/tenaxis/tenaxis-api/internal/domain"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
)

type memRestrictionRepo struct {
	rules []*entity.DrivingRestrictionRule
}

func (r *memRestrictionRepo) Create(rule *entity.DrivingRestrictionRule) error {
	r.rules = append(r.rules, rule)
	return nil
}

func (r *memRestrictionRepo) GetByID(id string) (*entity.DrivingRestrictionRule, error) {
	for _, rule := range r.rules {
		if rule.ID == id {
			return rule, nil
		}
	}
	return nil, nil
}

func (r *memRestrictionRepo) FindActive(companyID string, weekday time.Weekday) (*entity.DrivingRestrictionRule, error) {
	for _, rule := range r.rules {
		if rule.CompanyID == companyID && rule.Weekday == weekday && rule.Active {
			return rule, nil
		}
	}
	return nil, nil
}

func (r *memRestrictionRepo) ListByCompany(companyID string) ([]*entity.DrivingRestrictionRule, error) {
	var out []*entity.DrivingRestrictionRule
	for _, rule := range r.rules {
		if rule.CompanyID == companyID {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (r *memRestrictionRepo) Update(rule *entity.DrivingRestrictionRule) error {
	for i, existing := range r.rules {
		if existing.ID == rule.ID {
			r.rules[i] = rule
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memRestrictionRepo) Delete(id string) error {
	for i, rule := range r.rules {
		if rule.ID == id {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

// ────────────────────────────────────────────────────────────────────────────

func TestRestrictionCreate_RechazaSegundaReglaActivaMismoDia(t *testing.T) {
	uc := usecase.NewRestrictionUseCase(&memRestrictionRepo{})

	_, err := uc.Create("co-1", dto.CreateRestrictionRequest{Weekday: 1, Digit1: 5, Digit2: 6})
	require.NoError(t, err)

	_, err = uc.Create("co-1", dto.CreateRestrictionRequest{Weekday: 1, Digit1: 7, Digit2: 8})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// El mismo día en otra empresa no choca.
	_, err = uc.Create("co-2", dto.CreateRestrictionRequest{Weekday: 1, Digit1: 7, Digit2: 8})
	assert.NoError(t, err)
}

func TestRestrictionCreate_ValidaRangos(t *testing.T) {
	uc := usecase.NewRestrictionUseCase(&memRestrictionRepo{})

	_, err := uc.Create("co-1", dto.CreateRestrictionRequest{Weekday: 7, Digit1: 1, Digit2: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("co-1", dto.CreateRestrictionRequest{Weekday: 1, Digit1: 10, Digit2: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRestrictionUpdate_ReactivarConOtraActivaFalla(t *testing.T) {
	repo := &memRestrictionRepo{}
	uc := usecase.NewRestrictionUseCase(repo)

	inactive, err := uc.Create("co-1", dto.CreateRestrictionRequest{Weekday: 2, Digit1: 1, Digit2: 2})
	require.NoError(t, err)
	_, err = uc.Update("co-1", inactive.ID, dto.UpdateRestrictionRequest{Active: boolPtr(false)})
	require.NoError(t, err)

	active, err := uc.Create("co-1", dto.CreateRestrictionRequest{Weekday: 2, Digit1: 3, Digit2: 4})
	require.NoError(t, err)

	_, err = uc.Update("co-1", inactive.ID, dto.UpdateRestrictionRequest{Active: boolPtr(true)})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Desactivando la otra, la reactivación procede.
	_, err = uc.Update("co-1", active.ID, dto.UpdateRestrictionRequest{Active: boolPtr(false)})
	require.NoError(t, err)
	out, err := uc.Update("co-1", inactive.ID, dto.UpdateRestrictionRequest{Active: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, out.Active)
}

func TestRestrictionUpdate_CambiaDigitos(t *testing.T) {
	uc := usecase.NewRestrictionUseCase(&memRestrictionRepo{})

	rule, err := uc.Create("co-1", dto.CreateRestrictionRequest{Weekday: 3, Digit1: 1, Digit2: 2})
	require.NoError(t, err)

	out, err := uc.Update("co-1", rule.ID, dto.UpdateRestrictionRequest{Digit1: intPtr(9), Digit2: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 9, out.Digit1)
	assert.Equal(t, 0, out.Digit2)

	_, err = uc.Update("co-1", rule.ID, dto.UpdateRestrictionRequest{Digit1: intPtr(12)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRestrictionUpdate_OtraEmpresaNoVe(t *testing.T) {
	uc := usecase.NewRestrictionUseCase(&memRestrictionRepo{})

	rule, err := uc.Create("co-1", dto.CreateRestrictionRequest{Weekday: 4, Digit1: 1, Digit2: 2})
	require.NoError(t, err)

	_, err = uc.Update("co-2", rule.ID, dto.UpdateRestrictionRequest{Active: boolPtr(false)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete("co-2", rule.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
