package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tenaxis/tenaxis-api/internal/application/dto"
	"github.com/tenaxis/tenaxis-api/internal/domain"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
	"github.com/tenaxis/tenaxis-api/internal/domain/repository"
)

// ZoneUseCase casos de uso para zonas de cobertura y el catálogo de municipios.
type ZoneUseCase struct {
	repo repository.ZoneRepository
}

// NewZoneUseCase construye el caso de uso.
func NewZoneUseCase(repo repository.ZoneRepository) *ZoneUseCase {
	return &ZoneUseCase{repo: repo}
}

// Create crea una zona de la empresa.
func (uc *ZoneUseCase) Create(companyID string, in dto.CreateZoneRequest) (*dto.ZoneResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MunicipalityID != nil {
		mun, err := uc.repo.GetMunicipalityByID(*in.MunicipalityID)
		if err != nil {
			return nil, err
		}
		if mun == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	zone := &entity.Zone{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		Name:           in.Name,
		MunicipalityID: in.MunicipalityID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.CreateZone(zone); err != nil {
		return nil, err
	}
	return toZoneResponse(zone), nil
}

// List lista las zonas de la empresa.
func (uc *ZoneUseCase) List(companyID string) ([]*dto.ZoneResponse, error) {
	list, err := uc.repo.ListZonesByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ZoneResponse, 0, len(list))
	for _, z := range list {
		out = append(out, toZoneResponse(z))
	}
	return out, nil
}

// ListMunicipalities catálogo completo de municipios.
func (uc *ZoneUseCase) ListMunicipalities() ([]*dto.MunicipalityResponse, error) {
	list, err := uc.repo.ListMunicipalities()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MunicipalityResponse, 0, len(list))
	for _, m := range list {
		out = append(out, &dto.MunicipalityResponse{
			ID:       m.ID,
			Name:     m.Name,
			DANECode: m.DANECode,
		})
	}
	return out, nil
}

func toZoneResponse(z *entity.Zone) *dto.ZoneResponse {
	return &dto.ZoneResponse{
		ID:             z.ID,
		CompanyID:      z.CompanyID,
		Name:           z.Name,
		MunicipalityID: z.MunicipalityID,
	}
}
