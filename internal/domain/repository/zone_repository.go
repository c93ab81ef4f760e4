package repository

import "github.com/tenaxis/tenaxis-api/internal/domain/entity"

// ZoneRepository define el puerto de persistencia para zonas y municipios.
type ZoneRepository interface {
	CreateZone(zone *entity.Zone) error
	GetZoneByID(id string) (*entity.Zone, error)
	ListZonesByCompany(companyID string) ([]*entity.Zone, error)
	GetMunicipalityByID(id string) (*entity.Municipality, error)
	ListMunicipalities() ([]*entity.Municipality, error)
}
