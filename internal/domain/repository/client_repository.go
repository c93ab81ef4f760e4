package repository

import "github.com/tenaxis/tenaxis-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByCompanyAndDocument(companyID, documentID string) (*entity.Client, error)
	// Search busca por clave normalizada (ver pkg/normalize.SearchKey).
	Search(companyID, searchKey string, limit, offset int) ([]*entity.Client, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Client, error)
	Update(client *entity.Client) error
	UpdateScore(clientID, score string) error
	// CountLiquidatedOrders cuenta órdenes LIQUIDADA del cliente (insumo del puntaje).
	CountLiquidatedOrders(clientID string) (int, error)
}

// AddressRepository define el puerto de persistencia para Address.
type AddressRepository interface {
	Create(address *entity.Address) error
	GetByID(id string) (*entity.Address, error)
	FirstActiveByClient(clientID string) (*entity.Address, error)
	ListByClient(clientID string) ([]*entity.Address, error)
	Update(address *entity.Address) error
	Deactivate(id string) error
}
