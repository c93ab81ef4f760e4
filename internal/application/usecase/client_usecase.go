package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tenaxis/tenaxis-api/internal/application/dto"
	"github.com/tenaxis/tenaxis-api/internal/domain"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
	"github.com/tenaxis/tenaxis-api/internal/domain/repository"
	"github.com/tenaxis/tenaxis-api/pkg/normalize"
)

// ClientUseCase casos de uso para clientes y sus direcciones.
type ClientUseCase struct {
	clientRepo  repository.ClientRepository
	addressRepo repository.AddressRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository, addressRepo repository.AddressRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, addressRepo: addressRepo}
}

// Create crea un cliente y, si viene, su primera dirección.
func (uc *ClientUseCase) Create(companyID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.DocumentID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.clientRepo.GetByCompanyAndDocument(companyID, in.DocumentID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Name:       in.Name,
		SearchKey:  normalize.SearchKey(in.Name),
		DocumentID: in.DocumentID,
		Email:      in.Email,
		Phone:      in.Phone,
		Score:      entity.ScoreC, // todo cliente empieza en la categoría baja
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	if in.Address != nil {
		if _, err := uc.AddAddress(companyID, client.ID, *in.Address); err != nil {
			return nil, err
		}
	}
	return toClientResponse(client), nil
}

// Update aplica cambios parciales a un cliente. El document_id no se puede
// cambiar; al cambiar el nombre se recalcula la llave de búsqueda.
func (uc *ClientUseCase) Update(companyID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		client.Name = *in.Name
		client.SearchKey = normalize.SearchKey(*in.Name)
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// AddAddress agrega una dirección activa al cliente.
func (uc *ClientUseCase) AddAddress(companyID, clientID string, in dto.CreateAddressRequest) (*dto.AddressResponse, error) {
	if in.Line == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	addr := &entity.Address{
		ID:             uuid.New().String(),
		ClientID:       clientID,
		Line:           in.Line,
		ZoneID:         in.ZoneID,
		MunicipalityID: in.MunicipalityID,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.addressRepo.Create(addr); err != nil {
		return nil, err
	}
	return toAddressResponse(addr), nil
}

// UpdateAddress aplica cambios parciales a una dirección del cliente.
func (uc *ClientUseCase) UpdateAddress(companyID, clientID, addressID string, in dto.UpdateAddressRequest) (*dto.AddressResponse, error) {
	addr, err := uc.ownedAddress(companyID, clientID, addressID)
	if err != nil {
		return nil, err
	}
	if in.Line != nil {
		if *in.Line == "" {
			return nil, domain.ErrInvalidInput
		}
		addr.Line = *in.Line
	}
	if in.ZoneID != nil {
		addr.ZoneID = in.ZoneID
	}
	if in.MunicipalityID != nil {
		addr.MunicipalityID = in.MunicipalityID
	}
	addr.UpdatedAt = time.Now()
	if err := uc.addressRepo.Update(addr); err != nil {
		return nil, err
	}
	return toAddressResponse(addr), nil
}

// RemoveAddress desactiva la dirección; las órdenes que la referencian la
// conservan.
func (uc *ClientUseCase) RemoveAddress(companyID, clientID, addressID string) error {
	if _, err := uc.ownedAddress(companyID, clientID, addressID); err != nil {
		return err
	}
	return uc.addressRepo.Deactivate(addressID)
}

func (uc *ClientUseCase) ownedAddress(companyID, clientID, addressID string) (*entity.Address, error) {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	addr, err := uc.addressRepo.GetByID(addressID)
	if err != nil {
		return nil, err
	}
	if addr == nil || addr.ClientID != clientID {
		return nil, domain.ErrNotFound
	}
	return addr, nil
}

// ListAddresses direcciones del cliente (activas e inactivas).
func (uc *ClientUseCase) ListAddresses(companyID, clientID string) ([]*dto.AddressResponse, error) {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	list, err := uc.addressRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AddressResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAddressResponse(a))
	}
	return out, nil
}

// List lista (o busca, si q no está vacío) clientes de la empresa.
func (uc *ClientUseCase) List(companyID, q string, limit, offset int) ([]*dto.ClientResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var (
		list []*entity.Client
		err  error
	)
	if q != "" {
		list, err = uc.clientRepo.Search(companyID, normalize.SearchKey(q), limit, offset)
	} else {
		list, err = uc.clientRepo.ListByCompany(companyID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// GetByID obtiene un cliente validando pertenencia a la empresa.
func (uc *ClientUseCase) GetByID(companyID, id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:         c.ID,
		CompanyID:  c.CompanyID,
		Name:       c.Name,
		DocumentID: c.DocumentID,
		Email:      c.Email,
		Phone:      c.Phone,
		Score:      c.Score,
	}
}

func toAddressResponse(a *entity.Address) *dto.AddressResponse {
	return &dto.AddressResponse{
		ID:             a.ID,
		ClientID:       a.ClientID,
		Line:           a.Line,
		ZoneID:         a.ZoneID,
		MunicipalityID: a.MunicipalityID,
		Active:         a.Active,
	}
}
