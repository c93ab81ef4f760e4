package orders_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenaxis/tenaxis-api/internal/application/dto"
	"github.com/tenaxis/tenaxis-api/internal/application/orders"
	"github.com/tenaxis/tenaxis-api/internal/domain"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
)

type spyScorer struct {
	clients []string
}

func (s *spyScorer) Recalculate(_ context.Context, clientID string) error {
	s.clients = append(s.clients, clientID)
	return nil
}

func seededOrder(status string) (*orders.ManageOrderUseCase, *spyScorer) {
	repo := &memOrderRepo{orders: []*entity.ServiceOrder{{
		ID:        "order-1",
		CompanyID: companyC,
		ClientID:  "client-x",
		Status:    status,
	}}}
	scorer := &spyScorer{}
	return orders.NewManageOrderUseCase(repo, scorer), scorer
}

type failingScorer struct{}

func (failingScorer) Recalculate(context.Context, string) error {
	return assert.AnError
}

func TestListByTechnician_PaginaDentroDeLaEmpresa(t *testing.T) {
	tech := "tech-1"
	repo := &memOrderRepo{orders: []*entity.ServiceOrder{
		{ID: "o1", CompanyID: companyC, TechnicianID: &tech},
		{ID: "o2", CompanyID: "otra-empresa", TechnicianID: &tech},
		{ID: "o3", CompanyID: companyC, TechnicianID: &tech},
	}}
	uc := orders.NewManageOrderUseCase(repo, &spyScorer{})

	// Las órdenes del técnico en otras empresas no consumen la página.
	page, err := uc.ListByTechnician(companyC, tech, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "o1", page[0].ID)
	assert.Equal(t, "o3", page[1].ID)

	// Ni corren el offset de la página siguiente.
	page, err = uc.ListByTechnician(companyC, tech, 2, 2)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestChangeStatus_EstadoPersisteAunqueFalleElRecalculo(t *testing.T) {
	repo := &memOrderRepo{orders: []*entity.ServiceOrder{{
		ID:        "order-1",
		CompanyID: companyC,
		ClientID:  "client-x",
		Status:    entity.OrderTecnicoFinalizo,
	}}}
	uc := orders.NewManageOrderUseCase(repo, failingScorer{})

	_, err := uc.ChangeStatus(context.Background(), companyC, "order-1", entity.OrderLiquidada)
	require.Error(t, err)

	// El cambio de estado ya quedó; el siguiente recálculo lo recoge porque
	// recuenta desde cero.
	stored, err := repo.GetByID("order-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderLiquidada, stored.Status)
}

func TestChangeStatus_EntrarALiquidadaRecalculaPuntaje(t *testing.T) {
	uc, scorer := seededOrder(entity.OrderTecnicoFinalizo)

	out, err := uc.ChangeStatus(context.Background(), companyC, "order-1", entity.OrderLiquidada)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderLiquidada, out.Status)
	assert.Equal(t, []string{"client-x"}, scorer.clients)
}

func TestChangeStatus_SalirDeLiquidadaTambienRecalcula(t *testing.T) {
	uc, scorer := seededOrder(entity.OrderLiquidada)

	_, err := uc.ChangeStatus(context.Background(), companyC, "order-1", entity.OrderAnulada)
	require.NoError(t, err)
	assert.Len(t, scorer.clients, 1)
}

func TestChangeStatus_TransicionNormalNoRecalcula(t *testing.T) {
	uc, scorer := seededOrder(entity.OrderNueva)

	_, err := uc.ChangeStatus(context.Background(), companyC, "order-1", entity.OrderEnRuta)
	require.NoError(t, err)
	assert.Empty(t, scorer.clients)
}

func TestChangeStatus_EstadoInvalido(t *testing.T) {
	uc, _ := seededOrder(entity.OrderNueva)

	_, err := uc.ChangeStatus(context.Background(), companyC, "order-1", "CERRADA")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestChangeStatus_OrdenDeOtraEmpresa(t *testing.T) {
	uc, _ := seededOrder(entity.OrderNueva)

	_, err := uc.ChangeStatus(context.Background(), "otra-empresa", "order-1", entity.OrderEnRuta)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_DesasignarTecnico(t *testing.T) {
	repo := &memOrderRepo{orders: []*entity.ServiceOrder{{
		ID:           "order-1",
		CompanyID:    companyC,
		ClientID:     "client-x",
		TechnicianID: strp("tec-1"),
		Status:       entity.OrderAgendada,
	}}}
	uc := orders.NewManageOrderUseCase(repo, nil)

	empty := ""
	out, err := uc.Update(context.Background(), companyC, "order-1", dto.UpdateOrderRequest{TechnicianID: &empty})
	require.NoError(t, err)
	assert.Nil(t, out.TechnicianID)
}

func strp(s string) *string { return &s }
