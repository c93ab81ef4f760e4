package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenaxis/tenaxis-api/internal/application/assignment"
	"github.com/tenaxis/tenaxis-api/internal/application/dto"
	"github.com/tenaxis/tenaxis-api/internal/application/orders"
	"github.com/tenaxis/tenaxis-api/internal/domain"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
	"github.com/tenaxis/tenaxis-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memOrderRepo struct {
	orders []*entity.ServiceOrder
}

func (r *memOrderRepo) Create(o *entity.ServiceOrder) error { r.orders = append(r.orders, o); return nil }
func (r *memOrderRepo) GetByID(id string) (*entity.ServiceOrder, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}
func (r *memOrderRepo) ListByCompany(string, int, int) ([]*entity.ServiceOrder, error) { return nil, nil }

// ListByTechnician replica el contrato del SQL: filtra por empresa y técnico
// antes de aplicar LIMIT/OFFSET.
func (r *memOrderRepo) ListByTechnician(companyID, technicianID string, limit, offset int) ([]*entity.ServiceOrder, error) {
	var matched []*entity.ServiceOrder
	for _, o := range r.orders {
		if o.CompanyID == companyID && o.TechnicianID != nil && *o.TechnicianID == technicianID {
			matched = append(matched, o)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *memOrderRepo) Update(*entity.ServiceOrder) error { return nil }
func (r *memOrderRepo) UpdateStatus(id, status string) error {
	o, _ := r.GetByID(id)
	if o != nil {
		o.Status = status
	}
	return nil
}

type memTypeRepo struct {
	types []*entity.ServiceType
}

func (r *memTypeRepo) Create(st *entity.ServiceType) error { r.types = append(r.types, st); return nil }
func (r *memTypeRepo) GetByID(id string) (*entity.ServiceType, error) {
	for _, st := range r.types {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, nil
}
func (r *memTypeRepo) GetByName(tenantID, companyID, name string) (*entity.ServiceType, error) {
	for _, st := range r.types {
		if st.TenantID == tenantID && st.CompanyID == companyID && st.Name == name {
			return st, nil
		}
	}
	return nil, nil
}
func (r *memTypeRepo) ListByCompany(string) ([]*entity.ServiceType, error) { return nil, nil }

type memTx struct {
	orderRepo *memOrderRepo
	typeRepo  *memTypeRepo
}

func (t *memTx) Run(_ context.Context, fn func(repository.OrderRepository, repository.ServiceTypeRepository) error) error {
	return fn(t.orderRepo, t.typeRepo)
}

// stubAssigner devuelve siempre el mismo técnico y registra las invocaciones.
type stubAssigner struct {
	result string
	calls  int
	lastReq assignment.Request
}

func (s *stubAssigner) Assign(_ context.Context, req assignment.Request) (string, error) {
	s.calls++
	s.lastReq = req
	return s.result, nil
}

// ──────────────────────────────────────────────────────────────────────────────

const (
	tenantT  = "tenant-t"
	companyC = "company-c"
)

func setup(assigned string) (*orders.CreateOrderUseCase, *memTx, *stubAssigner) {
	tx := &memTx{orderRepo: &memOrderRepo{}, typeRepo: &memTypeRepo{}}
	asg := &stubAssigner{result: assigned}
	return orders.NewCreateOrderUseCase(tx, asg, 60), tx, asg
}

func baseRequest() dto.CreateOrderRequest {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	return dto.CreateOrderRequest{
		ClientID:    "client-x",
		ServiceType: "Fumigación",
		StartTime:   &start,
		EndTime:     &end,
	}
}

func TestCreate_TecnicoExplicito_NoInvocaElMotor(t *testing.T) {
	uc, tx, asg := setup("tec-del-motor")
	req := baseRequest()
	tech := "tec-manual"
	req.TechnicianID = &tech

	out, err := uc.Create(context.Background(), tenantT, companyC, req)
	require.NoError(t, err)

	require.NotNil(t, out.TechnicianID)
	assert.Equal(t, "tec-manual", *out.TechnicianID, "el técnico explícito se usa tal cual")
	assert.Zero(t, asg.calls, "con técnico explícito el motor no debe correr")
	assert.Len(t, tx.orderRepo.orders, 1)
}

func TestCreate_SinTecnico_UsaElMotor(t *testing.T) {
	uc, _, asg := setup("tec-auto")

	out, err := uc.Create(context.Background(), tenantT, companyC, baseRequest())
	require.NoError(t, err)

	require.NotNil(t, out.TechnicianID)
	assert.Equal(t, "tec-auto", *out.TechnicianID)
	assert.Equal(t, 1, asg.calls)
	assert.Equal(t, companyC, asg.lastReq.CompanyID)
}

func TestCreate_MotorSinResultado_OrdenQuedaSinAsignar(t *testing.T) {
	uc, tx, _ := setup("") // el motor no encuentra técnico

	out, err := uc.Create(context.Background(), tenantT, companyC, baseRequest())
	require.NoError(t, err, "no encontrar técnico nunca bloquea la creación")

	assert.Nil(t, out.TechnicianID)
	assert.Len(t, tx.orderRepo.orders, 1)
	assert.Equal(t, entity.OrderNueva, out.Status)
}

func TestCreate_SinVentana_OrdenSeCreaIgual(t *testing.T) {
	uc, tx, _ := setup("")
	req := baseRequest()
	req.StartTime = nil
	req.EndTime = nil

	out, err := uc.Create(context.Background(), tenantT, companyC, req)
	require.NoError(t, err)
	assert.Nil(t, out.TechnicianID)
	assert.Len(t, tx.orderRepo.orders, 1)
}

func TestCreate_DerivaHoraFinDeLaDuracionPorDefecto(t *testing.T) {
	uc, _, asg := setup("")
	req := baseRequest()
	req.EndTime = nil

	out, err := uc.Create(context.Background(), tenantT, companyC, req)
	require.NoError(t, err)

	require.NotNil(t, out.EndTime)
	assert.Equal(t, req.StartTime.Add(60*time.Minute), *out.EndTime)
	require.NotNil(t, asg.lastReq.EndTime, "el motor debe recibir la ventana ya derivada")
}

func TestCreate_VentanaInvalida(t *testing.T) {
	uc, _, _ := setup("")
	req := baseRequest()
	end := req.StartTime.Add(-time.Hour)
	req.EndTime = &end

	_, err := uc.Create(context.Background(), tenantT, companyC, req)
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}

func TestCreate_ReutilizaTipoDeServicioPorNombre(t *testing.T) {
	uc, tx, _ := setup("")

	first, err := uc.Create(context.Background(), tenantT, companyC, baseRequest())
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), tenantT, companyC, baseRequest())
	require.NoError(t, err)

	assert.Equal(t, first.ServiceTypeID, second.ServiceTypeID)
	assert.Len(t, tx.typeRepo.types, 1, "el tipo se crea una sola vez por (tenant, empresa, nombre)")
}

func TestCreate_EntradaInvalida(t *testing.T) {
	uc, _, _ := setup("")

	_, err := uc.Create(context.Background(), tenantT, companyC, dto.CreateOrderRequest{ServiceType: "Lavado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), tenantT, companyC, dto.CreateOrderRequest{ClientID: "client-x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
