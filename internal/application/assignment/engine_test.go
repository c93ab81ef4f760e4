package assignment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenaxis/tenaxis-api/internal/application/assignment"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake store en memoria con contadores de llamadas
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	addressByID     map[string]*entity.Address
	activeByClient  map[string]*entity.Address
	byZone          map[string][]assignment.Candidate // key: companyID|zoneID
	byMunicipality  map[string][]assignment.Candidate // key: companyID|municipalityID
	rules           map[string]*entity.DrivingRestrictionRule // key: companyID|weekday
	overlaps        map[string]int // key: technicianID
	dayCounts       map[string]int // key: technicianID

	zoneCalls         int
	municipalityCalls int
	totalCalls        int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		addressByID:    map[string]*entity.Address{},
		activeByClient: map[string]*entity.Address{},
		byZone:         map[string][]assignment.Candidate{},
		byMunicipality: map[string][]assignment.Candidate{},
		rules:          map[string]*entity.DrivingRestrictionRule{},
		overlaps:       map[string]int{},
		dayCounts:      map[string]int{},
	}
}

func (f *fakeStore) FindAddressByID(_ context.Context, id string) (*entity.Address, error) {
	f.totalCalls++
	return f.addressByID[id], nil
}

func (f *fakeStore) FindActiveAddressByClient(_ context.Context, clientID string) (*entity.Address, error) {
	f.totalCalls++
	return f.activeByClient[clientID], nil
}

func (f *fakeStore) FindCandidatesByZone(_ context.Context, companyID, zoneID string) ([]assignment.Candidate, error) {
	f.totalCalls++
	f.zoneCalls++
	return f.byZone[companyID+"|"+zoneID], nil
}

func (f *fakeStore) FindCandidatesByMunicipality(_ context.Context, companyID, municipalityID string) ([]assignment.Candidate, error) {
	f.totalCalls++
	f.municipalityCalls++
	return f.byMunicipality[companyID+"|"+municipalityID], nil
}

func (f *fakeStore) FindActiveRestrictionRule(_ context.Context, companyID string, wd time.Weekday) (*entity.DrivingRestrictionRule, error) {
	f.totalCalls++
	return f.rules[companyID+"|"+wd.String()], nil
}

func (f *fakeStore) CountOverlappingOrders(_ context.Context, technicianID string, _, _ time.Time) (int, error) {
	f.totalCalls++
	return f.overlaps[technicianID], nil
}

func (f *fakeStore) CountOrdersOnDay(_ context.Context, technicianID string, _, _ time.Time) (int, error) {
	f.totalCalls++
	return f.dayCounts[technicianID], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyC = "company-c"
	clientX  = "client-x"
	zoneZ1   = "zone-z1"
	muniM1   = "muni-m1"
)

func strp(s string) *string { return &s }

// lunes 2 de marzo de 2026
func monday(hour, min int) *time.Time {
	t := time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
	return &t
}

func candidate(id, plate string, moto bool) assignment.Candidate {
	c := assignment.Candidate{MembershipID: id, Motorcycle: moto}
	if plate != "" {
		c.Plate = &plate
	}
	return c
}

func engineWith(store assignment.Store) *assignment.Engine {
	return assignment.NewEngine(store, assignment.Policy{PermitMissingPlate: true})
}

func requestAt(start, end *time.Time) assignment.Request {
	return assignment.Request{CompanyID: companyC, ClientID: clientX, StartTime: start, EndTime: end}
}

func withZoneAddress(f *fakeStore) {
	f.activeByClient[clientX] = &entity.Address{ID: "addr-1", ClientID: clientX, ZoneID: strp(zoneZ1), MunicipalityID: strp(muniM1), Active: true}
}

// ──────────────────────────────────────────────────────────────────────────────
// Localizador de candidatos
// ──────────────────────────────────────────────────────────────────────────────

func TestAssign_ZonaTienePrioridadSobreMunicipio(t *testing.T) {
	f := newFakeStore()
	withZoneAddress(f)
	f.byZone[companyC+"|"+zoneZ1] = []assignment.Candidate{candidate("tec-1", "", false)}
	// Hay alternativas por municipio, pero no deben consultarse.
	f.byMunicipality[companyC+"|"+muniM1] = []assignment.Candidate{candidate("tec-9", "", false)}

	got, err := engineWith(f).Assign(context.Background(), requestAt(monday(9, 0), monday(10, 0)))
	require.NoError(t, err)

	assert.Equal(t, "tec-1", got)
	assert.Equal(t, 1, f.zoneCalls)
	assert.Zero(t, f.municipalityCalls, "el nivel municipio no debe consultarse si la zona arrojó candidatos")
}

func TestAssign_MunicipioSoloComoFallback(t *testing.T) {
	f := newFakeStore()
	withZoneAddress(f)
	// Zona sin técnicos; municipio con uno.
	f.byMunicipality[companyC+"|"+muniM1] = []assignment.Candidate{candidate("tec-2", "", false)}

	got, err := engineWith(f).Assign(context.Background(), requestAt(monday(9, 0), monday(10, 0)))
	require.NoError(t, err)

	assert.Equal(t, "tec-2", got)
	assert.Equal(t, 1, f.zoneCalls)
	assert.Equal(t, 1, f.municipalityCalls)
}

func TestAssign_DireccionExplicitaSobreLaDelCliente(t *testing.T) {
	f := newFakeStore()
	f.addressByID["addr-7"] = &entity.Address{ID: "addr-7", ClientID: clientX, ZoneID: strp(zoneZ1), Active: true}
	f.byZone[companyC+"|"+zoneZ1] = []assignment.Candidate{candidate("tec-1", "", false)}

	req := requestAt(monday(9, 0), monday(10, 0))
	req.AddressID = strp("addr-7")
	got, err := engineWith(f).Assign(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "tec-1", got)
}

func TestAssign_SinDireccionResoluble_QuedaSinAsignar(t *testing.T) {
	f := newFakeStore() // el cliente no tiene direcciones activas

	got, err := engineWith(f).Assign(context.Background(), requestAt(monday(9, 0), monday(10, 0)))
	require.NoError(t, err, "la falta de dirección no es un error")
	assert.Empty(t, got)
}

func TestAssign_DireccionSinZonaNiMunicipio_QuedaSinAsignar(t *testing.T) {
	f := newFakeStore()
	f.activeByClient[clientX] = &entity.Address{ID: "addr-1", ClientID: clientX, Active: true}

	got, err := engineWith(f).Assign(context.Background(), requestAt(monday(9, 0), monday(10, 0)))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventana de tiempo
// ──────────────────────────────────────────────────────────────────────────────

func TestAssign_SinVentana_NoConsultaNada(t *testing.T) {
	f := newFakeStore()
	withZoneAddress(f)

	got, err := engineWith(f).Assign(context.Background(), requestAt(nil, monday(10, 0)))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, f.totalCalls, "sin hora de inicio no debe tocarse el store")

	got, err = engineWith(f).Assign(context.Background(), requestAt(monday(9, 0), nil))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, f.totalCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pico y placa
// ──────────────────────────────────────────────────────────────────────────────

func mondayRule(d1, d2 int) *entity.DrivingRestrictionRule {
	return &entity.DrivingRestrictionRule{ID: "rule-1", CompanyID: companyC, Weekday: time.Monday, Digit1: d1, Digit2: d2, Active: true}
}

func TestPicoYPlaca_MotoUsaPrimerDigito(t *testing.T) {
	f := newFakeStore()
	withZoneAddress(f)
	f.rules[companyC+"|"+time.Monday.String()] = mondayRule(7, 2)
	f.byZone[companyC+"|"+zoneZ1] = []assignment.Candidate{
		candidate("tec-moto", "7AB123", true), // primer dígito 7: excluido
		candidate("tec-libre", "AB1234", false),
	}

	got, err := engineWith(f).Assign(context.Background(), requestAt(monday(9, 0), monday(10, 0)))
	require.NoError(t, err)
	assert.Equal(t, "tec-libre", got)
}

func TestPicoYPlaca_CarroUsaUltimoDigito(t *testing.T) {
	f := newFakeStore()
	withZoneAddress(f)
	f.rules[companyC+"|"+time.Monday.String()] = mondayRule(7, 2)
	f.byZone[companyC+"|"+zoneZ1] = []assignment.Candidate{
		candidate("tec-a", "AB1237", false), // último dígito 7: excluido
		candidate("tec-b", "AB1234", false), // último dígito 4: pasa
	}

	got, err := engineWith(f).Assign(context.Background(), requestAt(monday(9, 0), monday(10, 0)))
	require.NoError(t, err)
	assert.Equal(t, "tec-b", got)
}

func TestPicoYPlaca_SinRegla_NadieExcluido(t *testing.T) {
	f := newFakeStore()
	withZoneAddress(f)
	f.byZone[companyC+"|"+zoneZ1] = []assignment.Candidate{candidate("tec-a", "AB1237", false)}

	got, err := engineWith(f).Assign(context.Background(), requestAt(monday(9, 0), monday(10, 0)))
	require.NoError(t, err)
	assert.Equal(t, "tec-a", got)
}

func TestPicoYPlaca_SinPlaca_PoliticaPermisiva(t *testing.T) {
	f := newFakeStore()
	withZoneAddress(f)
	f.rules[companyC+"|"+time.Monday.String()] = mondayRule(7, 2)
	f.byZone[companyC+"|"+zoneZ1] = []assignment.Candidate{candidate("tec-sin-placa", "", false)}

	// Política por defecto: sin placa no se excluye.
	got, err := engineWith(f).Assign(context.Background(), requestAt(monday(9, 0), monday(10, 0)))
	require.NoError(t, err)
	assert.Equal(t, "tec-sin-placa", got)

	// Con la política estricta, sí.
	strict := assignment.NewEngine(f, assignment.Policy{PermitMissingPlate: false})
	got, err = strict.Assign(context.Background(), requestAt(monday(9, 0), monday(10, 0)))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPicoYPlaca_TodosRestringidos_QuedaSinAsignar(t *testing.T) {
	f := newFakeStore()
	withZoneAddress(f)
	f.rules[companyC+"|"+time.Monday.String()] = mondayRule(1, 5)
	f.byZone[companyC+"|"+zoneZ1] = []assignment.Candidate{
		candidate("tec-1", "AAA111", false),
		candidate("tec-2", "BBB555", false),
	}

	got, err := engineWith(f).Assign(context.Background(), requestAt(monday(9, 0), monday(10, 0)))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cruce de agenda
// ──────────────────────────────────────────────────────────────────────────────

func TestDisponibilidad_TecnicoOcupadoExcluido(t *testing.T) {
	f := newFakeStore()
	withZoneAddress(f)
	f.byZone[companyC+"|"+zoneZ1] = []assignment.Candidate{
		candidate("tec-ocupado", "", false),
		candidate("tec-libre", "", false),
	}
	f.overlaps["tec-ocupado"] = 1

	got, err := engineWith(f).Assign(context.Background(), requestAt(monday(10, 30), monday(11, 30)))
	require.NoError(t, err)
	assert.Equal(t, "tec-libre", got)
}

func TestDisponibilidad_TodosOcupados_QuedaSinAsignar(t *testing.T) {
	f := newFakeStore()
	withZoneAddress(f)
	f.byZone[companyC+"|"+zoneZ1] = []assignment.Candidate{candidate("tec-1", "", false)}
	f.overlaps["tec-1"] = 2

	got, err := engineWith(f).Assign(context.Background(), requestAt(monday(9, 0), monday(10, 0)))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Balanceo de carga
// ──────────────────────────────────────────────────────────────────────────────

func TestBalanceo_EligeElMenosCargado(t *testing.T) {
	f := newFakeStore()
	withZoneAddress(f)
	f.byZone[companyC+"|"+zoneZ1] = []assignment.Candidate{
		candidate("tec-a", "", false),
		candidate("tec-b", "", false),
	}
	f.dayCounts["tec-a"] = 3
	f.dayCounts["tec-b"] = 1

	got, err := engineWith(f).Assign(context.Background(), requestAt(monday(9, 0), monday(10, 0)))
	require.NoError(t, err)
	assert.Equal(t, "tec-b", got)
}

func TestBalanceo_EmpateDeterministaPorIDMasBajo(t *testing.T) {
	f := newFakeStore()
	withZoneAddress(f)
	f.byZone[companyC+"|"+zoneZ1] = []assignment.Candidate{
		candidate("tec-b", "", false),
		candidate("tec-a", "", false),
	}
	f.dayCounts["tec-a"] = 2
	f.dayCounts["tec-b"] = 2

	for i := 0; i < 5; i++ {
		got, err := engineWith(f).Assign(context.Background(), requestAt(monday(9, 0), monday(10, 0)))
		require.NoError(t, err)
		assert.Equal(t, "tec-a", got, "el empate debe romperse siempre por el ID más bajo")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de punta a punta (empresa C, lunes, regla {1,5})
// ──────────────────────────────────────────────────────────────────────────────

func TestAssign_EscenarioCompleto(t *testing.T) {
	f := newFakeStore()
	withZoneAddress(f)
	f.rules[companyC+"|"+time.Monday.String()] = mondayRule(1, 5)
	f.byZone[companyC+"|"+zoneZ1] = []assignment.Candidate{
		candidate("t1", "AAA111", false), // termina en 1: excluido por pico y placa
		candidate("t2", "BBB222", false),
	}

	got, err := engineWith(f).Assign(context.Background(), requestAt(monday(9, 0), monday(10, 0)))
	require.NoError(t, err)
	assert.Equal(t, "t2", got)
}
