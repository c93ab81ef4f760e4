// Package assignment implementa la asignación automática de técnicos a
// órdenes de servicio: candidatura geográfica (zona, luego municipio),
// filtro regulatorio de pico y placa, exclusión por cruce de agenda y
// balanceo de carga del día.
package assignment

import (
	"context"
	"strconv"
	"time"

	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
)

// Request datos de la orden prospectiva que alimentan el motor.
type Request struct {
	CompanyID string
	ClientID  string
	AddressID *string // nil: usar la primera dirección activa del cliente
	StartTime *time.Time
	EndTime   *time.Time
}

// Policy decisiones de política del motor, separadas para que los tests
// puedan afirmar sobre ellas explícitamente.
type Policy struct {
	// PermitMissingPlate: un candidato sin placa registrada pasa el filtro de
	// pico y placa (la regla solo se aplica cuando hay datos para evaluarla).
	PermitMissingPlate bool
}

// Engine selecciona el mejor técnico disponible para una orden, o "" si no
// hay ninguno. Es de solo lectura y consultivo: no toma locks, y dos
// creaciones concurrentes pueden elegir el mismo técnico (mejor esfuerzo).
type Engine struct {
	store  Store
	policy Policy
}

// NewEngine construye el motor.
func NewEngine(store Store, policy Policy) *Engine {
	return &Engine{store: store, policy: policy}
}

// Assign ejecuta el pipeline completo. Devuelve el membership ID del técnico
// elegido, o cadena vacía si la orden debe quedar sin asignar. Solo los
// fallos de persistencia producen error; quedarse sin candidatos no.
func (e *Engine) Assign(ctx context.Context, req Request) (string, error) {
	// La asignación automática exige una ventana de tiempo concreta.
	if req.StartTime == nil || req.EndTime == nil {
		return "", nil
	}

	candidates, err := e.locateCandidates(ctx, req)
	if err != nil || len(candidates) == 0 {
		return "", err
	}

	candidates, err = e.filterRestricted(ctx, req.CompanyID, *req.StartTime, candidates)
	if err != nil || len(candidates) == 0 {
		return "", err
	}

	viable, err := e.filterBusy(ctx, *req.StartTime, *req.EndTime, candidates)
	if err != nil || len(viable) == 0 {
		return "", err
	}

	return e.pickLeastLoaded(ctx, *req.StartTime, viable)
}

// locateCandidates resuelve la dirección objetivo y devuelve los técnicos
// elegibles por geografía. La zona tiene prioridad estricta: el municipio
// solo se consulta cuando la zona no arroja nada (nunca se unen los dos
// niveles).
func (e *Engine) locateCandidates(ctx context.Context, req Request) ([]Candidate, error) {
	addr, err := e.resolveAddress(ctx, req)
	if err != nil {
		return nil, err
	}
	if addr == nil {
		// Sin dirección resoluble la orden se crea sin asignar, no se rechaza.
		return nil, nil
	}

	if addr.ZoneID != nil {
		candidates, err := e.store.FindCandidatesByZone(ctx, req.CompanyID, *addr.ZoneID)
		if err != nil {
			return nil, err
		}
		if len(candidates) > 0 {
			return candidates, nil
		}
	}
	if addr.MunicipalityID != nil {
		return e.store.FindCandidatesByMunicipality(ctx, req.CompanyID, *addr.MunicipalityID)
	}
	return nil, nil
}

func (e *Engine) resolveAddress(ctx context.Context, req Request) (*entity.Address, error) {
	if req.AddressID != nil {
		return e.store.FindAddressByID(ctx, *req.AddressID)
	}
	return e.store.FindActiveAddressByClient(ctx, req.ClientID)
}

// filterRestricted aplica el pico y placa de la empresa para el día de la
// orden. Sin regla activa no se excluye a nadie.
func (e *Engine) filterRestricted(ctx context.Context, companyID string, start time.Time, candidates []Candidate) ([]Candidate, error) {
	rule, err := e.store.FindActiveRestrictionRule(ctx, companyID, start.Weekday())
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return candidates, nil
	}

	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if e.restricted(rule, c) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// restricted evalúa la regla sobre un candidato. En motos aplica el primer
// carácter de la placa; en carros el último. Un carácter no numérico no se
// puede evaluar y no excluye.
func (e *Engine) restricted(rule *entity.DrivingRestrictionRule, c Candidate) bool {
	if c.Plate == nil || *c.Plate == "" {
		return !e.policy.PermitMissingPlate
	}
	plate := *c.Plate
	var ch byte
	if c.Motorcycle {
		ch = plate[0]
	} else {
		ch = plate[len(plate)-1]
	}
	digit, err := strconv.Atoi(string(ch))
	if err != nil {
		return false
	}
	return rule.Forbids(digit)
}

// filterBusy descarta candidatos con alguna orden que se cruce con la
// ventana [start, end) solicitada.
func (e *Engine) filterBusy(ctx context.Context, start, end time.Time, candidates []Candidate) ([]Candidate, error) {
	viable := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		n, err := e.store.CountOverlappingOrders(ctx, c.MembershipID, start, end)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			viable = append(viable, c)
		}
	}
	return viable, nil
}

// pickLeastLoaded cuenta las órdenes de cada candidato en el día calendario
// UTC de la orden y elige el de menor carga. El empate se rompe por el
// membership ID más bajo para que el resultado sea reproducible.
func (e *Engine) pickLeastLoaded(ctx context.Context, start time.Time, viable []Candidate) (string, error) {
	dayStart := start.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	best := ""
	bestCount := -1
	for _, c := range viable {
		n, err := e.store.CountOrdersOnDay(ctx, c.MembershipID, dayStart, dayEnd)
		if err != nil {
			return "", err
		}
		if bestCount == -1 || n < bestCount || (n == bestCount && c.MembershipID < best) {
			best = c.MembershipID
			bestCount = n
		}
	}
	return best, nil
}
