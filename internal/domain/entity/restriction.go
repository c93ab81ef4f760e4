package entity

import "time"

// DrivingRestrictionRule regla de pico y placa de una empresa para un día de
// la semana: dos últimos dígitos de placa (o primer dígito en motos) que no
// pueden circular ese día. Se espera a lo sumo una regla activa por
// (empresa, día).
type DrivingRestrictionRule struct {
	ID        string
	CompanyID string
	Weekday   time.Weekday
	Digit1    int
	Digit2    int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Forbids indica si la regla prohíbe circular al dígito dado.
func (r *DrivingRestrictionRule) Forbids(digit int) bool {
	return digit == r.Digit1 || digit == r.Digit2
}
