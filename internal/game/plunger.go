package game

import "math"

// Plunger charges while held and launches the parked ball on release.
// Charge is a normalized level in [0, 1].
type Plunger struct {
	Charge   float64
	Charging bool
}

// charge raises the level linearly, clamped at full.
func (p *Plunger) charge(rate, dt float64) {
	if !p.Charging {
		return
	}
	p.Charge = math.Min(1, p.Charge+rate*dt)
}

// reset drops the plunger back to an idle, uncharged state.
func (p *Plunger) reset() {
	p.Charge = 0
	p.Charging = false
}
