package game

// Ball is the single pinball's physics state.
type Ball struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
	InPlay bool // false while parked in the launch lane
}

// integrate advances the ball one fixed step: semi-implicit Euler (velocity
// first, then position from the updated velocity), proportional air drag and
// a hard speed cap. A parked ball does not move.
func (b *Ball) integrate(dt, gravity, dragFactor, maxSpeed float64) {
	if !b.InPlay {
		return
	}
	b.Vel.Y += gravity * dt
	b.Vel = b.Vel.Times(dragFactor)
	if sp := b.Vel.Magnitude(); sp > maxSpeed {
		b.Vel = b.Vel.Times(maxSpeed / sp)
	}
	b.Pos = b.Pos.Plus(b.Vel.Times(dt))
}
