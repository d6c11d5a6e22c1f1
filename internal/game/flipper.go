package game

import "math"

// Side distinguishes the two flippers.
type Side string

const (
	SideLeft  Side = "LEFT"
	SideRight Side = "RIGHT"
)

// Flipper is a player-controlled paddle rotating about a fixed pivot.
// Angles are in radians; the left flipper uses positive angles and the
// right flipper negative ones. Both rest near horizontal and swing up
// toward MaxAngle while held.
type Flipper struct {
	Side      Side
	Pivot     Vec2
	Length    float64
	RestAngle float64
	MaxAngle  float64 // flip target while held
	Speed     float64 // rad/s, always positive
	Angle     float64
	AngVel    float64 // realized rad/s for the current tick
	Held      bool
}

func newFlipper(side Side, pivot Vec2, length, restDeg, maxDeg, speedDeg float64) *Flipper {
	rest := radians(restDeg)
	max := radians(maxDeg)
	if side == SideRight {
		rest, max = -rest, -max
	}
	return &Flipper{
		Side:      side,
		Pivot:     pivot,
		Length:    length,
		RestAngle: rest,
		MaxAngle:  max,
		Speed:     radians(speedDeg),
		Angle:     rest,
	}
}

// advance rotates toward the flip target (held) or the rest angle at the
// fixed angular speed, clamping at the target, and records the realized
// angular velocity for impulse transfer.
func (f *Flipper) advance(dt float64) {
	target := f.RestAngle
	if f.Held {
		target = f.MaxAngle
	}
	prev := f.Angle
	if f.Angle < target {
		f.Angle = math.Min(f.Angle+f.Speed*dt, target)
	} else if f.Angle > target {
		f.Angle = math.Max(f.Angle-f.Speed*dt, target)
	}
	f.AngVel = (f.Angle - prev) / dt
}

// directionAt returns the unit vector from pivot to tip at the given angle.
func (f *Flipper) directionAt(angle float64) Vec2 {
	if f.Side == SideLeft {
		return NewVec2(math.Cos(angle), -math.Sin(angle))
	}
	return NewVec2(-math.Cos(angle), math.Sin(angle))
}

// tangentAt returns the direction a paddle surface point moves for a
// positive angular velocity: the derivative of directionAt.
func (f *Flipper) tangentAt(angle float64) Vec2 {
	if f.Side == SideLeft {
		return NewVec2(-math.Sin(angle), -math.Cos(angle))
	}
	return NewVec2(math.Sin(angle), math.Cos(angle))
}

// segmentAt returns the paddle segment endpoints at the given angle.
func (f *Flipper) segmentAt(angle float64) (Vec2, Vec2) {
	return f.Pivot, f.Pivot.Plus(f.directionAt(angle).Times(f.Length))
}

// Segment returns the paddle segment at the current angle.
func (f *Flipper) Segment() (Vec2, Vec2) {
	return f.segmentAt(f.Angle)
}

// surfaceVelocityAt returns the velocity of the paddle surface at point p
// while the paddle rotates at its current angular velocity.
func (f *Flipper) surfaceVelocityAt(angle float64, p Vec2) Vec2 {
	r := p.Minus(f.Pivot).Magnitude()
	return f.tangentAt(angle).Times(r * f.AngVel)
}

// bounds returns the legal angle range in ascending order.
func (f *Flipper) bounds() (float64, float64) {
	lo, hi := f.RestAngle, f.MaxAngle
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// withinBounds reports whether the angle is inside the rest/max range.
func (f *Flipper) withinBounds() bool {
	lo, hi := f.bounds()
	return f.Angle >= lo-1e-9 && f.Angle <= hi+1e-9
}

// clampAngle forces the angle back inside its legal range.
func (f *Flipper) clampAngle() {
	lo, hi := f.bounds()
	if f.Angle < lo {
		f.Angle = lo
	} else if f.Angle > hi {
		f.Angle = hi
	}
}
