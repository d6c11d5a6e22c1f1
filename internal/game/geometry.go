package game

import "math"

// contact holds the result of a circle-vs-surface overlap test.
type contact struct {
	push   Vec2    // displacement that moves the circle fully out of the surface
	normal Vec2    // unit normal pointing from the surface toward the circle center
	point  Vec2    // closest point on the surface
	t      float64 // parameter along the segment, 0 at a and 1 at b
}

// circleSegmentContact tests a circle of radius r at c against segment a→b.
// The push lands the circle a hair beyond contact distance so the same
// overlap is not reported again next tick. A degenerate segment (a == b)
// falls back to a point test. A circle centered exactly on the surface has
// no usable normal and yields a zero push.
func circleSegmentContact(c Vec2, r float64, a, b Vec2) (contact, bool) {
	ab := b.Minus(a)
	ab2 := ab.MagnitudeSquared()
	if ab2 == 0 {
		diff := c.Minus(a)
		dist := diff.Magnitude()
		if dist >= r {
			return contact{point: a}, false
		}
		if dist == 0 {
			dist = 1e-9
		}
		n := diff.Times(1 / dist)
		return contact{push: n.Times(r - dist + 1e-9), normal: n, point: a}, true
	}

	t := c.Minus(a).Dot(ab) / ab2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := a.Plus(ab.Times(t))
	diff := c.Minus(closest)
	dist := diff.Magnitude()
	if dist >= r {
		return contact{point: closest, t: t}, false
	}
	if dist == 0 {
		dist = 1e-9
	}
	n := diff.Times(1 / dist)
	return contact{
		push:   n.Times(r - dist + 1e-9),
		normal: n,
		point:  closest,
		t:      t,
	}, true
}

// circleCircleContact tests two circles for overlap. The normal points from
// the second circle toward the first.
func circleCircleContact(c1 Vec2, r1 float64, c2 Vec2, r2 float64) (contact, bool) {
	diff := c1.Minus(c2)
	d := diff.Magnitude()
	if d >= r1+r2 {
		return contact{}, false
	}
	if d == 0 {
		d = 1e-9
	}
	n := diff.Times(1 / d)
	return contact{
		push:   n.Times(r1 + r2 - d + 1e-9),
		normal: n,
		point:  c2.Plus(n.Times(r2)),
	}, true
}

// reflect bounces v off a surface with unit normal n. Only an approaching
// velocity (negative normal component) is reflected; a separating velocity
// passes through unchanged so resting contact does not jitter.
func reflect(v, n Vec2, restitution float64) Vec2 {
	vn := v.Dot(n)
	if vn < 0 {
		return v.Minus(n.Times((1 + restitution) * vn))
	}
	return v
}

// radians converts degrees to radians.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
