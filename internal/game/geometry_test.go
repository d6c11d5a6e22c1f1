package game

import (
	"math"
	"testing"
)

func TestCircleSegmentContactMidSegment(t *testing.T) {
	// Vertical segment at x=0, circle 3px to the right with radius 5.
	c, hit := circleSegmentContact(NewVec2(3, 50), 5, NewVec2(0, 0), NewVec2(0, 100))
	if !hit {
		t.Fatal("expected contact")
	}
	if c.normal.X < 0.999 || math.Abs(c.normal.Y) > 1e-9 {
		t.Errorf("normal = %+v, want +x", c.normal)
	}
	if math.Abs(c.point.Y-50) > 1e-9 || math.Abs(c.t-0.5) > 1e-9 {
		t.Errorf("closest point = %+v at t=%v, want (0,50) at 0.5", c.point, c.t)
	}
	resolved := NewVec2(3, 50).Plus(c.push)
	if resolved.X < 5 {
		t.Errorf("push leaves circle overlapping: x = %v", resolved.X)
	}
}

func TestCircleSegmentContactEndpoint(t *testing.T) {
	// Circle past the segment end contacts the endpoint like a rounded
	// corner.
	c, hit := circleSegmentContact(NewVec2(0, -3), 5, NewVec2(0, 0), NewVec2(0, 100))
	if !hit {
		t.Fatal("expected endpoint contact")
	}
	if c.t != 0 {
		t.Errorf("t = %v, want clamped to 0", c.t)
	}
	if c.normal.Y > -0.999 {
		t.Errorf("normal = %+v, want -y away from the endpoint", c.normal)
	}
}

func TestCircleSegmentContactMiss(t *testing.T) {
	if _, hit := circleSegmentContact(NewVec2(10, 50), 5, NewVec2(0, 0), NewVec2(0, 100)); hit {
		t.Error("circle 10px away with radius 5 must not contact")
	}
}

func TestCircleSegmentContactDegenerate(t *testing.T) {
	// A zero-length segment behaves as a point obstacle.
	c, hit := circleSegmentContact(NewVec2(3, 0), 5, NewVec2(0, 0), NewVec2(0, 0))
	if !hit {
		t.Fatal("expected contact with point obstacle")
	}
	if c.normal.X < 0.999 {
		t.Errorf("normal = %+v, want +x", c.normal)
	}
	if _, hit := circleSegmentContact(NewVec2(6, 0), 5, NewVec2(0, 0), NewVec2(0, 0)); hit {
		t.Error("circle 6px from point with radius 5 must not contact")
	}
}

func TestCircleCircleContact(t *testing.T) {
	c, hit := circleCircleContact(NewVec2(7, 0), 5, NewVec2(0, 0), 5)
	if !hit {
		t.Fatal("expected overlap of circles 7px apart with radii 5+5")
	}
	if c.normal.X < 0.999 {
		t.Errorf("normal = %+v, want from second circle toward first", c.normal)
	}
	resolved := NewVec2(7, 0).Plus(c.push)
	if resolved.X < 10 {
		t.Errorf("push leaves circles overlapping: distance = %v", resolved.X)
	}

	if _, hit := circleCircleContact(NewVec2(11, 0), 5, NewVec2(0, 0), 5); hit {
		t.Error("circles 11px apart with radii 5+5 must not contact")
	}
}

func TestReflectApproachingVelocity(t *testing.T) {
	// Ball moving down onto a floor whose normal points up (-y in screen
	// coordinates), restitution 0.5.
	v := reflect(NewVec2(2, 5), NewVec2(0, -1), 0.5)
	if math.Abs(v.X-2) > 1e-9 {
		t.Errorf("tangential component changed: %v", v.X)
	}
	if math.Abs(v.Y+2.5) > 1e-9 {
		t.Errorf("normal component = %v, want -2.5", v.Y)
	}
}

func TestReflectSeparatingVelocityUnchanged(t *testing.T) {
	v := reflect(NewVec2(2, -5), NewVec2(0, -1), 0.5)
	if v.X != 2 || v.Y != -5 {
		t.Errorf("separating velocity was altered: %+v", v)
	}
}
