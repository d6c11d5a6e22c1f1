package game

import (
	"math"

	"github.com/playmatatu/pinball/internal/config"
)

// Wall is a static segment obstacle. Slingshots are walls with a score
// bonus and a restitution above 1.
type Wall struct {
	Name        string
	A           Vec2
	B           Vec2
	Restitution float64
	Friction    float64
	Score       int
}

// Bumper is a circular obstacle that kicks the ball outward on contact.
type Bumper struct {
	Name        string
	Pos         Vec2
	Radius      float64
	Score       int
	Restitution float64
	Kick        float64
}

// Rollover is a non-colliding sensor lane at the top of the field. Lit
// state is owned by the simulation, not the table.
type Rollover struct {
	Pos    Vec2
	Radius float64
	Score  int
}

// Table holds the static playfield geometry. It is immutable after
// construction; consumers fetch it once and render from it.
type Table struct {
	Width  float64
	Height float64

	Walls     []Wall
	Bumpers   []Bumper
	Rollovers []Rollover

	LeftFlipperPivot  Vec2
	RightFlipperPivot Vec2
	LaunchPos         Vec2

	// safety envelope: a ball fully past any of these lines has escaped
	// the sealed playfield and gets re-clamped
	minX, maxX, minY float64
}

// NewTable builds the playfield from the configured dimensions. The layout
// is authored on a 500x650 reference grid and scaled to the actual size:
// a rectangular field with a top arch of rollover lanes, a bumper cluster,
// two slingshots above the flippers, outlane funnels on both sides and a
// launch notch at the bottom right.
func NewTable(cfg *config.Config) *Table {
	sx := cfg.TableWidth / 500
	sy := cfg.TableHeight / 650
	rs := math.Min(sx, sy)
	pt := func(x, y float64) Vec2 {
		return NewVec2(x*sx, y*sy)
	}

	rawWalls := []struct {
		name        string
		a, b        Vec2
		restitution float64
		score       int
	}{
		{"left", pt(80, 140), pt(80, 570), cfg.WallRestitution, 0},
		{"top", pt(80, 140), pt(320, 140), cfg.WallRestitution, 0},
		{"right", pt(320, 140), pt(320, 390), cfg.WallRestitution, 0},
		{"left funnel", pt(80, 570), pt(170, 630), cfg.WallRestitution, 0},
		{"lane guide", pt(320, 390), pt(360, 510), cfg.WallRestitution, 0},
		{"right funnel", pt(360, 510), pt(330, 630), cfg.WallRestitution, 0},
		{"left slingshot", pt(140, 530), pt(210, 460), cfg.SlingshotRestitution, cfg.SlingshotScore},
		{"right slingshot", pt(360, 530), pt(290, 460), cfg.SlingshotRestitution, cfg.SlingshotScore},
	}

	walls := make([]Wall, len(rawWalls))
	for i, rw := range rawWalls {
		walls[i] = Wall{
			Name:        rw.name,
			A:           rw.a,
			B:           rw.b,
			Restitution: rw.restitution,
			Friction:    cfg.TangentialFriction,
			Score:       rw.score,
		}
	}

	rawBumpers := []struct {
		name   string
		pos    Vec2
		radius float64
		score  int
	}{
		{"triad left", pt(175, 300), 38, 150},
		{"triad right", pt(275, 300), 38, 150},
		{"triad top", pt(225, 220), 38, 200},
		{"mid left", pt(160, 480), 28, 100},
		{"mid right", pt(290, 520), 28, 100},
		{"saver post", pt(230, 620), 24, 75},
	}

	bumpers := make([]Bumper, len(rawBumpers))
	for i, rb := range rawBumpers {
		bumpers[i] = Bumper{
			Name:        rb.name,
			Pos:         rb.pos,
			Radius:      rb.radius * rs,
			Score:       rb.score,
			Restitution: cfg.BumperRestitution,
			Kick:        cfg.BumperKick,
		}
	}

	rollovers := []Rollover{
		{Pos: pt(175, 160), Radius: cfg.RolloverRadius, Score: cfg.RolloverScore},
		{Pos: pt(225, 160), Radius: cfg.RolloverRadius, Score: cfg.RolloverScore},
		{Pos: pt(275, 160), Radius: cfg.RolloverRadius, Score: cfg.RolloverScore},
	}

	return &Table{
		Width:             cfg.TableWidth,
		Height:            cfg.TableHeight,
		Walls:             walls,
		Bumpers:           bumpers,
		Rollovers:         rollovers,
		LeftFlipperPivot:  pt(175, 530),
		RightFlipperPivot: pt(325, 530),
		LaunchPos:         pt(330, 468),
		minX:              80 * sx,
		maxX:              360 * sx,
		minY:              140 * sy,
	}
}
