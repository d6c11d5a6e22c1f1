package game

import (
	"fmt"
	"math"

	"github.com/playmatatu/pinball/internal/config"
)

// maxFrameTime caps the wall-clock slice fed into the accumulator so a
// stalled frame cannot trigger a runaway burst of catch-up ticks.
const maxFrameTime = 0.25

// maxSweepSteps bounds the flipper sweep subdivision within one tick.
const maxSweepSteps = 64

// Simulation owns the complete game state and advances it in fixed time
// steps, independent of the frame rate driving it. All mutation happens
// inside ticks; consumers read value-copy snapshots.
type Simulation struct {
	cfg   *config.Config
	table *Table

	ball    Ball
	left    *Flipper
	right   *Flipper
	plunger Plunger

	phase      Phase
	pausedFrom Phase
	score      int
	highScore  int
	ballsLeft  int

	rolloverLit     []bool
	bumperMult      int
	bumperMultTimer float64
	ballSaveActive  bool
	ballSaveTimer   float64

	launchPending bool
	launchDir     Vec2
	dragFactor    float64 // per-tick velocity retention from air drag

	acc    float64
	ticks  uint64
	events []Event
}

// NewSimulation validates the configuration and builds a ready-to-play
// game: ball parked, plunger idle, score zero. The given high score seeds
// the record to beat.
func NewSimulation(cfg *config.Config, highScore int) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	table := NewTable(cfg)
	launchRad := radians(cfg.LaunchAngleDeg)

	s := &Simulation{
		cfg:         cfg,
		table:       table,
		left:        newFlipper(SideLeft, table.LeftFlipperPivot, cfg.FlipperLength, cfg.FlipperRestDeg, cfg.FlipperMaxDeg, cfg.FlipperSpeedDeg),
		right:       newFlipper(SideRight, table.RightFlipperPivot, cfg.FlipperLength, cfg.FlipperRestDeg, cfg.FlipperMaxDeg, cfg.FlipperSpeedDeg),
		phase:       PhaseLaunching,
		highScore:   highScore,
		ballsLeft:   cfg.StartBalls,
		rolloverLit: make([]bool, len(table.Rollovers)),
		bumperMult:  1,
		launchDir:   NewVec2(math.Cos(launchRad), -math.Sin(launchRad)),
		dragFactor:  math.Pow(1-cfg.AirDrag, cfg.TimeStep*60),
	}
	s.resetBall()
	return s, nil
}

// Table returns the static playfield geometry for rendering.
func (s *Simulation) Table() *Table {
	return s.table
}

// Advance applies one frame's input actions, then runs as many whole
// fixed ticks as the elapsed wall time covers, carrying the remainder in
// an accumulator. It returns the number of ticks executed. While paused
// or after game over no ticks run and the accumulator is discarded.
func (s *Simulation) Advance(elapsed float64, actions []Action) int {
	s.events = s.events[:0]
	for _, a := range actions {
		s.apply(a)
	}

	if s.phase == PhasePaused || s.phase == PhaseGameOver {
		s.acc = 0
		return 0
	}

	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}
	s.acc += elapsed

	n := 0
	for s.acc >= s.cfg.TimeStep {
		if s.phase == PhaseGameOver {
			s.acc = 0
			break
		}
		s.step()
		s.acc -= s.cfg.TimeStep
		n++
	}
	return n
}

// step runs one fixed tick: flipper and plunger update, pending launch,
// ball integration, the collision passes, sensors, timers, drain.
func (s *Simulation) step() {
	dt := s.cfg.TimeStep
	s.ticks++

	prevLeft := s.left.Angle
	prevRight := s.right.Angle
	s.left.advance(dt)
	s.right.advance(dt)
	assert(s.left.withinBounds(), "left flipper angle out of bounds")
	assert(s.right.withinBounds(), "right flipper angle out of bounds")
	s.left.clampAngle()
	s.right.clampAngle()

	if s.phase == PhaseLaunching {
		s.plunger.charge(s.cfg.PlungerChargeRate, dt)
	}
	if s.launchPending {
		s.launch()
	}

	s.ball.integrate(dt, s.cfg.Gravity, s.dragFactor, s.cfg.MaxBallSpeed)

	if s.ball.InPlay {
		s.resolveWalls()
		s.resolveBumpers()
		s.resolveFlipper(s.left, prevLeft)
		s.resolveFlipper(s.right, prevRight)
		s.clampToField()
		s.checkRollovers()
	}

	s.tickTimers(dt)
	s.checkDrain()
}

// launch fires the parked ball up the table with a speed proportional to
// the stored plunger charge, and arms the ball-save window.
func (s *Simulation) launch() {
	s.launchPending = false
	speed := s.cfg.PlungerBaseSpeed + s.plunger.Charge*s.cfg.PlungerSpeedRange
	s.plunger.reset()

	s.ball.Vel = s.launchDir.Times(speed)
	s.ball.InPlay = true
	s.phase = PhaseInPlay
	s.ballSaveActive = true
	s.ballSaveTimer = s.cfg.BallSaveSeconds
	s.emit(Event{Type: EventLaunch, Speed: speed, Pos: s.ball.Pos})
}

// resetBall parks the ball back in the launch lane. The plunger charge is
// cleared but a held plunger keeps charging on the next launching tick.
func (s *Simulation) resetBall() {
	s.ball = Ball{Pos: s.table.LaunchPos, Radius: s.cfg.BallRadius}
	s.plunger.Charge = 0
	s.launchPending = false
	s.ballSaveActive = false
	s.ballSaveTimer = 0
}

// emit records an event and folds its points into the score.
func (s *Simulation) emit(ev Event) {
	s.score += ev.Score
	s.events = append(s.events, ev)
}

// resolveWalls pushes the ball out of every overlapping wall in a fixed
// order, reflecting the normal velocity component by the wall restitution
// and bleeding the tangential component by the wall friction.
func (s *Simulation) resolveWalls() {
	for i := range s.table.Walls {
		w := &s.table.Walls[i]
		c, hit := circleSegmentContact(s.ball.Pos, s.ball.Radius, w.A, w.B)
		if !hit {
			continue
		}
		s.ball.Pos = s.ball.Pos.Plus(c.push)

		vn := s.ball.Vel.Dot(c.normal)
		tangent := c.normal.LeftNormal()
		vt := s.ball.Vel.Dot(tangent) * (1 - w.Friction)
		impact := math.Abs(vn)
		if vn < 0 {
			vn = -vn * w.Restitution
		}
		s.ball.Vel = c.normal.Times(vn).Plus(tangent.Times(vt))

		ev := Event{Type: EventWallHit, Score: w.Score, Speed: impact, Pos: c.point}
		if w.Score > 0 {
			ev.Type = EventSlingshotHit
		}
		s.emit(ev)
	}
}

// resolveBumpers reflects the ball off overlapping bumpers and adds the
// outward kick. Bumper points honor the active multiplier.
func (s *Simulation) resolveBumpers() {
	for i := range s.table.Bumpers {
		b := &s.table.Bumpers[i]
		c, hit := circleCircleContact(s.ball.Pos, s.ball.Radius, b.Pos, b.Radius)
		if !hit {
			continue
		}
		s.ball.Pos = s.ball.Pos.Plus(c.push)

		impact := math.Abs(s.ball.Vel.Dot(c.normal))
		s.ball.Vel = reflect(s.ball.Vel, c.normal, b.Restitution)
		s.ball.Vel = s.ball.Vel.Plus(c.normal.Times(b.Kick))
		s.emit(Event{Type: EventBumperHit, Score: b.Score * s.bumperMult, Speed: impact, Pos: c.point})
	}
}

// resolveFlipper tests the ball against the paddle swept through this
// tick's angular travel, subdivided so the tip moves less than one ball
// radius per sub-step. On contact the ball is pushed out, reflected, and
// boosted by the paddle surface speed when the paddle moves into it. At
// most one hit event is scored per flipper per tick.
func (s *Simulation) resolveFlipper(f *Flipper, prevAngle float64) {
	delta := f.Angle - prevAngle
	steps := 1
	if travel := math.Abs(delta) * f.Length; travel > s.ball.Radius {
		steps = int(math.Ceil(travel / s.ball.Radius))
		if steps > maxSweepSteps {
			steps = maxSweepSteps
		}
	}

	scored := false
	for i := 1; i <= steps; i++ {
		angle := prevAngle + delta*float64(i)/float64(steps)
		a, b := f.segmentAt(angle)
		c, hit := circleSegmentContact(s.ball.Pos, s.ball.Radius, a, b)
		if !hit {
			continue
		}
		s.ball.Pos = s.ball.Pos.Plus(c.push)

		impact := math.Abs(s.ball.Vel.Dot(c.normal))
		s.ball.Vel = reflect(s.ball.Vel, c.normal, s.cfg.FlipperRestitution)
		if boost := f.surfaceVelocityAt(angle, c.point).Dot(c.normal); boost > 0 {
			s.ball.Vel = s.ball.Vel.Plus(c.normal.Times(boost * s.cfg.FlipperImpulseFactor))
		}
		if !scored {
			scored = true
			s.emit(Event{Type: EventFlipperHit, Score: s.cfg.FlipperScore, Speed: impact, Pos: c.point})
		}
	}
}

// clampToField is the escape hatch for a ball whose center tunneled past
// the sealed boundary in one tick: it is snapped back inside and its
// velocity flipped inward, damped by the wall restitution. The edges of
// the funnel pocket legitimately dip past the envelope box, so only a
// center crossing counts as an escape.
func (s *Simulation) clampToField() {
	r := s.ball.Radius
	e := s.cfg.WallRestitution
	assert(s.ball.Pos.X >= s.table.minX, "ball escaped past left boundary")
	assert(s.ball.Pos.X <= s.table.maxX, "ball escaped past right boundary")
	assert(s.ball.Pos.Y >= s.table.minY, "ball escaped past top boundary")

	if s.ball.Pos.X < s.table.minX {
		s.ball.Pos.X = s.table.minX + r
		s.ball.Vel.X = math.Abs(s.ball.Vel.X) * e
	}
	if s.ball.Pos.X > s.table.maxX {
		s.ball.Pos.X = s.table.maxX - r
		s.ball.Vel.X = -math.Abs(s.ball.Vel.X) * e
	}
	if s.ball.Pos.Y < s.table.minY {
		s.ball.Pos.Y = s.table.minY + r
		s.ball.Vel.Y = math.Abs(s.ball.Vel.Y) * e
	}
}

// checkRollovers lights any lane the ball passes over. Lighting the full
// bank awards the bonus, rearms the lanes and starts the bumper
// multiplier window.
func (s *Simulation) checkRollovers() {
	lit := 0
	for i := range s.table.Rollovers {
		ro := &s.table.Rollovers[i]
		if s.rolloverLit[i] {
			lit++
			continue
		}
		if s.ball.Pos.Minus(ro.Pos).Magnitude() < ro.Radius+s.ball.Radius*0.6 {
			s.rolloverLit[i] = true
			lit++
			s.emit(Event{Type: EventRolloverLit, Score: ro.Score, Pos: ro.Pos})
		}
	}

	if lit > 0 && lit == len(s.rolloverLit) {
		for i := range s.rolloverLit {
			s.rolloverLit[i] = false
		}
		s.bumperMult = s.cfg.BumperMultiplier
		s.bumperMultTimer = s.cfg.BumperMultSeconds
		s.emit(Event{Type: EventLaneBonus, Score: s.cfg.RolloverBonus})
	}
}

// tickTimers counts down the bumper multiplier and ball-save windows.
func (s *Simulation) tickTimers(dt float64) {
	if s.bumperMultTimer > 0 {
		s.bumperMultTimer -= dt
		if s.bumperMultTimer <= 0 {
			s.bumperMultTimer = 0
			s.bumperMult = 1
		}
	}
	if s.ballSaveActive {
		s.ballSaveTimer -= dt
		if s.ballSaveTimer <= 0 {
			s.ballSaveTimer = 0
			s.ballSaveActive = false
		}
	}
}
