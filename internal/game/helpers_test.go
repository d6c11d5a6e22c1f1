package game

import (
	"testing"

	"github.com/playmatatu/pinball/internal/config"
)

// testConfig mirrors the default tunables so tests stay hermetic against
// whatever environment or .env file is present.
func testConfig() *config.Config {
	return &config.Config{
		Gravity:      2000,
		TimeStep:     1.0 / 120.0,
		AirDrag:      0.0005,
		MaxBallSpeed: 2400,
		BallRadius:   12,

		TableWidth:  500,
		TableHeight: 650,
		DrainMargin: 40,

		WallRestitution:      0.85,
		TangentialFriction:   0.02,
		SlingshotRestitution: 1.2,
		SlingshotScore:       25,

		BumperRestitution: 1.05,
		BumperKick:        200,
		BumperMultiplier:  2,
		BumperMultSeconds: 15,

		RolloverRadius: 14,
		RolloverScore:  250,
		RolloverBonus:  1000,

		FlipperLength:        65,
		FlipperRestDeg:       15,
		FlipperMaxDeg:        70,
		FlipperSpeedDeg:      900,
		FlipperRestitution:   1.0,
		FlipperImpulseFactor: 0.9,
		FlipperScore:         1,

		PlungerBaseSpeed:  400,
		PlungerSpeedRange: 480,
		PlungerChargeRate: 1.875,
		LaunchAngleDeg:    110,

		StartBalls:      3,
		BallSaveSeconds: 8,

		HighScoreFile: "highscore.txt",
	}
}

func newTestSim(t *testing.T, cfg *config.Config) *Simulation {
	t.Helper()
	s, err := NewSimulation(cfg, 0)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return s
}

// tick feeds exactly one fixed step's worth of time, so one call runs one
// tick.
func tick(s *Simulation, actions ...Action) {
	s.Advance(s.cfg.TimeStep, actions)
}

func hasEvent(events []Event, typ EventType) bool {
	for _, ev := range events {
		if ev.Type == typ {
			return true
		}
	}
	return false
}

func findEvent(t *testing.T, events []Event, typ EventType) Event {
	t.Helper()
	for _, ev := range events {
		if ev.Type == typ {
			return ev
		}
	}
	t.Fatalf("no %s event in %v", typ, events)
	return Event{}
}

// launchBall charges the plunger for a quarter second and releases,
// leaving the sim in play.
func launchBall(t *testing.T, s *Simulation) {
	t.Helper()
	tick(s, ActionPlungerDown)
	for i := 0; i < 30; i++ {
		tick(s)
	}
	tick(s, ActionPlungerUp)
	if s.phase != PhaseInPlay {
		t.Fatalf("launch failed, phase = %s", s.phase)
	}
}
