package game

// FlipperView is the render-facing pose of one flipper.
type FlipperView struct {
	Side  Side
	Pivot Vec2
	Tip   Vec2
	Angle float64
	Held  bool
}

// Snapshot is a value copy of everything a frontend needs to draw one
// frame: entity poses, scores, phase, timer windows and the events the
// last Advance produced. Mutating a snapshot never touches the
// simulation.
type Snapshot struct {
	Tick  uint64
	Phase Phase

	BallPos    Vec2
	BallVel    Vec2
	BallRadius float64
	BallInPlay bool

	LeftFlipper  FlipperView
	RightFlipper FlipperView

	PlungerCharge   float64
	PlungerCharging bool

	Score     int
	HighScore int
	BallsLeft int

	BallSaveLeft   float64
	BumperMult     int
	BumperMultLeft float64
	RolloverLit    []bool

	Events []Event
}

// Snapshot captures the current simulation state.
func (s *Simulation) Snapshot() Snapshot {
	lit := make([]bool, len(s.rolloverLit))
	copy(lit, s.rolloverLit)
	events := make([]Event, len(s.events))
	copy(events, s.events)

	saveLeft := 0.0
	if s.ballSaveActive {
		saveLeft = s.ballSaveTimer
	}

	return Snapshot{
		Tick:  s.ticks,
		Phase: s.phase,

		BallPos:    s.ball.Pos,
		BallVel:    s.ball.Vel,
		BallRadius: s.ball.Radius,
		BallInPlay: s.ball.InPlay,

		LeftFlipper:  flipperView(s.left),
		RightFlipper: flipperView(s.right),

		PlungerCharge:   s.plunger.Charge,
		PlungerCharging: s.plunger.Charging,

		Score:     s.score,
		HighScore: s.highScore,
		BallsLeft: s.ballsLeft,

		BallSaveLeft:   saveLeft,
		BumperMult:     s.bumperMult,
		BumperMultLeft: s.bumperMultTimer,
		RolloverLit:    lit,

		Events: events,
	}
}

func flipperView(f *Flipper) FlipperView {
	pivot, tip := f.Segment()
	return FlipperView{
		Side:  f.Side,
		Pivot: pivot,
		Tip:   tip,
		Angle: f.Angle,
		Held:  f.Held,
	}
}
