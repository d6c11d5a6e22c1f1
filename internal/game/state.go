package game

// Phase is the position of the game state machine.
type Phase string

const (
	// PhaseLaunching means the ball is parked in the launch lane and the
	// plunger is armed.
	PhaseLaunching Phase = "LAUNCHING"
	PhaseInPlay    Phase = "IN_PLAY"
	PhasePaused    Phase = "PAUSED"
	PhaseGameOver  Phase = "GAME_OVER"
)

// apply folds one input action into the simulation state. Actions are
// edge events (key went down / key went up), not level samples.
func (s *Simulation) apply(a Action) {
	switch a {
	case ActionLeftFlipperDown:
		s.left.Held = true
	case ActionLeftFlipperUp:
		s.left.Held = false
	case ActionRightFlipperDown:
		s.right.Held = true
	case ActionRightFlipperUp:
		s.right.Held = false
	case ActionPlungerDown:
		s.plunger.Charging = true
	case ActionPlungerUp:
		s.plunger.Charging = false
		if s.phase == PhaseLaunching && s.plunger.Charge > 0 {
			// Charge is consumed by the launch on the next tick.
			s.launchPending = true
		} else {
			s.plunger.Charge = 0
		}
	case ActionPauseToggle:
		s.togglePause()
	case ActionRestart:
		s.restart()
	}
}

// togglePause freezes the simulation, remembering which phase to resume
// into. Pausing a finished game does nothing.
func (s *Simulation) togglePause() {
	switch s.phase {
	case PhasePaused:
		s.phase = s.pausedFrom
	case PhaseLaunching, PhaseInPlay:
		s.pausedFrom = s.phase
		s.phase = PhasePaused
	}
}

// restart begins a fresh game. Only legal once the current game is over;
// the high score carries across.
func (s *Simulation) restart() {
	if s.phase != PhaseGameOver {
		return
	}
	s.score = 0
	s.ballsLeft = s.cfg.StartBalls
	s.bumperMult = 1
	s.bumperMultTimer = 0
	for i := range s.rolloverLit {
		s.rolloverLit[i] = false
	}
	s.resetBall()
	s.phase = PhaseLaunching
}

// checkDrain handles the ball crossing the bottom of the table: a saved
// ball re-parks for free, otherwise a life is spent and the game either
// re-arms the plunger or ends.
func (s *Simulation) checkDrain() {
	if !s.ball.InPlay {
		return
	}
	if s.ball.Pos.Y-s.ball.Radius <= s.table.Height+s.cfg.DrainMargin {
		return
	}

	if s.ballSaveActive {
		s.emit(Event{Type: EventBallSaved, Pos: s.ball.Pos})
		s.resetBall()
		s.phase = PhaseLaunching
		return
	}

	s.ballsLeft--
	s.emit(Event{Type: EventBallLost, Pos: s.ball.Pos})
	s.resetBall()
	s.bumperMult = 1
	s.bumperMultTimer = 0

	if s.ballsLeft <= 0 {
		s.ballsLeft = 0
		s.endGame()
		return
	}
	s.phase = PhaseLaunching
}

func (s *Simulation) endGame() {
	s.phase = PhaseGameOver
	if s.score > s.highScore {
		s.highScore = s.score
	}
	s.emit(Event{Type: EventGameOver})
}
