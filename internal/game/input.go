package game

// Action is a discrete input action delivered to the simulation. The
// frontend translates device edges (key down/up) into actions; the
// simulation consumes the queued batch once per tick and never polls
// devices itself.
type Action string

const (
	ActionLeftFlipperDown  Action = "LEFT_FLIPPER_DOWN"
	ActionLeftFlipperUp    Action = "LEFT_FLIPPER_UP"
	ActionRightFlipperDown Action = "RIGHT_FLIPPER_DOWN"
	ActionRightFlipperUp   Action = "RIGHT_FLIPPER_UP"
	ActionPlungerDown      Action = "PLUNGER_DOWN"
	ActionPlungerUp        Action = "PLUNGER_UP"
	ActionPauseToggle      Action = "PAUSE_TOGGLE"
	ActionRestart          Action = "RESTART"
)
