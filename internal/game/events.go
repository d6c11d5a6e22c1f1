package game

// EventType identifies what happened during a tick.
type EventType string

const (
	EventWallHit      EventType = "WALL_HIT"
	EventSlingshotHit EventType = "SLINGSHOT_HIT"
	EventBumperHit    EventType = "BUMPER_HIT"
	EventFlipperHit   EventType = "FLIPPER_HIT"
	EventRolloverLit  EventType = "ROLLOVER_LIT"
	EventLaneBonus    EventType = "LANE_BONUS"
	EventLaunch       EventType = "LAUNCH"
	EventBallSaved    EventType = "BALL_SAVED"
	EventBallLost     EventType = "BALL_LOST"
	EventGameOver     EventType = "GAME_OVER"
)

// Event records one occurrence for rule handling and frontend effects.
// Score is the number of points the event awarded (after any multiplier),
// Speed the impact speed where one applies.
type Event struct {
	Type  EventType
	Score int
	Speed float64
	Pos   Vec2
}
