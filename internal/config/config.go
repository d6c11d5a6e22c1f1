package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Physics
	Gravity      float64
	TimeStep     float64
	AirDrag      float64
	MaxBallSpeed float64
	BallRadius   float64

	// Table
	TableWidth  float64
	TableHeight float64
	DrainMargin float64

	// Walls & slingshots
	WallRestitution      float64
	TangentialFriction   float64
	SlingshotRestitution float64
	SlingshotScore       int

	// Bumpers
	BumperRestitution float64
	BumperKick        float64
	BumperMultiplier  int
	BumperMultSeconds float64

	// Rollover lanes
	RolloverRadius float64
	RolloverScore  int
	RolloverBonus  int

	// Flippers
	FlipperLength        float64
	FlipperRestDeg       float64
	FlipperMaxDeg        float64
	FlipperSpeedDeg      float64
	FlipperRestitution   float64
	FlipperImpulseFactor float64
	FlipperScore         int

	// Plunger
	PlungerBaseSpeed  float64
	PlungerSpeedRange float64
	PlungerChargeRate float64
	LaunchAngleDeg    float64

	// Game Rules
	StartBalls      int
	BallSaveSeconds float64

	// High Score Persistence
	HighScoreFile string
	RedisURL      string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Physics
		Gravity:      getEnvFloat("GRAVITY", 2000),
		TimeStep:     getEnvFloat("TIME_STEP", 1.0/120.0),
		AirDrag:      getEnvFloat("AIR_DRAG", 0.0005),
		MaxBallSpeed: getEnvFloat("MAX_BALL_SPEED", 2400),
		BallRadius:   getEnvFloat("BALL_RADIUS", 12),

		// Table
		TableWidth:  getEnvFloat("TABLE_WIDTH", 500),
		TableHeight: getEnvFloat("TABLE_HEIGHT", 650),
		DrainMargin: getEnvFloat("DRAIN_MARGIN", 40),

		// Walls & slingshots
		WallRestitution:      getEnvFloat("WALL_RESTITUTION", 0.85),
		TangentialFriction:   getEnvFloat("TANGENTIAL_FRICTION", 0.02),
		SlingshotRestitution: getEnvFloat("SLINGSHOT_RESTITUTION", 1.2),
		SlingshotScore:       getEnvInt("SLINGSHOT_SCORE", 25),

		// Bumpers
		BumperRestitution: getEnvFloat("BUMPER_RESTITUTION", 1.05),
		BumperKick:        getEnvFloat("BUMPER_KICK", 200),
		BumperMultiplier:  getEnvInt("BUMPER_MULTIPLIER", 2),
		BumperMultSeconds: getEnvFloat("BUMPER_MULT_SECONDS", 15),

		// Rollover lanes
		RolloverRadius: getEnvFloat("ROLLOVER_RADIUS", 14),
		RolloverScore:  getEnvInt("ROLLOVER_SCORE", 250),
		RolloverBonus:  getEnvInt("ROLLOVER_BONUS", 1000),

		// Flippers
		FlipperLength:        getEnvFloat("FLIPPER_LENGTH", 65),
		FlipperRestDeg:       getEnvFloat("FLIPPER_REST_DEG", 15),
		FlipperMaxDeg:        getEnvFloat("FLIPPER_MAX_DEG", 70),
		FlipperSpeedDeg:      getEnvFloat("FLIPPER_SPEED_DEG", 900),
		FlipperRestitution:   getEnvFloat("FLIPPER_RESTITUTION", 1.0),
		FlipperImpulseFactor: getEnvFloat("FLIPPER_IMPULSE_FACTOR", 0.9),
		FlipperScore:         getEnvInt("FLIPPER_SCORE", 1),

		// Plunger
		PlungerBaseSpeed:  getEnvFloat("PLUNGER_BASE_SPEED", 400),
		PlungerSpeedRange: getEnvFloat("PLUNGER_SPEED_RANGE", 480),
		PlungerChargeRate: getEnvFloat("PLUNGER_CHARGE_RATE", 1.875),
		LaunchAngleDeg:    getEnvFloat("LAUNCH_ANGLE_DEG", 110),

		// Game Rules
		StartBalls:      getEnvInt("START_BALLS", 3),
		BallSaveSeconds: getEnvFloat("BALL_SAVE_SECONDS", 8),

		// High Score Persistence
		HighScoreFile: getEnv("HIGH_SCORE_FILE", "highscore.txt"),
		RedisURL:      getEnv("REDIS_URL", ""),
	}
}

// Validate reports the first tunable whose value the simulation cannot
// run with.
func (c *Config) Validate() error {
	if c.TimeStep <= 0 {
		return fmt.Errorf("time step must be positive, got %g", c.TimeStep)
	}
	if c.Gravity < 0 {
		return fmt.Errorf("gravity must not be negative, got %g", c.Gravity)
	}
	if c.AirDrag < 0 || c.AirDrag >= 1 {
		return fmt.Errorf("air drag must be in [0, 1), got %g", c.AirDrag)
	}
	if c.MaxBallSpeed <= 0 {
		return fmt.Errorf("max ball speed must be positive, got %g", c.MaxBallSpeed)
	}
	if c.BallRadius <= 0 {
		return fmt.Errorf("ball radius must be positive, got %g", c.BallRadius)
	}
	if c.TableWidth <= 0 || c.TableHeight <= 0 {
		return fmt.Errorf("table dimensions must be positive, got %gx%g", c.TableWidth, c.TableHeight)
	}
	if c.DrainMargin < 0 {
		return fmt.Errorf("drain margin must not be negative, got %g", c.DrainMargin)
	}
	if c.WallRestitution < 0 || c.SlingshotRestitution < 0 || c.BumperRestitution < 0 || c.FlipperRestitution < 0 {
		return fmt.Errorf("restitution values must not be negative")
	}
	if c.TangentialFriction < 0 || c.TangentialFriction > 1 {
		return fmt.Errorf("tangential friction must be in [0, 1], got %g", c.TangentialFriction)
	}
	if c.SlingshotScore < 0 || c.FlipperScore < 0 || c.RolloverScore < 0 || c.RolloverBonus < 0 {
		return fmt.Errorf("score values must not be negative")
	}
	if c.BumperKick < 0 {
		return fmt.Errorf("bumper kick must not be negative, got %g", c.BumperKick)
	}
	if c.BumperMultiplier < 1 {
		return fmt.Errorf("bumper multiplier must be at least 1, got %d", c.BumperMultiplier)
	}
	if c.BumperMultSeconds < 0 {
		return fmt.Errorf("bumper multiplier duration must not be negative, got %g", c.BumperMultSeconds)
	}
	if c.RolloverRadius <= 0 {
		return fmt.Errorf("rollover radius must be positive, got %g", c.RolloverRadius)
	}
	if c.FlipperLength <= 0 {
		return fmt.Errorf("flipper length must be positive, got %g", c.FlipperLength)
	}
	if c.FlipperSpeedDeg <= 0 {
		return fmt.Errorf("flipper speed must be positive, got %g", c.FlipperSpeedDeg)
	}
	if c.FlipperMaxDeg <= c.FlipperRestDeg {
		return fmt.Errorf("flipper max angle (%g) must exceed rest angle (%g)", c.FlipperMaxDeg, c.FlipperRestDeg)
	}
	if c.FlipperImpulseFactor < 0 {
		return fmt.Errorf("flipper impulse factor must not be negative, got %g", c.FlipperImpulseFactor)
	}
	if c.PlungerBaseSpeed < 0 || c.PlungerSpeedRange < 0 {
		return fmt.Errorf("plunger speeds must not be negative")
	}
	if c.PlungerChargeRate <= 0 {
		return fmt.Errorf("plunger charge rate must be positive, got %g", c.PlungerChargeRate)
	}
	if c.StartBalls < 1 {
		return fmt.Errorf("start balls must be at least 1, got %d", c.StartBalls)
	}
	if c.BallSaveSeconds < 0 {
		return fmt.Errorf("ball save window must not be negative, got %g", c.BallSaveSeconds)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
