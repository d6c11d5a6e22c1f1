package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/playmatatu/pinball/internal/config"
	"github.com/playmatatu/pinball/internal/game"
	"github.com/playmatatu/pinball/internal/highscore"
	"github.com/playmatatu/pinball/internal/ui"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize high score persistence: Redis when configured, a local
	// file otherwise
	var store highscore.Store
	if cfg.RedisURL != "" {
		rs, err := highscore.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rs.Close()
		store = rs
		log.Printf("[HISCORE] Using Redis store at %s", cfg.RedisURL)
	} else {
		store = highscore.NewFileStore(cfg.HighScoreFile)
	}

	high, err := store.Load()
	if err != nil {
		log.Printf("[HISCORE] Failed to load high score, starting from 0: %v", err)
		high = 0
	}

	sim, err := game.NewSimulation(cfg, high)
	if err != nil {
		log.Fatalf("Failed to build simulation: %v", err)
	}

	app := ui.New(cfg, sim, store)

	ebiten.SetWindowSize(int(cfg.TableWidth), int(cfg.TableHeight))
	ebiten.SetWindowTitle("Pinball")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}
