// Package ui renders the table with ebiten and translates keyboard edges
// into simulation actions. It holds no game rules of its own.
package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/playmatatu/pinball/internal/config"
	"github.com/playmatatu/pinball/internal/game"
	"github.com/playmatatu/pinball/internal/highscore"
)

// App drives the simulation from ebiten's frame loop and draws the latest
// snapshot.
type App struct {
	sim   *game.Simulation
	store highscore.Store

	width   int
	height  int
	actions []game.Action
	snap    game.Snapshot
}

func New(cfg *config.Config, sim *game.Simulation, store highscore.Store) *App {
	return &App{
		sim:    sim,
		store:  store,
		width:  int(cfg.TableWidth),
		height: int(cfg.TableHeight),
		snap:   sim.Snapshot(),
	}
}

// Update collects this frame's input edges, advances the simulation by one
// frame's worth of wall time and persists the high score when a game ends.
func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	a.actions = a.actions[:0]
	a.collectActions()

	a.sim.Advance(1.0/float64(ebiten.TPS()), a.actions)
	a.snap = a.sim.Snapshot()

	for _, ev := range a.snap.Events {
		if ev.Type == game.EventGameOver {
			if err := a.store.Save(a.snap.HighScore); err != nil {
				log.Printf("[HISCORE] Failed to save high score: %v", err)
			}
		}
	}
	return nil
}

func (a *App) collectActions() {
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		a.actions = append(a.actions, game.ActionLeftFlipperDown)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyZ) || inpututil.IsKeyJustReleased(ebiten.KeyLeft) {
		a.actions = append(a.actions, game.ActionLeftFlipperUp)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) || inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		a.actions = append(a.actions, game.ActionRightFlipperDown)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySlash) || inpututil.IsKeyJustReleased(ebiten.KeyRight) {
		a.actions = append(a.actions, game.ActionRightFlipperUp)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.actions = append(a.actions, game.ActionPlungerDown)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		a.actions = append(a.actions, game.ActionPlungerUp)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.actions = append(a.actions, game.ActionPauseToggle)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.actions = append(a.actions, game.ActionRestart)
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	drawFrame(screen, a.sim.Table(), a.snap)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
