package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/playmatatu/pinball/internal/game"
)

var (
	colorBackground = color.RGBA{16, 18, 30, 255}
	colorWall       = color.RGBA{120, 130, 160, 255}
	colorSlingshot  = color.RGBA{230, 140, 60, 255}
	colorBumper     = color.RGBA{200, 60, 80, 255}
	colorBumperCore = color.RGBA{255, 170, 180, 255}
	colorLaneLit    = color.RGBA{255, 220, 90, 255}
	colorLaneDim    = color.RGBA{80, 75, 50, 255}
	colorFlipper    = color.RGBA{90, 190, 255, 255}
	colorBall       = color.RGBA{235, 235, 235, 255}
	colorMeter      = color.RGBA{60, 200, 120, 255}
	colorMeterBack  = color.RGBA{40, 44, 60, 255}
)

func drawFrame(screen *ebiten.Image, table *game.Table, snap game.Snapshot) {
	screen.Fill(colorBackground)

	for _, w := range table.Walls {
		clr := colorWall
		if w.Score > 0 {
			clr = colorSlingshot
		}
		ebitenutil.DrawLine(screen, w.A.X, w.A.Y, w.B.X, w.B.Y, clr)
	}

	for _, b := range table.Bumpers {
		ebitenutil.DrawCircle(screen, b.Pos.X, b.Pos.Y, b.Radius, colorBumper)
		ebitenutil.DrawCircle(screen, b.Pos.X, b.Pos.Y, b.Radius*0.45, colorBumperCore)
	}

	for i, ro := range table.Rollovers {
		clr := colorLaneDim
		if i < len(snap.RolloverLit) && snap.RolloverLit[i] {
			clr = colorLaneLit
		}
		ebitenutil.DrawCircle(screen, ro.Pos.X, ro.Pos.Y, ro.Radius, clr)
	}

	drawFlipper(screen, snap.LeftFlipper)
	drawFlipper(screen, snap.RightFlipper)

	ebitenutil.DrawCircle(screen, snap.BallPos.X, snap.BallPos.Y, snap.BallRadius, colorBall)

	drawPlungerMeter(screen, table, snap)
	drawHUD(screen, snap)
}

func drawFlipper(screen *ebiten.Image, f game.FlipperView) {
	ebitenutil.DrawCircle(screen, f.Pivot.X, f.Pivot.Y, 7, colorFlipper)
	ebitenutil.DrawCircle(screen, f.Tip.X, f.Tip.Y, 5, colorFlipper)
	ebitenutil.DrawLine(screen, f.Pivot.X, f.Pivot.Y, f.Tip.X, f.Tip.Y, colorFlipper)
}

// drawPlungerMeter shows the stored charge as a bar beside the launch
// lane while the plunger is armed.
func drawPlungerMeter(screen *ebiten.Image, table *game.Table, snap game.Snapshot) {
	if snap.Phase != game.PhaseLaunching && snap.Phase != game.PhasePaused {
		return
	}
	const w, h = 10.0, 120.0
	x := table.Width - 25
	y := table.Height - 180
	ebitenutil.DrawRect(screen, x, y, w, h, colorMeterBack)
	fill := h * snap.PlungerCharge
	ebitenutil.DrawRect(screen, x, y+h-fill, w, fill, colorMeter)
}

func drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", snap.Score), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HIGH  %d", snap.HighScore), 8, 24)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BALLS %d", snap.BallsLeft), 8, 40)

	y := 64
	if snap.BumperMult > 1 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BUMPERS x%d %.1fs", snap.BumperMult, snap.BumperMultLeft), 8, y)
		y += 16
	}
	if snap.BallSaveLeft > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BALL SAVE %.1fs", snap.BallSaveLeft), 8, y)
	}

	switch snap.Phase {
	case game.PhaseLaunching:
		ebitenutil.DebugPrintAt(screen, "HOLD SPACE TO CHARGE, RELEASE TO LAUNCH", 8, 120)
	case game.PhasePaused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - P TO RESUME", 8, 120)
	case game.PhaseGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER - R TO RESTART", 8, 120)
	}
}
