// Package canvas draws a simulation in a window, overlaying the recent
// generations with decreasing brightness.
package canvas

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/lifeboard/model"
)

const windowTitle = "Game of Life"

var (
	background = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	hudColor   = color.White
)

// Game adapts a simulation to ebiten's update/draw loop
type Game struct {
	sim      *model.Simulation
	cellSize int
	hud      bool
}

func NewGame(sim *model.Simulation, cellSize int) *Game {
	return &Game{sim: sim, cellSize: cellSize, hud: true}
}

// Update steps the simulation once per frame interval
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}
	if g.sim.Done() {
		return ebiten.Termination
	}
	if g.sim.Due(time.Now()) {
		g.sim.Step()
	}
	return nil
}

// Draw paints the history trail followed by the status line
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.sim.View(func(_ *model.Board, history *model.History) {
		for _, r := range model.FadeRects(history, g.cellSize) {
			ebitenutil.DrawRect(screen, float64(r.X), float64(r.Y), float64(r.Size), float64(r.Size), model.FadeColor(r.Intensity))
		}
	})
	if g.hud {
		text.Draw(screen, g.sim.Status(), basicfont.Face7x13, 6, 16, hudColor)
	}
}

// Layout fixes the logical screen to the board size in pixels
func (g *Game) Layout(_, _ int) (int, int) {
	return model.CanvasSize(g.sim.Dimensions(), g.cellSize)
}

// Run opens the window and blocks until it is closed
func Run(sim *model.Simulation, cellSize int) error {
	w, h := model.CanvasSize(sim.Dimensions(), cellSize)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(windowTitle)

	return ebiten.RunGame(NewGame(sim, cellSize))
}
