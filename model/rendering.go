package model

import (
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const (
	aliveRune = '*'
	deadRune  = ' '

	// terminalMargin keeps the board clear of the status line and the last column
	terminalMargin = 2
)

// Text projects a board onto one string per row, '*' for alive and ' ' for dead
func Text(b *Board) []string {
	lines := make([]string, 0, len(b.cells))
	for _, row := range b.cells {
		var sb strings.Builder
		sb.Grow(len(row))
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// Rect is a square of the pixel canvas for one live cell of one snapshot
type Rect struct {
	Location  Location
	X, Y      int
	Size      int
	Age       int
	Intensity uint8
}

// FadeRects projects the history onto rectangles, oldest snapshot first so
// the newest generation is drawn on top. Intensity falls linearly with age.
func FadeRects(h *History, cellSize int) []Rect {
	var (
		snapshots = h.Snapshots()
		n         = len(snapshots)
		rects     []Rect
	)
	for i, b := range snapshots {
		age := n - 1 - i
		intensity := uint8(255 * (n - age) / n)
		for _, row := range b.cells {
			for _, cell := range row {
				if !cell.IsAlive() {
					continue
				}
				rects = append(rects, Rect{
					Location:  cell.Location,
					X:         cell.Location.Col * cellSize,
					Y:         cell.Location.Row * cellSize,
					Size:      cellSize,
					Age:       age,
					Intensity: intensity,
				})
			}
		}
	}
	return rects
}

// FadeColor maps a fade intensity to a green shade
func FadeColor(intensity uint8) color.RGBA {
	return color.RGBA{R: intensity / 4, G: intensity, B: intensity / 2, A: 0xff}
}

// CanvasSize returns the pixel size of a board drawn with cellSize pixel cells
func CanvasSize(dims Dimensions, cellSize int) (int, int) {
	return dims.Width * cellSize, dims.Height * cellSize
}

// TerminalDimensions sizes a board to fit the screen, leaving room for the status line
func TerminalDimensions(screen tcell.Screen) Dimensions {
	w, h := screen.Size()
	return Dimensions{
		Width:  max(1, w-terminalMargin),
		Height: max(1, h-terminalMargin),
	}
}

// TerminalRenderer draws boards on a tcell screen
type TerminalRenderer struct {
	screen      tcell.Screen
	cellStyle   tcell.Style
	statusStyle tcell.Style
}

func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen:      screen,
		cellStyle:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		statusStyle: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
}

// Display renders the board followed by a status line
func (r *TerminalRenderer) Display(b *Board, status string) {
	r.screen.Clear()
	for _, row := range b.cells {
		for _, cell := range row {
			ch := deadRune
			if cell.IsAlive() {
				ch = aliveRune
			}
			r.screen.SetContent(cell.Location.Col, cell.Location.Row, ch, nil, r.cellStyle)
		}
	}
	for i, ch := range []rune(status) {
		r.screen.SetContent(i, b.dims.Height, ch, nil, r.statusStyle)
	}
	r.screen.Show()
}
