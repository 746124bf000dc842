package model

import "github.com/pkg/errors"

// ErrPatternOutOfBounds is returned when a seed pattern does not fit on the board
var ErrPatternOutOfBounds = errors.New("pattern extends past the board edge")

// Pattern is a small fixed arrangement of live cells, relative to its top-left anchor
type Pattern struct {
	Name   string
	Width  int
	Height int
	Cells  []Location
}

var (
	// Oscillator is a vertical blinker in the middle column of a 3x3 footprint
	Oscillator = Pattern{
		Name:   "oscillator",
		Width:  3,
		Height: 3,
		Cells:  []Location{{0, 1}, {1, 1}, {2, 1}},
	}

	// Glider travels towards the bottom-right corner
	//  .X.
	//  ..X
	//  XXX
	Glider = Pattern{
		Name:   "glider",
		Width:  3,
		Height: 3,
		Cells:  []Location{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	}
)

// Insert stamps p onto the board with its top-left corner at anchor. The
// footprint must end strictly before the far edge, so a pattern flush with the
// last row or column is rejected and nothing is written.
func (b *Board) Insert(p Pattern, anchor Location) (Location, error) {
	if anchor.Row < 0 || anchor.Col < 0 ||
		anchor.Row+p.Height >= b.dims.Height || anchor.Col+p.Width >= b.dims.Width {
		return Location{}, errors.Wrapf(ErrPatternOutOfBounds,
			"[Board.Insert] %s at %s on board %s", p.Name, anchor, b.dims)
	}

	if b.seeded == nil {
		b.seeded = make(map[Location]struct{}, len(p.Cells))
	}
	for _, offset := range p.Cells {
		loc := anchor.Add(offset)
		b.Set(loc, Alive)
		b.seeded[loc] = struct{}{}
	}
	return anchor, nil
}

// InsertOscillator stamps a blinker at anchor
func (b *Board) InsertOscillator(anchor Location) (Location, error) {
	return b.Insert(Oscillator, anchor)
}

// InsertGlider stamps a glider at anchor
func (b *Board) InsertGlider(anchor Location) (Location, error) {
	return b.Insert(Glider, anchor)
}
