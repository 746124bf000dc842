package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidDimensions is returned when a board is requested with a non-positive side
var ErrInvalidDimensions = errors.New("board dimensions must be positive")

// Location is a (row, column) coordinate. It has no bounds of its own,
// validity is decided by the board it is used against.
type Location struct {
	Row int
	Col int
}

// Add returns the componentwise sum of two locations
func (l Location) Add(other Location) Location {
	return Location{Row: l.Row + other.Row, Col: l.Col + other.Col}
}

func (l Location) String() string {
	return fmt.Sprintf("(r %d, c %d)", l.Row, l.Col)
}

// Direction names one of the eight neighbouring positions of a cell
type Direction int

const (
	TopLeft Direction = iota
	TopMiddle
	TopRight
	Left
	Right
	BottomLeft
	BottomMiddle
	BottomRight
)

// Directions lists every neighbour direction
var Directions = [...]Direction{
	TopLeft, TopMiddle, TopRight,
	Left, Right,
	BottomLeft, BottomMiddle, BottomRight,
}

// Offset returns the relative location of the neighbour in direction d
func (d Direction) Offset() Location {
	switch d {
	case TopLeft:
		return Location{Row: -1, Col: -1}
	case TopMiddle:
		return Location{Row: -1, Col: 0}
	case TopRight:
		return Location{Row: -1, Col: 1}
	case Left:
		return Location{Row: 0, Col: -1}
	case Right:
		return Location{Row: 0, Col: 1}
	case BottomLeft:
		return Location{Row: 1, Col: -1}
	case BottomMiddle:
		return Location{Row: 1, Col: 0}
	case BottomRight:
		return Location{Row: 1, Col: 1}
	}
	return Location{}
}

func (d Direction) String() string {
	switch d {
	case TopLeft:
		return "top-left"
	case TopMiddle:
		return "top-middle"
	case TopRight:
		return "top-right"
	case Left:
		return "left"
	case Right:
		return "right"
	case BottomLeft:
		return "bottom-left"
	case BottomMiddle:
		return "bottom-middle"
	case BottomRight:
		return "bottom-right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Dimensions is the size of a board in cells
type Dimensions struct {
	Width  int
	Height int
}

// Validate reports whether both sides are positive
func (d Dimensions) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "[Dimensions.Validate] got %s", d)
	}
	return nil
}

// Contains reports whether loc lies inside a board of these dimensions
func (d Dimensions) Contains(loc Location) bool {
	return loc.Row >= 0 && loc.Row < d.Height && loc.Col >= 0 && loc.Col < d.Width
}

func (d Dimensions) String() string {
	return fmt.Sprintf("(%d, %d)", d.Width, d.Height)
}
