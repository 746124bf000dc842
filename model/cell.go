package model

import "math/rand"

const (
	cellAlive = "*"
	cellDead  = " "
)

// CellState is the state of a single grid location. The zero value is Dead.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return cellAlive
	}
	return cellDead
}

// RandomState draws Alive or Dead with equal probability
func RandomState(rng *rand.Rand) CellState {
	if rng.Intn(2) == 0 {
		return Alive
	}
	return Dead
}

// Cell is one element of a board's grid
type Cell struct {
	State    CellState
	Location Location
}

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c.State == Alive
}

func (c Cell) String() string {
	return c.State.String()
}
