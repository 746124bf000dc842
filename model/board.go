package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/lifeboard/rules"
)

// Board is a fixed-size grid of cells together with its generation counter.
// Process only reads its receiver. A board handed to a BoardPool is reset
// and rewritten by a later Process, so only its exclusive owner may recycle it.
type Board struct {
	dims       Dimensions
	cells      [][]Cell
	generation int
	seeded     map[Location]struct{} // cells stamped by Insert, kept by Randomize
}

// NewEmptyBoard creates a board of dead cells, each knowing its own location
func NewEmptyBoard(dims Dimensions) (*Board, error) {
	if err := dims.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewEmptyBoard]")
	}
	return newBoard(dims), nil
}

// NewBoard creates a board whose every cell is alive with probability 0.5
func NewBoard(dims Dimensions, rng *rand.Rand) (*Board, error) {
	b, err := NewEmptyBoard(dims)
	if err != nil {
		return nil, err
	}
	b.Randomize(rng)
	return b, nil
}

func newBoard(dims Dimensions) *Board {
	b := &Board{}
	b.reset(dims)
	return b
}

// reset resizes the board to dims, killing every cell and reassigning locations
func (b *Board) reset(dims Dimensions) {
	b.dims = dims
	b.generation = 0
	b.seeded = nil

	if len(b.cells) != dims.Height {
		b.cells = make([][]Cell, dims.Height)
	}
	for r := range b.cells {
		if len(b.cells[r]) != dims.Width {
			b.cells[r] = make([]Cell, dims.Width)
		}
		for c := range b.cells[r] {
			b.cells[r][c] = Cell{State: Dead, Location: Location{Row: r, Col: c}}
		}
	}
}

// Randomize is the assignment pass: every cell gets its location and an
// independently sampled state, except cells stamped by a seed pattern, which
// stay alive. Calling it again redraws every unseeded cell.
func (b *Board) Randomize(rng *rand.Rand) {
	for r, row := range b.cells {
		for c := range row {
			cell := &row[c]
			cell.Location = Location{Row: r, Col: c}
			if _, ok := b.seeded[cell.Location]; ok {
				cell.State = Alive
				continue
			}
			cell.State = RandomState(rng)
		}
	}
}

// Dimensions returns the size of the board
func (b *Board) Dimensions() Dimensions {
	return b.dims
}

// Generation returns how many transitions produced this board
func (b *Board) Generation() int {
	return b.generation
}

// Cells exposes the grid row by row. Callers must not modify it.
func (b *Board) Cells() [][]Cell {
	return b.cells
}

// Cell returns the cell at loc, or false when loc is outside the board
func (b *Board) Cell(loc Location) (Cell, bool) {
	if !b.dims.Contains(loc) {
		return Cell{}, false
	}
	return b.cells[loc.Row][loc.Col], true
}

// State returns the state at loc; locations outside the board are Dead
func (b *Board) State(loc Location) CellState {
	cell, ok := b.Cell(loc)
	if !ok {
		return Dead
	}
	return cell.State
}

// Set changes the state at loc. Locations outside the board are ignored.
func (b *Board) Set(loc Location, state CellState) {
	if b.dims.Contains(loc) {
		b.cells[loc.Row][loc.Col].State = state
	}
}

// RandomLocation picks a uniformly distributed location inside the board
func (b *Board) RandomLocation(rng *rand.Rand) Location {
	return Location{Row: rng.Intn(b.dims.Height), Col: rng.Intn(b.dims.Width)}
}

// neighbour returns the cell next to from in direction dir, if it is on the board
func (b *Board) neighbour(from Cell, dir Direction) (Cell, bool) {
	return b.Cell(from.Location.Add(dir.Offset()))
}

// CountNeighbours returns how many of the cell's in-bounds neighbours are alive
func (b *Board) CountNeighbours(cell Cell) int {
	count := 0
	for _, dir := range Directions {
		if n, ok := b.neighbour(cell, dir); ok && n.IsAlive() {
			count++
		}
	}
	return count
}

// Process computes the next generation into a fresh buffer. Rows are split
// across workers, each reading only from b, so no cell ever sees a partially
// updated grid. The pool may be nil.
func (b *Board) Process(pool *BoardPool) *Board {
	var next *Board
	if pool != nil {
		next = pool.Get(b.dims)
	} else {
		next = newBoard(b.dims)
	}
	next.generation = b.generation + 1

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (b.dims.Height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.dims.Height)
		)
		if startRow >= b.dims.Height {
			break
		}

		eg.Go(func() error {
			b.processRows(next, startRow, endRow)
			return nil
		})
	}

	_ = eg.Wait() // workers only read b and write their own rows of next

	return next
}

func (b *Board) processRows(next *Board, startRow, endRow int) {
	for r := startRow; r < endRow; r++ {
		for c, cell := range b.cells[r] {
			state := Dead
			if rules.ApplyConwayRules(b.CountNeighbours(cell), cell.IsAlive()) {
				state = Alive
			}
			next.cells[r][c] = Cell{State: state, Location: cell.Location}
		}
	}
}

// Population returns the number of living cells
func (b *Board) Population() (count int) {
	for _, row := range b.cells {
		for _, cell := range row {
			if cell.IsAlive() {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the cell states
func (b *Board) Hash() string {
	h := md5.New()
	for _, row := range b.cells {
		for _, cell := range row {
			h.Write([]byte{byte(cell.State)})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether both boards have the same size and cell states
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.dims != other.dims {
		return false
	}
	for r, row := range b.cells {
		for c, cell := range row {
			if cell.State != other.cells[r][c].State {
				return false
			}
		}
	}
	return true
}

// Clone returns an independently owned copy of the board
func (b *Board) Clone() *Board {
	clone := &Board{
		dims:       b.dims,
		generation: b.generation,
		cells:      make([][]Cell, len(b.cells)),
	}
	for r, row := range b.cells {
		clone.cells[r] = append([]Cell(nil), row...)
	}
	if b.seeded != nil {
		clone.seeded = make(map[Location]struct{}, len(b.seeded))
		for loc := range b.seeded {
			clone.seeded[loc] = struct{}{}
		}
	}
	return clone
}

func (b *Board) String() string {
	var sb strings.Builder
	for _, line := range Text(b) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
