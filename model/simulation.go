package model

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifeboard/utils"
)

// stagnationWindow is how many recent board hashes are kept to detect cycles
const stagnationWindow = 5

// Simulation owns the current board and its fade history and advances them
// one generation at a time. It is driven from a single goroutine.
type Simulation struct {
	config   utils.Config
	board    *Board
	history  *History
	pool     *BoardPool
	stats    *utils.Stats
	hashes   []string
	stagnant bool
	lastStep time.Time
}

// NewSimulation builds the first generation: seed patterns are stamped at
// random locations first, then every other cell is randomized.
func NewSimulation(config utils.Config, dims Dimensions, rng *rand.Rand) (*Simulation, error) {
	board, err := NewEmptyBoard(dims)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation]")
	}
	history, err := NewHistory(config.HistoryLength)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation]")
	}

	seedPatterns(board, Glider, config.Gliders, rng)
	seedPatterns(board, Oscillator, config.Oscillators, rng)
	board.Randomize(rng)
	history.Push(board)

	s := &Simulation{
		config:   config,
		board:    board,
		history:  history,
		pool:     NewBoardPool(),
		stats:    utils.NewStats(),
		lastStep: time.Now(),
	}
	s.record(0)

	log.WithFields(log.Fields{
		"width":      dims.Width,
		"height":     dims.Height,
		"history":    config.HistoryLength,
		"population": board.Population(),
	}).Info("simulation started")

	return s, nil
}

func seedPatterns(b *Board, p Pattern, count int, rng *rand.Rand) {
	for i := 0; i < count; i++ {
		anchor, err := b.Insert(p, b.RandomLocation(rng))
		if err != nil {
			log.WithError(err).Debug("skipping seed pattern")
			continue
		}
		log.WithField("anchor", anchor.String()).Debugf("seeded %s", p.Name)
	}
}

// Step advances the board by one generation. The previous board stays in
// the history untouched; the snapshot falling off the end is recycled.
func (s *Simulation) Step() {
	start := time.Now()

	next := s.board.Process(s.pool)
	BoardToPool(s.history.Push(next), s.pool)
	s.board = next

	s.record(time.Since(start))
	s.lastStep = start
	log.WithFields(s.stats.Fields()).Debug("generation")
}

func (s *Simulation) record(duration time.Duration) {
	dims := s.board.Dimensions()
	s.stats.Update(s.board.Generation(), s.board.Population(), dims.Width*dims.Height, duration)

	hash := s.board.Hash()
	wasStagnant := s.stagnant
	s.stagnant = slices.Contains(s.hashes, hash)
	s.hashes = append(s.hashes, hash)
	if len(s.hashes) > stagnationWindow {
		s.hashes = s.hashes[1:]
	}

	if s.stagnant && !wasStagnant {
		log.WithField("generation", s.board.Generation()).Info("board settled into a cycle")
	}
}

// Board returns an independently owned copy of the current generation
func (s *Simulation) Board() *Board {
	return s.board.Clone()
}

// History returns an independently owned copy of the recent generations, the
// current one included
func (s *Simulation) History() *History {
	return s.history.clone()
}

// View lends the current board and history to fn without copying them. They
// are only valid until fn returns and must not be modified or retained.
func (s *Simulation) View(fn func(current *Board, history *History)) {
	fn(s.board, s.history)
}

// Dimensions returns the size of the board
func (s *Simulation) Dimensions() Dimensions {
	return s.board.Dimensions()
}

// Generation returns the current generation number
func (s *Simulation) Generation() int {
	return s.board.Generation()
}

// Stats returns the running statistics
func (s *Simulation) Stats() *utils.Stats {
	return s.stats
}

// Stagnant reports whether the current board repeats one of the last few generations
func (s *Simulation) Stagnant() bool {
	return s.stagnant
}

// Done reports whether the configured generation limit has been reached
func (s *Simulation) Done() bool {
	return s.config.MaxGenerations > 0 && s.board.Generation() >= s.config.MaxGenerations
}

// Due reports whether a frame interval has passed since the last step
func (s *Simulation) Due(now time.Time) bool {
	return now.Sub(s.lastStep) >= s.config.FrameRate
}

// Status is the one-line summary shown under the board
func (s *Simulation) Status() string {
	status := "Active"
	switch {
	case s.stats.Population == 0:
		status = "Extinct"
	case s.stagnant:
		status = "Stagnant"
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
		s.board.Generation(), s.stats.Population, s.stats.Density, status)
}
