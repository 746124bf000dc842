package model

import "github.com/pkg/errors"

// ErrInvalidHistoryLength is returned when a history is requested with no room
var ErrInvalidHistoryLength = errors.New("history length must be at least 1")

// History is a fixed-capacity ring of past boards used for the fade trail.
// When full, pushing a board evicts the oldest one.
type History struct {
	snapshots []*Board
	head      int // index of the oldest snapshot
	size      int
}

// NewHistory creates an empty history holding at most capacity boards
func NewHistory(capacity int) (*History, error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidHistoryLength, "[NewHistory] got %d", capacity)
	}
	return &History{snapshots: make([]*Board, capacity)}, nil
}

// Push appends b as the newest snapshot and returns the evicted board, if any
func (h *History) Push(b *Board) (evicted *Board) {
	capacity := len(h.snapshots)
	if h.size < capacity {
		h.snapshots[(h.head+h.size)%capacity] = b
		h.size++
		return nil
	}

	evicted = h.snapshots[h.head]
	h.snapshots[h.head] = b
	h.head = (h.head + 1) % capacity
	return evicted
}

// Len returns the number of stored snapshots
func (h *History) Len() int {
	return h.size
}

// Cap returns the configured history length
func (h *History) Cap() int {
	return len(h.snapshots)
}

// Newest returns the most recently pushed board, or nil when empty
func (h *History) Newest() *Board {
	if h.size == 0 {
		return nil
	}
	return h.snapshots[(h.head+h.size-1)%len(h.snapshots)]
}

// Snapshots returns the stored boards, oldest first
func (h *History) Snapshots() []*Board {
	out := make([]*Board, 0, h.size)
	for i := 0; i < h.size; i++ {
		out = append(out, h.snapshots[(h.head+i)%len(h.snapshots)])
	}
	return out
}

// Each calls fn for every snapshot from newest (age 0) to oldest
func (h *History) Each(fn func(age int, b *Board)) {
	for age := 0; age < h.size; age++ {
		fn(age, h.snapshots[(h.head+h.size-1-age)%len(h.snapshots)])
	}
}

// clone copies the ring, giving every snapshot a fresh owner
func (h *History) clone() *History {
	c := &History{snapshots: make([]*Board, len(h.snapshots))}
	for _, b := range h.Snapshots() {
		c.Push(b.Clone())
	}
	return c
}
