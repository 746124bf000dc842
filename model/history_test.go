package model

import (
	"testing"

	"github.com/pkg/errors"
)

func generationBoard(t *testing.T, generation int) *Board {
	t.Helper()
	b, err := NewEmptyBoard(Dimensions{Width: 1, Height: 1})
	if err != nil {
		t.Fatal(err)
	}
	b.generation = generation
	return b
}

func generations(boards []*Board) []int {
	out := make([]int, 0, len(boards))
	for _, b := range boards {
		out = append(out, b.Generation())
	}
	return out
}

func TestNewHistory_InvalidLength(t *testing.T) {
	if _, err := NewHistory(0); !errors.Is(err, ErrInvalidHistoryLength) {
		t.Errorf("got %v, want ErrInvalidHistoryLength", err)
	}
}

func TestHistory_PushEvictsOldest(t *testing.T) {
	h, err := NewHistory(3)
	if err != nil {
		t.Fatal(err)
	}
	if h.Newest() != nil {
		t.Error("empty history has a newest board")
	}

	for gen := 0; gen < 3; gen++ {
		if evicted := h.Push(generationBoard(t, gen)); evicted != nil {
			t.Fatalf("push %d evicted generation %d before the history was full", gen, evicted.Generation())
		}
	}

	evicted := h.Push(generationBoard(t, 3))
	if evicted == nil || evicted.Generation() != 0 {
		t.Fatalf("expected generation 0 to be evicted, got %v", evicted)
	}
	evicted = h.Push(generationBoard(t, 4))
	if evicted == nil || evicted.Generation() != 1 {
		t.Fatalf("expected generation 1 to be evicted, got %v", evicted)
	}

	if h.Len() != 3 || h.Cap() != 3 {
		t.Errorf("len %d cap %d, want 3 and 3", h.Len(), h.Cap())
	}
	if got := generations(h.Snapshots()); got[0] != 2 || got[1] != 3 || got[2] != 4 {
		t.Errorf("snapshots oldest first = %v, want [2 3 4]", got)
	}
	if h.Newest().Generation() != 4 {
		t.Errorf("newest = %d, want 4", h.Newest().Generation())
	}
}

func TestHistory_EachNewestFirst(t *testing.T) {
	h, err := NewHistory(4)
	if err != nil {
		t.Fatal(err)
	}
	for gen := 0; gen < 6; gen++ {
		h.Push(generationBoard(t, gen))
	}

	var ages, gens []int
	h.Each(func(age int, b *Board) {
		ages = append(ages, age)
		gens = append(gens, b.Generation())
	})

	wantGens := []int{5, 4, 3, 2}
	for i := range wantGens {
		if ages[i] != i || gens[i] != wantGens[i] {
			t.Fatalf("Each gave ages %v generations %v, want ages [0 1 2 3] generations %v", ages, gens, wantGens)
		}
	}
}
