package algo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Source produces the ListLen cells that seed a run. Every call returns
// cells with identities that were never handed out before.
type Source interface {
	Generate() []Cell
}

// zeroOdds[i] = k means index i holds a zero with probability 1/(k+1).
// Index 0 is drawn uniformly from 0..99 instead.
var zeroOdds = [ListLen]int{0, 2, 3, 1, 5, 1, 3, 1}

// RandomSource draws lists biased towards zeros at fixed positions. Keys are
// drawn from the same seeded stream, so a seed fully determines a run.
// Not safe for concurrent use.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a source seeded with seed; zero selects a time
// based seed.
func NewRandomSource(seed int64) *RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewSeededSource(seed)
}

// NewSeededSource returns a source seeded with exactly seed, zero included.
func NewSeededSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSource) Generate() []Cell {
	list := make([]Cell, ListLen)
	for i := range list {
		list[i] = Cell{Number: s.number(i), Key: s.key()}
	}
	return list
}

func (s *RandomSource) number(i int) int {
	if i == 0 {
		return s.between(0, 99)
	}
	if s.between(0, zeroOdds[i]) == 0 {
		return 0
	}
	return s.between(1, 99)
}

// between returns a uniform integer in [lo, hi].
func (s *RandomSource) between(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *RandomSource) key() string {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// FixedSource replays the same numbers on every generation with fresh keys.
type FixedSource struct {
	numbers []int
}

// NewFixedSource returns a source for numbers, which must hold exactly
// ListLen values.
func NewFixedSource(numbers []int) (*FixedSource, error) {
	if len(numbers) != ListLen {
		return nil, fmt.Errorf("%w: got %d", ErrListLength, len(numbers))
	}
	n := make([]int, ListLen)
	copy(n, numbers)
	return &FixedSource{numbers: n}, nil
}

func (s *FixedSource) Generate() []Cell {
	list := make([]Cell, ListLen)
	for i, n := range s.numbers {
		list[i] = Cell{Number: n, Key: uuid.NewString()}
	}
	return list
}
