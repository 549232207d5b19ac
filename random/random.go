package random

import (
	"math/rand"
)

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// Source draws uniform integers for map generation. Implementations are
// single-caller by contract (not goroutine-safe).
type Source interface {
	// Next returns a uniform integer in [min, max). Callers must pass
	// min < max; the half-open convention matches math/rand.Intn.
	Next(min, max int) int
}

// Default is the process-wide source used when a strategy is constructed
// without an explicit one. It is deterministic (fixed seed) like every
// other Source in this package.
var Default Source = New(0)

// seeded is the math/rand-backed Source.
type seeded struct {
	r *rand.Rand
}

// New returns a deterministic Source. Policy: seed==0 ⇒ defaultSeed;
// otherwise the provided seed is used verbatim.
// Complexity: O(1).
func New(seed int64) Source {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return &seeded{r: rand.New(rand.NewSource(s))}
}

// Next returns a uniform integer in [min, max).
func (s *seeded) Next(min, max int) int {
	return min + s.r.Intn(max-min)
}

// series replays a fixed sequence of draws, cycling when exhausted.
type series struct {
	values []int
	next   int
}

// KnownSeries returns a Source that yields the given values in order,
// cycling back to the first once exhausted. Values are returned verbatim;
// the caller is responsible for keeping them inside the ranges the consumer
// will request. Intended for reproducible test fixtures.
func KnownSeries(values ...int) Source {
	vs := make([]int, len(values))
	copy(vs, values)

	return &series{values: vs}
}

// Next returns the next value in the series, ignoring min and max.
func (s *series) Next(min, max int) int {
	if len(s.values) == 0 {
		return min
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)

	return v
}
