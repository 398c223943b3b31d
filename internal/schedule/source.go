package schedule

import "math/rand/v2"

// Source supplies the randomness for shuffles and reappearance draws.
// Every randomized operation takes one explicitly so tests can inject a
// seeded or scripted source.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64

	// IntN returns a value in [0, n). Panics if n <= 0, matching
	// math/rand/v2 semantics.
	IntN(n int) int
}

type pcgSource struct {
	r *rand.Rand
}

func (s pcgSource) Float64() float64 { return s.r.Float64() }
func (s pcgSource) IntN(n int) int   { return s.r.IntN(n) }

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed uint64) Source {
	return pcgSource{r: rand.New(rand.NewPCG(seed, seed))}
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// DefaultSource returns a Source backed by the shared math/rand/v2
// generator, for production use.
func DefaultSource() Source {
	return globalSource{}
}
