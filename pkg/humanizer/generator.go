package humanizer

// DefaultSeed is the generator seed used when the caller supplies none.
const DefaultSeed uint32 = 123456789

// Generator is a seedable xorshift32 pseudo-random source. Every
// probability-gated decision in the rewrite pipeline draws from one
// Generator, so a fixed seed replays the exact same rewrite. Each
// Humanize call owns its own instance; instances must not be shared
// across concurrent calls.
type Generator struct {
	state uint32
}

// NewGenerator creates a generator seeded with seed (0 is remapped to 1).
func NewGenerator(seed uint32) *Generator {
	g := &Generator{}
	g.Seed(seed)
	return g
}

// Seed resets the internal state. A zero seed is remapped to 1 because
// xorshift has a fixed point at zero.
func (g *Generator) Seed(value uint32) {
	if value == 0 {
		value = 1
	}
	g.state = value
}

// Next advances the state and returns a value in [0, 1). The recurrence
// is pure 32-bit integer mixing (shifts 13/17/5); only the final
// division touches floating point, so sequences are identical across
// platforms.
func (g *Generator) Next() float64 {
	x := g.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.state = x
	return float64(x%1000000) / 1000000
}

// Choose picks options[0] with probability preferred, otherwise an
// element selected uniformly from the whole slice. It consumes exactly
// one draw: the tail of the draw is rescaled from [preferred, 1) back
// to [0, 1) before indexing, so every option stays reachable. An empty
// option set yields an empty string.
func (g *Generator) Choose(options []string, preferred float64) string {
	if len(options) == 0 {
		return ""
	}
	r := g.Next()
	if r < preferred {
		return options[0]
	}
	i := int((r - preferred) / (1 - preferred) * float64(len(options)))
	if i >= len(options) {
		i = len(options) - 1
	}
	return options[i]
}
