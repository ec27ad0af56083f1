package wheel

import "math/rand/v2"

// Prize is one outcome of a wheel draw.
type Prize struct {
	Points int64
	Label  string
}

func (p Prize) Won() bool { return p.Points > 0 }

// Tier boundaries are cumulative thresholds over a single uniform sample in
// [0, 1), evaluated in order with first match winning. The effective
// probabilities are 2% / 8% / 10% / 80%; the cutoffs below are NOT
// independent per-tier probabilities.
var tiers = []struct {
	cutoff float64
	prize  Prize
}{
	{0.02, Prize{Points: 300, Label: "Won 300 points"}},
	{0.10, Prize{Points: 100, Label: "Won 100 points"}},
	{0.20, Prize{Points: 50, Label: "Won 50 points"}},
}

var tryAgain = Prize{Points: 0, Label: "Try Again"}

// Pick maps a uniform sample r in [0, 1) to a prize tier. Pure and
// side-effect free; the caller persists the result.
func Pick(r float64) Prize {
	for _, t := range tiers {
		if r < t.cutoff {
			return t.prize
		}
	}
	return tryAgain
}

// Wheel draws prizes from an injected random source so tests can pin the
// sample while production uses a seeded generator.
type Wheel struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Wheel {
	return &Wheel{rng: rng}
}

func NewDefault() *Wheel {
	return &Wheel{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (w *Wheel) Spin() Prize {
	return Pick(w.rng.Float64())
}
