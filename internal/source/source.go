package source

import (
	"math"
	"math/rand/v2"
	"time"
)

// Generator produces the next price for a symbol given a base and a
// symmetric range. Implementations should return a value in
// [base-spread, base+spread].
type Generator interface {
	Generate(base, spread float64) float64
}

// Func adapts a plain function to Generator.
type Func func(base, spread float64) float64

func (f Func) Generate(base, spread float64) float64 {
	return f(base, spread)
}

// Uniform draws uniformly from [base-spread, base+spread]. It is not safe for
// concurrent use; the batch updater is its only caller.
type Uniform struct {
	rnd *rand.Rand
}

func NewUniform(seed uint64) *Uniform {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Uniform{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (u *Uniform) Generate(base, spread float64) float64 {
	if spread <= 0 {
		return base
	}

	v := base - spread + u.rnd.Float64()*2*spread
	return math.Min(math.Max(v, base-spread), base+spread)
}
