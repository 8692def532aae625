package valuation

import (
	"math/rand"
)

// VarianceSource supplies the random multiplier applied to theatrical
// revenue estimates. Injecting it keeps the engine reproducible: production
// callers use UniformVariance, tests use FixedVariance so two runs over the
// same inputs produce identical scorecards.
type VarianceSource interface {
	// NextVariance returns the next multiplier, typically near 1.0.
	NextVariance() float64
}

// UniformVariance draws multipliers uniformly from [Low, High).
// Not safe for concurrent use; concurrent callers need one source each.
type UniformVariance struct {
	Low, High float64
	rng       *rand.Rand
}

// NewUniformVariance creates a seeded uniform source over [low, high).
func NewUniformVariance(low, high float64, seed int64) *UniformVariance {
	return &UniformVariance{
		Low:  low,
		High: high,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// DefaultVariance returns the standard box-office variance band, 0.8-1.2.
func DefaultVariance(seed int64) *UniformVariance {
	return NewUniformVariance(0.8, 1.2, seed)
}

func (u *UniformVariance) NextVariance() float64 {
	return u.Low + u.rng.Float64()*(u.High-u.Low)
}

// FixedVariance always returns the same multiplier. A Factor of 0 is
// treated as 1.0 so the zero value is a no-op source.
type FixedVariance struct {
	Factor float64
}

func (f FixedVariance) NextVariance() float64 {
	if f.Factor == 0 {
		return 1.0
	}
	return f.Factor
}
