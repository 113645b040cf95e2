package combustion

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// sumTolerance is the allowed deviation of a composition's mole-fraction
// sum from 1.
const sumTolerance = 1e-6

// Composition maps species to their mole fraction in the fuel stream.
// Absent species contribute zero. The engine treats a unit sum as a caller
// precondition and never renormalizes; Normalized is provided for callers
// that accept percent-style inputs.
type Composition map[Species]float64

// Sum returns the total of all mole fractions.
func (c Composition) Sum() float64 {
	vals := make([]float64, 0, len(c))
	for _, f := range c {
		vals = append(vals, f)
	}
	return floats.Sum(vals)
}

// Validate checks that every key is a member of the species set and every
// fraction lies in [0, 1]. It does not check the unit-sum precondition.
func (c Composition) Validate() error {
	for s, f := range c {
		if !s.Valid() {
			return &UnknownSpeciesError{Name: s.String()}
		}
		if f < 0 || f > 1 {
			return &InvalidInputError{
				Field:  "composition",
				Reason: fmt.Sprintf("mole fraction %g for %s outside [0,1]", f, s),
			}
		}
	}
	return nil
}

// UnitSum reports whether the mole fractions sum to 1 within tolerance.
func (c Composition) UnitSum() bool {
	return scalar.EqualWithinAbs(c.Sum(), 1, sumTolerance)
}

// Normalized returns a copy of the composition scaled so its fractions sum
// to 1. A composition with a zero sum is returned unchanged.
func (c Composition) Normalized() Composition {
	total := c.Sum()
	out := make(Composition, len(c))
	for s, f := range c {
		if total > 0 {
			out[s] = f / total
		} else {
			out[s] = f
		}
	}
	return out
}
