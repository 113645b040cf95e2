package combustion

import (
	"errors"
	"fmt"
)

// ErrDegenerateComposition indicates a composition with no combustible
// species: the theoretical oxygen demand is zero, so there is no air
// requirement to solve for.
var ErrDegenerateComposition = errors.New(
	"combustion: composition contains no combustible species")

// UnknownSpeciesError indicates a species name outside the supported set.
type UnknownSpeciesError struct {
	Name string
}

func (e *UnknownSpeciesError) Error() string {
	return fmt.Sprintf("combustion: unknown species %q", e.Name)
}

// InvalidInputError indicates an input rejected before any computation:
// a non-positive mass flow, an out-of-range target fraction, or a
// malformed composition.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("combustion: invalid %s: %s", e.Field, e.Reason)
}

// UnreachableTargetError indicates a target residual-O2 mole fraction that
// cannot be reached within the solver's search bracket. MaxAchievable is
// the residual-O2 mole fraction at the upper bracket bound.
type UnreachableTargetError struct {
	Target        float64
	MaxAchievable float64
}

func (e *UnreachableTargetError) Error() string {
	return fmt.Sprintf(
		"combustion: target O2 fraction %.4f exceeds the maximum %.4f achievable within the search bracket",
		e.Target, e.MaxAchievable)
}
