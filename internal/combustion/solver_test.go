package combustion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultSettings = solverSettings{
	tolerance:     defaultTolerance,
	bracketFactor: defaultBracketFactor,
}

func TestSolveOxygenSupplyConverges(t *testing.T) {
	comp := Composition{CH4: 1.0}
	fuelMolarFlow := 1.0 / 16.04
	target := 0.03

	supply, iterations, err := solveOxygenSupply(fuelMolarFlow, comp, target, defaultSettings)
	require.NoError(t, err)
	assert.Positive(t, iterations)
	assert.Less(t, iterations, 64)

	theoretical := StoichiometricOxygen(fuelMolarFlow, comp)
	assert.Greater(t, supply, theoretical)
	assert.LessOrEqual(t, supply, theoretical*defaultBracketFactor)

	// The converged supply reproduces the target residual fraction.
	b := exhaustBalance(fuelMolarFlow, comp, theoretical, supply)
	assert.InDelta(t, target, b.residualO2Fraction(), 1e-4)
}

func TestSolveOxygenSupplyDegenerateComposition(t *testing.T) {
	tests := []struct {
		name string
		comp Composition
	}{
		{"pure helium", Composition{He: 1.0}},
		{"inert mixture", Composition{N2: 0.5, CO2: 0.5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := solveOxygenSupply(1.0, tc.comp, 0.03, defaultSettings)
			require.ErrorIs(t, err, ErrDegenerateComposition)
		})
	}
}

func TestSolveOxygenSupplyUnreachableTarget(t *testing.T) {
	// For pure methane the residual-O2 fraction at five times the
	// stoichiometric supply is about 0.1645; anything above is out of
	// reach of the bracket.
	_, _, err := solveOxygenSupply(1.0, Composition{CH4: 1.0}, 0.18, defaultSettings)
	require.Error(t, err)

	var targetErr *UnreachableTargetError
	require.True(t, errors.As(err, &targetErr))
	assert.InDelta(t, 0.18, targetErr.Target, 1e-12)
	assert.Greater(t, targetErr.MaxAchievable, 0.16)
	assert.Less(t, targetErr.MaxAchievable, 0.17)

	// Just below the bracket ceiling the solve still succeeds.
	_, _, err = solveOxygenSupply(1.0, Composition{CH4: 1.0}, 0.16, defaultSettings)
	require.NoError(t, err)
}

func TestSolveOxygenSupplyCustomSettings(t *testing.T) {
	comp := Composition{CH4: 1.0}

	// A wider bracket makes a previously unreachable target solvable.
	wide := solverSettings{tolerance: defaultTolerance, bracketFactor: 20}
	supply, _, err := solveOxygenSupply(1.0, comp, 0.18, wide)
	require.NoError(t, err)
	b := exhaustBalance(1.0, comp, StoichiometricOxygen(1.0, comp), supply)
	assert.InDelta(t, 0.18, b.residualO2Fraction(), 1e-4)

	// A looser tolerance converges in fewer iterations.
	loose := solverSettings{tolerance: 1e-3, bracketFactor: defaultBracketFactor}
	_, looseIters, err := solveOxygenSupply(1.0, comp, 0.03, loose)
	require.NoError(t, err)
	_, tightIters, err := solveOxygenSupply(1.0, comp, 0.03, defaultSettings)
	require.NoError(t, err)
	assert.Less(t, looseIters, tightIters)
}
