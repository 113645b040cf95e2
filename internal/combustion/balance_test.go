package combustion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExhaustBalancePureMethane(t *testing.T) {
	// 1 kmol/s CH4 burned with 3 kmol/s O2 supplied (theoretical demand 2).
	b := exhaustBalance(1.0, Composition{CH4: 1.0}, 2.0, 3.0)

	assert.InDelta(t, 1.0, b.co2, 1e-12)
	assert.InDelta(t, 2.0, b.h2o, 1e-12)
	assert.InDelta(t, 0.0, b.so2, 1e-12)
	assert.InDelta(t, 0.0, b.he, 1e-12)
	assert.InDelta(t, 3.0/0.21*0.79, b.n2, 1e-9)
	assert.InDelta(t, 1.0, b.residualO2, 1e-12)
	assert.InDelta(t, 1+2+3.0/0.21*0.79+1, b.total, 1e-9)
	assert.InDelta(t, 1.0/b.total, b.residualO2Fraction(), 1e-12)
}

func TestExhaustBalanceFuelInertsPassThrough(t *testing.T) {
	comp := Composition{CH4: 0.7, He: 0.1, N2: 0.1, H2O: 0.1}
	theoretical := StoichiometricOxygen(2.0, comp) // 2 * 0.7 * 2 = 2.8
	b := exhaustBalance(2.0, comp, theoretical, theoretical)

	assert.InDelta(t, 2.0*0.1, b.he, 1e-12)
	// Fuel-borne water plus combustion water.
	assert.InDelta(t, 2.0*0.1+2.0*0.7*2, b.h2o, 1e-12)
	// Air-borne nitrogen plus fuel-borne nitrogen.
	assert.InDelta(t, theoretical/0.21*0.79+2.0*0.1, b.n2, 1e-9)
	// Exactly stoichiometric supply leaves no residual oxygen.
	assert.InDelta(t, 0.0, b.residualO2, 1e-12)
}

func TestExhaustBalanceHydrogenSulfide(t *testing.T) {
	comp := Composition{CH4: 0.9, H2S: 0.1}
	theoretical := StoichiometricOxygen(1.0, comp)
	b := exhaustBalance(1.0, comp, theoretical, theoretical*2)

	assert.InDelta(t, 0.1, b.so2, 1e-12)
	// H2S contributes one mole of water per mole burned.
	assert.InDelta(t, 0.9*2+0.1*1, b.h2o, 1e-12)
	assert.InDelta(t, 0.9*1, b.co2, 1e-12)
}

func TestExhaustBalanceInsufficientSupplyGoesNegative(t *testing.T) {
	b := exhaustBalance(1.0, Composition{CH4: 1.0}, 2.0, 1.0)
	assert.Negative(t, b.residualO2)
}
