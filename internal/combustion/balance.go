package combustion

// balance captures the exhaust state implied by one trial oxygen supply.
// All flows are molar (kmol/s).
type balance struct {
	co2        float64
	h2o        float64
	so2        float64
	he         float64
	n2         float64
	residualO2 float64
	total      float64
}

// exhaustBalance computes the exhaust molar flows for a given fuel stream
// and trial oxygen supply. It is a pure function of its arguments so the
// solver can evaluate it repeatedly; theoreticalO2 is passed in rather
// than recomputed because it is invariant across solver iterations.
//
// Residual O2 goes negative when the supply is below the theoretical
// demand; callers are responsible for keeping the supply at or above the
// demand.
func exhaustBalance(fuelMolarFlow float64, comp Composition, theoreticalO2, o2Supply float64) balance {
	var b balance
	for s, fraction := range comp {
		r := reactions[s]
		moles := fuelMolarFlow * fraction
		b.co2 += moles * r.CO2Produced
		b.h2o += moles * r.H2OProduced
		b.so2 += moles * r.SO2Produced
	}

	// Water and nitrogen carried in with the fuel pass straight through;
	// helium is inert.
	b.h2o += fuelMolarFlow * comp[H2O]
	b.he = fuelMolarFlow * comp[He]
	b.n2 = o2Supply/airO2Fraction*airN2Fraction + fuelMolarFlow*comp[N2]

	b.residualO2 = o2Supply - theoreticalO2
	b.total = b.co2 + b.h2o + b.so2 + b.he + b.n2 + b.residualO2
	return b
}

// residualO2Fraction returns the mole fraction of unreacted oxygen in the
// exhaust.
func (b balance) residualO2Fraction() float64 {
	return b.residualO2 / b.total
}
