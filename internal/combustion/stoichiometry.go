package combustion

// Reaction holds the stoichiometric coefficients for burning one mole of a
// fuel species in oxygen: moles of O2 consumed and moles of each product
// formed.
type Reaction struct {
	O2Consumed  float64
	CO2Produced float64
	H2OProduced float64
	SO2Produced float64
}

// reactions holds the combustion stoichiometry for every combustible
// species. Entries left zero are inert or already fully oxidized.
//
//	CH4  + 2 O2   -> CO2 + 2 H2O
//	C2H6 + 3.5 O2 -> 2 CO2 + 3 H2O
//	C3H8 + 5 O2   -> 3 CO2 + 4 H2O
//	C6H6 + 7.5 O2 -> 6 CO2 + 3 H2O
//	H2S  + 1.5 O2 -> SO2 + H2O
var reactions = [numSpecies]Reaction{
	CH4:  {O2Consumed: 2, CO2Produced: 1, H2OProduced: 2},
	C2H6: {O2Consumed: 3.5, CO2Produced: 2, H2OProduced: 3},
	C3H8: {O2Consumed: 5, CO2Produced: 3, H2OProduced: 4},
	C6H6: {O2Consumed: 7.5, CO2Produced: 6, H2OProduced: 3},
	H2S:  {O2Consumed: 1.5, H2OProduced: 1, SO2Produced: 1},
}

// Dry-air molar split. Nitrogen entering with the combustion air is
// inferred from the oxygen supply under this fixed ratio.
const (
	airO2Fraction = 0.21
	airN2Fraction = 0.79
)

// AirMolecularWeight is the mole-weighted molecular weight of dry air in
// kg/kmol under the fixed 21/79 O2/N2 split.
func AirMolecularWeight() float64 {
	return airO2Fraction*molecularWeights[O2] + airN2Fraction*molecularWeights[N2]
}

// ReactionFor returns the combustion stoichiometry for a species and
// whether the species is combustible at all.
func ReactionFor(s Species) (Reaction, bool) {
	if !s.Valid() {
		return Reaction{}, false
	}
	r := reactions[s]
	return r, r.O2Consumed > 0
}

// StoichiometricOxygen returns the theoretical oxygen demand: the minimum
// O2 molar flow required to fully oxidize all combustible species in the
// fuel stream.
func StoichiometricOxygen(fuelMolarFlow float64, comp Composition) float64 {
	var demand float64
	for s, fraction := range comp {
		demand += fuelMolarFlow * fraction * reactions[s].O2Consumed
	}
	return demand
}
