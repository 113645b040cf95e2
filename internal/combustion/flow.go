package combustion

// MolarFlow converts a fuel mass flow in kg/s to a molar flow in kmol/s by
// dividing by the mole-fraction-weighted average molecular weight of the
// composition.
func MolarFlow(massFlow float64, comp Composition) (float64, error) {
	if massFlow <= 0 {
		return 0, &InvalidInputError{Field: "mass flow", Reason: "must be positive"}
	}
	if err := comp.Validate(); err != nil {
		return 0, err
	}
	var avgWeight float64
	for s, fraction := range comp {
		avgWeight += fraction * molecularWeights[s]
	}
	if avgWeight <= 0 {
		return 0, &InvalidInputError{Field: "composition", Reason: "average molecular weight is zero"}
	}
	return massFlow / avgWeight, nil
}
