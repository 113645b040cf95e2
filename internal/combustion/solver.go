package combustion

// Solver defaults. The bracket spans stoichiometric oxygen demand up to
// defaultBracketFactor times that demand; bisection stops when the bracket
// is narrower than defaultTolerance kmol/s.
const (
	defaultTolerance     = 1e-6
	defaultBracketFactor = 5.0
)

// solverSettings carries the tunable bisection parameters.
type solverSettings struct {
	tolerance     float64
	bracketFactor float64
}

// solveOxygenSupply finds, by bisection, the oxygen supply whose residual
// mole fraction in the exhaust equals targetO2. Residual O2 molar flow
// grows strictly with supply while the combustion products stay fixed, so
// the residual fraction is monotone in the supply and the root in the
// bracket is unique.
//
// It returns ErrDegenerateComposition when the fuel has no combustible
// content, and an UnreachableTargetError when even the upper bracket bound
// leaves the exhaust leaner in oxygen than requested.
func solveOxygenSupply(fuelMolarFlow float64, comp Composition, targetO2 float64, st solverSettings) (supply float64, iterations int, err error) {
	theoretical := StoichiometricOxygen(fuelMolarFlow, comp)
	if theoretical <= 0 {
		return 0, 0, ErrDegenerateComposition
	}

	low := theoretical
	high := theoretical * st.bracketFactor

	if maxFraction := exhaustBalance(fuelMolarFlow, comp, theoretical, high).residualO2Fraction(); maxFraction < targetO2 {
		return 0, 0, &UnreachableTargetError{Target: targetO2, MaxAchievable: maxFraction}
	}

	for high-low > st.tolerance {
		mid := (low + high) / 2
		b := exhaustBalance(fuelMolarFlow, comp, theoretical, mid)
		if b.residualO2Fraction() < targetO2 {
			low = mid
		} else {
			high = mid
		}
		iterations++
	}
	return high, iterations, nil
}
