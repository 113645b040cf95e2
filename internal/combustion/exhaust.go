package combustion

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Input holds the caller-owned parameters of one calculation. Composition
// mole fractions must sum to 1; callers accepting percent-style input
// normalize before constructing an Input.
type Input struct {
	// MassFlow is the fuel mass flow rate in kg/s. Must be positive.
	MassFlow float64
	// Composition is the fuel's molar composition.
	Composition Composition
	// TargetO2 is the desired residual-oxygen mole fraction in the
	// exhaust, strictly between 0 and 1.
	TargetO2 float64

	// Tolerance overrides the bisection bracket tolerance when positive.
	// Defaults to 1e-6 kmol/s.
	Tolerance float64
	// BracketFactor overrides the upper search bound multiple of the
	// stoichiometric oxygen demand when positive. Defaults to 5.
	BracketFactor float64
}

// Result is the outcome of one exhaust calculation. All maps key the six
// exhaust-side species (CO2, H2O, SO2, He, O2, N2); species the fuel
// cannot produce carry a zero entry.
type Result struct {
	// Composition is the exhaust mole-fraction composition in percent;
	// values sum to 100.
	Composition map[Species]float64 `json:"composition"`
	// MassFlows holds per-species exhaust mass flows in kg/s.
	MassFlows map[Species]float64 `json:"mass_flows"`
	// TotalMassFlow is the total exhaust mass flow in kg/s.
	TotalMassFlow float64 `json:"total_mass_flow"`
	// AirMassFlow is the combustion-air mass flow in kg/s.
	AirMassFlow float64 `json:"air_mass_flow"`
	// AirMolarFlow is the combustion-air molar flow in kmol/s.
	AirMolarFlow float64 `json:"air_molar_flow"`
	// FuelMolarFlow is the fuel molar flow in kmol/s.
	FuelMolarFlow float64 `json:"fuel_molar_flow"`
	// OxygenSupply is the converged oxygen molar flow in kmol/s.
	OxygenSupply float64 `json:"oxygen_supply"`
	// SolverIterations is the number of bisection steps taken.
	SolverIterations int `json:"solver_iterations"`
}

// Compute runs the full calculation: fuel molar flow, air-requirement
// solve, and final exhaust composition at the converged air rate. It is a
// pure function; identical inputs produce identical results.
func Compute(in Input) (*Result, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	fuelMolarFlow, err := MolarFlow(in.MassFlow, in.Composition)
	if err != nil {
		return nil, err
	}

	settings := solverSettings{tolerance: defaultTolerance, bracketFactor: defaultBracketFactor}
	if in.Tolerance > 0 {
		settings.tolerance = in.Tolerance
	}
	if in.BracketFactor > 0 {
		settings.bracketFactor = in.BracketFactor
	}

	supply, iterations, err := solveOxygenSupply(fuelMolarFlow, in.Composition, in.TargetO2, settings)
	if err != nil {
		return nil, err
	}
	airMolarFlow := supply / airO2Fraction

	// One final balance evaluation at the converged air rate.
	theoretical := StoichiometricOxygen(fuelMolarFlow, in.Composition)
	b := exhaustBalance(fuelMolarFlow, in.Composition, theoretical, supply)

	molarFlows := map[Species]float64{
		CO2: b.co2,
		H2O: b.h2o,
		SO2: b.so2,
		He:  b.he,
		O2:  b.residualO2,
		N2:  b.n2,
	}

	composition := make(map[Species]float64, len(molarFlows))
	massFlows := make(map[Species]float64, len(molarFlows))
	masses := make([]float64, 0, len(molarFlows))
	for s, flow := range molarFlows {
		composition[s] = flow / b.total * 100
		massFlows[s] = flow * s.MolecularWeight()
		masses = append(masses, massFlows[s])
	}

	return &Result{
		Composition:      composition,
		MassFlows:        massFlows,
		TotalMassFlow:    floats.Sum(masses),
		AirMassFlow:      airMolarFlow * AirMolecularWeight(),
		AirMolarFlow:     airMolarFlow,
		FuelMolarFlow:    fuelMolarFlow,
		OxygenSupply:     supply,
		SolverIterations: iterations,
	}, nil
}

// validate rejects out-of-range scalar inputs and malformed compositions
// before any computation begins.
func validate(in Input) error {
	if in.MassFlow <= 0 {
		return &InvalidInputError{Field: "mass flow", Reason: "must be positive"}
	}
	if in.TargetO2 <= 0 || in.TargetO2 >= 1 {
		return &InvalidInputError{
			Field:  "target O2 fraction",
			Reason: fmt.Sprintf("%g outside (0,1)", in.TargetO2),
		}
	}
	if len(in.Composition) == 0 {
		return &InvalidInputError{Field: "composition", Reason: "empty"}
	}
	return in.Composition.Validate()
}
