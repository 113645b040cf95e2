// Package combustion implements the fuel-gas combustion stoichiometry
// engine: conversion of a fuel stream's mass flow to molar flow, the
// per-species reaction balance, and the bisection solver that finds the
// combustion-air supply producing a target residual-oxygen concentration
// in the exhaust.
//
// All species data is held in immutable process-wide tables. Every
// calculation is a pure function of its inputs, so concurrent calls need
// no synchronization.
package combustion

// Species identifies one gas species from the closed set handled by the
// calculator. Using an enumerated type instead of free-form string keys
// means an unknown species can only enter the system through
// ParseSpecies, which rejects it.
type Species uint8

const (
	// CH4 is methane.
	CH4 Species = iota
	// C2H6 is ethane.
	C2H6
	// C3H8 is propane.
	C3H8
	// C6H6 is benzene.
	C6H6
	// He is helium, an inert pass-through.
	He
	// N2 is nitrogen, inert in fuel and the bulk of combustion air.
	N2
	// H2O is water vapor, present in fuel and produced by combustion.
	H2O
	// H2S is hydrogen sulfide; it burns to SO2 and H2O.
	H2S
	// O2 is oxygen, supplied with combustion air.
	O2
	// CO2 is carbon dioxide.
	CO2
	// SO2 is sulfur dioxide.
	SO2

	numSpecies = int(SO2) + 1
)

// speciesNames maps each Species to its chemical formula.
var speciesNames = [numSpecies]string{
	CH4:  "CH4",
	C2H6: "C2H6",
	C3H8: "C3H8",
	C6H6: "C6H6",
	He:   "He",
	N2:   "N2",
	H2O:  "H2O",
	H2S:  "H2S",
	O2:   "O2",
	CO2:  "CO2",
	SO2:  "SO2",
}

// molecularWeights holds molecular weights in kg/kmol.
var molecularWeights = [numSpecies]float64{
	CH4:  16.04,
	C2H6: 30.07,
	C3H8: 44.10,
	C6H6: 78.11,
	He:   4.003,
	N2:   28.01,
	H2O:  18.02,
	H2S:  34.08,
	O2:   32.0,
	CO2:  44.01,
	SO2:  64.06,
}

// String returns the chemical formula for the species, or "unknown" for an
// out-of-range value.
func (s Species) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return speciesNames[s]
}

// Valid reports whether s is a member of the closed species set.
func (s Species) Valid() bool {
	return int(s) < numSpecies
}

// MolecularWeight returns the species molecular weight in kg/kmol.
// It panics on an out-of-range value; values obtained from ParseSpecies
// or the exported constants are always in range.
func (s Species) MolecularWeight() float64 {
	return molecularWeights[s]
}

// ParseSpecies converts a chemical formula such as "CH4" into a Species.
// It returns an UnknownSpeciesError for formulas outside the supported set.
func ParseSpecies(name string) (Species, error) {
	for i, n := range speciesNames {
		if n == name {
			return Species(i), nil
		}
	}
	return 0, &UnknownSpeciesError{Name: name}
}

// AllSpecies returns every supported species in declaration order.
func AllSpecies() []Species {
	all := make([]Species, numSpecies)
	for i := range all {
		all[i] = Species(i)
	}
	return all
}
