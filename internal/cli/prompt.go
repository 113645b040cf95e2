package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/combustkit/fluegas/internal/combustion"
)

// fuelSpecies lists the species a caller may put in the fuel stream, in
// prompt order. O2 and SO2 only ever appear on the exhaust side.
var fuelSpecies = []combustion.Species{
	combustion.CH4,
	combustion.C2H6,
	combustion.C3H8,
	combustion.C6H6,
	combustion.He,
	combustion.N2,
	combustion.H2O,
	combustion.H2S,
	combustion.CO2,
}

// runInteractive walks the user through composition, mass flow, and
// target entry. Empty input accepts the shown default. It reads from r
// rather than assuming os.Stdin so tests can script the session.
func runInteractive(w io.Writer, r io.Reader, defaults combustion.Composition, params *calculateParams) (combustion.Composition, error) {
	sc := bufio.NewScanner(r)

	comp := defaults
	useDefault, err := promptYesNo(w, sc, "Use default composition?", true)
	if err != nil {
		return nil, err
	}
	if !useDefault {
		comp, err = promptComposition(w, sc, defaults)
		if err != nil {
			return nil, err
		}
	}

	massDefault := params.massFlow
	if massDefault <= 0 {
		massDefault = 1.0
	}
	params.massFlow, err = promptFloat(w, sc, "Fuel gas mass flow (kg/s)", massDefault)
	if err != nil {
		return nil, err
	}

	params.targetO2Percent, err = promptFloat(w, sc, "Target exhaust O2 concentration (%)", params.targetO2Percent)
	if err != nil {
		return nil, err
	}

	return comp, nil
}

// promptComposition asks for one mole fraction per fuel species.
func promptComposition(w io.Writer, sc *bufio.Scanner, defaults combustion.Composition) (combustion.Composition, error) {
	comp := make(combustion.Composition, len(fuelSpecies))
	for _, s := range fuelSpecies {
		fraction, err := promptFloat(w, sc, fmt.Sprintf("Mole fraction of %s", s), defaults[s])
		if err != nil {
			return nil, err
		}
		if fraction < 0 {
			return nil, fmt.Errorf("mole fraction of %s cannot be negative", s)
		}
		if fraction > 0 {
			comp[s] = fraction
		}
	}
	return comp, nil
}

// promptFloat asks for a number, offering def on empty input.
func promptFloat(w io.Writer, sc *bufio.Scanner, label string, def float64) (float64, error) {
	fmt.Fprintf(w, "%s [%g]: ", label, def)
	line, err := readLine(sc)
	if err != nil {
		return 0, err
	}
	if line == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", line, err)
	}
	return value, nil
}

// promptYesNo asks a yes/no question; empty input returns def.
func promptYesNo(w io.Writer, sc *bufio.Scanner, question string, def bool) (bool, error) {
	hint := "[Y/n]"
	if !def {
		hint = "[y/N]"
	}
	fmt.Fprintf(w, "%s %s ", question, hint)
	line, err := readLine(sc)
	if err != nil {
		return false, err
	}
	if line == "" {
		return def, nil
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// readLine reads one trimmed line; EOF is reported as an error so a
// truncated scripted session fails loudly instead of silently accepting
// defaults for every remaining prompt.
func readLine(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(sc.Text()), nil
}
