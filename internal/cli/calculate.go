package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/combustkit/fluegas/internal/combustion"
	"github.com/combustkit/fluegas/internal/logging"
)

// calculateParams holds the parameters for the calculate command.
type calculateParams struct {
	massFlow        float64
	targetO2Percent float64
	fuel            []string
	interactive     bool
	output          string
}

// NewCalculateCmd creates the "calculate" subcommand.
//
// Registered flags:
//   - --mass-flow: fuel gas mass flow rate in kg/s
//   - --target-o2: target residual O2 concentration in the exhaust, in
//     mole percent
//   - --fuel: repeatable SPECIES=FRACTION pairs overriding the configured
//     default composition
//   - --interactive: prompt for composition, mass flow, and target
//   - --output: table or json (default from configuration)
func NewCalculateCmd() *cobra.Command {
	var params calculateParams

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the air requirement and exhaust-gas composition",
		Long: `Calculate converts the fuel stream to molar flow, solves for the
combustion-air supply that leaves the requested residual oxygen in the
flue gas, and reports the exhaust composition and mass flows.

Compositions whose fractions do not sum to one (for example percent
values) are normalized before the calculation.`,
		Example: calculateExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCalculate(cmd, params)
		},
	}

	cmd.Flags().Float64Var(&params.massFlow, "mass-flow", 0, "fuel gas mass flow rate (kg/s)")
	cmd.Flags().Float64Var(&params.targetO2Percent, "target-o2", 3.0,
		"target exhaust O2 concentration (mole percent)")
	cmd.Flags().StringArrayVar(&params.fuel, "fuel", nil,
		"fuel species mole fraction as SPECIES=FRACTION (repeatable)")
	cmd.Flags().BoolVar(&params.interactive, "interactive", false,
		"prompt for composition, mass flow, and target")
	cmd.Flags().StringVar(&params.output, "output", "", "output format: table or json")

	return cmd
}

const calculateExample = `  # Pure methane at 1 kg/s, 3% residual O2
  fluegas calculate --mass-flow 1.0 --target-o2 3.0 --fuel CH4=1.0

  # Default composition from the config file
  fluegas calculate --mass-flow 2.5 --target-o2 2.0

  # JSON output
  fluegas calculate --mass-flow 1.0 --fuel CH4=1.0 --output json`

// executeCalculate resolves the fuel composition (flags, interactive
// prompts, or the configured default), runs the combustion engine, and
// renders the result.
func executeCalculate(cmd *cobra.Command, params calculateParams) error {
	calcLogger := logging.ComponentLogger(logger, "calculate")
	runID := logging.NewRunID()

	comp, err := resolveComposition(cmd, &params)
	if err != nil {
		return err
	}

	if !comp.UnitSum() {
		if comp.Sum() <= 0 {
			return fmt.Errorf("composition mole fractions sum to zero")
		}
		calcLogger.Debug().Str("run_id", runID).Float64("sum", comp.Sum()).
			Msg("normalizing composition to unit sum")
		comp = comp.Normalized()
	}

	if params.massFlow <= 0 {
		return fmt.Errorf("--mass-flow must be positive (got %g)", params.massFlow)
	}
	if params.targetO2Percent <= 0 || params.targetO2Percent >= 100 {
		return fmt.Errorf("--target-o2 must be between 0 and 100 percent (got %g)", params.targetO2Percent)
	}

	output := params.output
	if output == "" {
		output = appConfig.Output.Format
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("invalid output format %q: must be table or json", output)
	}

	calcLogger.Info().
		Str("run_id", runID).
		Float64("mass_flow_kg_s", params.massFlow).
		Float64("target_o2_percent", params.targetO2Percent).
		Msg("starting calculation")

	result, err := combustion.Compute(combustion.Input{
		MassFlow:      params.massFlow,
		Composition:   comp,
		TargetO2:      params.targetO2Percent / 100,
		Tolerance:     appConfig.Solver.Tolerance,
		BracketFactor: appConfig.Solver.BracketFactor,
	})
	if err != nil {
		calcLogger.Error().Str("run_id", runID).Err(err).Msg("calculation failed")
		return err
	}

	calcLogger.Info().
		Str("run_id", runID).
		Int("solver_iterations", result.SolverIterations).
		Float64("air_mass_flow_kg_s", result.AirMassFlow).
		Float64("total_mass_flow_kg_s", result.TotalMassFlow).
		Msg("calculation complete")

	if output == "json" {
		return renderJSON(cmd.OutOrStdout(), runID, params, result)
	}
	return renderTable(cmd.OutOrStdout(), params, result)
}

// resolveComposition picks the fuel composition in order of precedence:
// --fuel flags, interactive prompts, then the configured default. In
// interactive mode the mass flow and target are also prompted for, with
// the flag values as defaults.
func resolveComposition(cmd *cobra.Command, params *calculateParams) (combustion.Composition, error) {
	if len(params.fuel) > 0 {
		return parseFuelFlags(params.fuel)
	}

	defaults, err := appConfig.Composition()
	if err != nil {
		return nil, err
	}

	if params.interactive {
		if !isTerminal(os.Stdin) {
			logger.Debug().Msg("stdin is not a terminal; reading scripted interactive input")
		}
		return runInteractive(cmd.OutOrStdout(), cmd.InOrStdin(), defaults, params)
	}
	return defaults, nil
}

// parseFuelFlags converts repeated SPECIES=FRACTION flag values into a
// composition.
func parseFuelFlags(pairs []string) (combustion.Composition, error) {
	comp := make(combustion.Composition, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid --fuel value %q: expected SPECIES=FRACTION", pair)
		}
		s, err := combustion.ParseSpecies(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		fraction, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid fraction in --fuel value %q: %w", pair, err)
		}
		if fraction < 0 {
			return nil, fmt.Errorf("negative fraction in --fuel value %q", pair)
		}
		if _, dup := comp[s]; dup {
			return nil, fmt.Errorf("duplicate species %s in --fuel flags", s)
		}
		comp[s] = fraction
	}
	return comp, nil
}
