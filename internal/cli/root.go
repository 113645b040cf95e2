// Package cli implements the fluegas command line interface.
package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/combustkit/fluegas/internal/config"
	"github.com/combustkit/fluegas/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// annotationSkipConfigLoad marks commands that must run even when the
// configured file cannot be loaded, such as "config init" writing a file
// that does not exist yet.
const annotationSkipConfigLoad = "fluegas_skip_config_load"

// Package-level state wired up once per invocation by the root command's
// PersistentPreRunE.
var (
	appConfig *config.Config //nolint:gochecknoglobals // Set once at startup, read by subcommands
	logger    zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration
	logCloser io.Closer      //nolint:gochecknoglobals // Owns the optional log file handle
)

// NewRootCmd creates the root Cobra command for the fluegas CLI. It wires
// up configuration loading, logging, and the calculate, species, and
// config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fluegas",
		Short: "Fuel-gas combustion calculator",
		Long: `Fluegas computes the combustion-air requirement and exhaust-gas
composition for a multi-component fuel gas stream, given its molar
composition, mass flow rate, and a target residual-oxygen concentration
in the flue gas.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				if cmd.Annotations[annotationSkipConfigLoad] != "true" {
					return err
				}
				cfg = config.Default()
			}
			appConfig = cfg

			logCfg := logging.Config{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				File:   cfg.Logging.File,
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logCfg.Level = "debug"
				logCfg.Format = "console"
				logCfg.File = ""
			}

			base, closer, err := logging.New(logCfg)
			if err != nil {
				return err
			}
			logCloser = closer
			logger = logging.ComponentLogger(base, "cli")
			logger.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logCloser != nil {
				_ = logCloser.Close()
				logCloser = nil
			}
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "",
		"path to config file (default $HOME/.fluegas/config.yaml)")

	cmd.AddCommand(NewCalculateCmd(), NewSpeciesCmd(), NewConfigCmd())

	return cmd
}

const rootCmdExample = `  # Calculate with the configured default fuel composition
  fluegas calculate --mass-flow 1.0 --target-o2 3.0

  # Specify the fuel composition on the command line
  fluegas calculate --mass-flow 1.0 --target-o2 3.0 --fuel CH4=0.95 --fuel N2=0.05

  # Enter the composition interactively
  fluegas calculate --interactive

  # List the supported species
  fluegas species

  # Write a default configuration file
  fluegas config init`
