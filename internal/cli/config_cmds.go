package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/combustkit/fluegas/internal/config"
)

// NewConfigCmd creates the "config" command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage fluegas configuration",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigValidateCmd())
	return cmd
}

// newConfigInitCmd creates the "config init" command, which writes the
// built-in defaults to the config path.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Initialize a configuration file with default values",
		Annotations: map[string]string{annotationSkipConfigLoad: "true"},
		Example: `  # Create the global configuration
  fluegas config init

  # Overwrite an existing file
  fluegas config init --force

  # Write to a custom location
  fluegas --config ./fluegas.yaml config init`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = config.DefaultPath()
			}
			if path == "" {
				return errors.New("cannot determine config path; pass --config")
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("cannot access config path %s: %w", path, err)
				}
			}

			if err := config.Default().Save(path); err != nil {
				return err
			}
			cmd.Printf("Wrote default configuration to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// newConfigValidateCmd creates the "config validate" command.
func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// appConfig was loaded by the root PersistentPreRunE; a load
			// failure would have aborted before reaching this command.
			if err := appConfig.Validate(); err != nil {
				return err
			}
			comp, err := appConfig.Composition()
			if err != nil {
				return err
			}
			cmd.Printf("Configuration valid: %d species in default composition\n", len(comp))
			return nil
		},
	}
}
