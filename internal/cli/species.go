package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/combustkit/fluegas/internal/combustion"
)

// NewSpeciesCmd creates the "species" subcommand, which lists the closed
// species set with molecular weights and combustion stoichiometry.
func NewSpeciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "species",
		Short: "List supported species and their reaction coefficients",
		Long: `Species lists every gas species the calculator knows, with its
molecular weight and, for combustible species, the moles of O2 consumed
and of each product formed per mole burned.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderSpeciesTable(cmd)
		},
	}
}

// renderSpeciesTable writes the species table to the command output.
func renderSpeciesTable(cmd *cobra.Command) error {
	all := combustion.AllSpecies()
	rows := make([]table.Row, len(all))
	for i, s := range all {
		row := table.Row{
			s.String(),
			fmt.Sprintf("%.3f", s.MolecularWeight()),
			"-", "-", "-", "-",
		}
		if r, combustible := combustion.ReactionFor(s); combustible {
			row[2] = fmt.Sprintf("%.1f", r.O2Consumed)
			row[3] = fmt.Sprintf("%.0f", r.CO2Produced)
			row[4] = fmt.Sprintf("%.0f", r.H2OProduced)
			row[5] = fmt.Sprintf("%.0f", r.SO2Produced)
		}
		rows[i] = row
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Species", Width: 8},
			{Title: "MW (kg/kmol)", Width: 13},
			{Title: "O2", Width: 5},
			{Title: "CO2", Width: 5},
			{Title: "H2O", Width: 5},
			{Title: "SO2", Width: 5},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	s := table.DefaultStyles()
	s.Header = tableHeaderStyle
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	cmd.Println(t.View())
	return nil
}
