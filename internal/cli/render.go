package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/combustkit/fluegas/internal/combustion"
)

// Display thresholds: species below both are omitted from the table, as
// in the classic combustion report.
const (
	displayMinMolePercent = 0.01
	displayMinMassFlow    = 0.001
)

const summaryBoxWidth = 64

// Rendering styles.
var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true)
	valueStyle  = lipgloss.NewStyle().Bold(true)
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true)
)

// speciesRow is one line of the exhaust table.
type speciesRow struct {
	species     combustion.Species
	molePercent float64
	massFlow    float64
}

// exhaustRows returns the displayable exhaust species sorted by mole
// percent, largest first.
func exhaustRows(result *combustion.Result) []speciesRow {
	rows := make([]speciesRow, 0, len(result.Composition))
	for s, pct := range result.Composition {
		mass := result.MassFlows[s]
		if pct < displayMinMolePercent && mass < displayMinMassFlow {
			continue
		}
		rows = append(rows, speciesRow{species: s, molePercent: pct, massFlow: mass})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].molePercent != rows[j].molePercent {
			return rows[i].molePercent > rows[j].molePercent
		}
		return rows[i].species < rows[j].species
	})
	return rows
}

// renderTable writes the human-readable report: a summary box followed by
// the exhaust species table.
func renderTable(w io.Writer, params calculateParams, result *combustion.Result) error {
	p := message.NewPrinter(language.English)

	var content strings.Builder
	content.WriteString(headerStyle.Render("COMBUSTION RESULT"))
	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Fuel:    "))
	content.WriteString(valueStyle.Render(p.Sprintf("%.3f kg/s", params.massFlow)))
	content.WriteString(labelStyle.Render("    Air: "))
	content.WriteString(valueStyle.Render(p.Sprintf("%.3f kg/s", result.AirMassFlow)))
	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Exhaust: "))
	content.WriteString(valueStyle.Render(p.Sprintf("%.3f kg/s", result.TotalMassFlow)))
	content.WriteString(labelStyle.Render("    Target O2: "))
	content.WriteString(valueStyle.Render(p.Sprintf("%.2f %%", params.targetO2Percent)))

	fmt.Fprintln(w, boxStyle.Width(summaryBoxWidth).Render(content.String()))

	rows := exhaustRows(result)
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row{
			r.species.String(),
			p.Sprintf("%.2f", r.molePercent),
			p.Sprintf("%.4f", r.massFlow),
		}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Species", Width: 10},
			{Title: "Mole %", Width: 10},
			{Title: "Mass flow (kg/s)", Width: 18},
		}),
		table.WithRows(tableRows),
		table.WithHeight(len(tableRows)+1),
	)
	s := table.DefaultStyles()
	s.Header = tableHeaderStyle
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	fmt.Fprintln(w, t.View())
	return nil
}

// jsonResult is the machine-readable output shape of one calculation.
type jsonResult struct {
	RunID            string             `json:"run_id"`
	FuelMassFlow     float64            `json:"fuel_mass_flow_kg_s"`
	TargetO2Percent  float64            `json:"target_o2_percent"`
	Composition      map[string]float64 `json:"composition_mole_percent"`
	MassFlows        map[string]float64 `json:"mass_flows_kg_s"`
	TotalMassFlow    float64            `json:"total_mass_flow_kg_s"`
	AirMassFlow      float64            `json:"air_mass_flow_kg_s"`
	SolverIterations int                `json:"solver_iterations"`
}

// renderJSON writes the result as indented JSON with species formulas as
// keys.
func renderJSON(w io.Writer, runID string, params calculateParams, result *combustion.Result) error {
	out := jsonResult{
		RunID:            runID,
		FuelMassFlow:     params.massFlow,
		TargetO2Percent:  params.targetO2Percent,
		Composition:      speciesKeyed(result.Composition),
		MassFlows:        speciesKeyed(result.MassFlows),
		TotalMassFlow:    result.TotalMassFlow,
		AirMassFlow:      result.AirMassFlow,
		SolverIterations: result.SolverIterations,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// speciesKeyed converts a species-keyed map to a formula-keyed one for
// JSON output.
func speciesKeyed(m map[combustion.Species]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for s, v := range m {
		out[s.String()] = v
	}
	return out
}
