// Package render formats break estimates for the terminal.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexshd/tameshiwari"
)

// NoBonesPlaceholder is printed when the force stays below every threshold.
const NoBonesPlaceholder = "None (below typical bone breaking thresholds)"

// Theme bundles the lipgloss styles used by the renderers.
type Theme struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Note   lipgloss.Style
	Warn   lipgloss.Style
	Border lipgloss.Style
}

// DefaultTheme returns the standard terminal styling.
func DefaultTheme() Theme {
	return Theme{
		Title:  lipgloss.NewStyle().Bold(true),
		Label:  lipgloss.NewStyle().Faint(true),
		Value:  lipgloss.NewStyle().Bold(true),
		Note:   lipgloss.NewStyle().Faint(true).Italic(true),
		Warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Border: lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1),
	}
}

// BoneList joins correlated bones weakest-first, or the placeholder.
func BoneList(bones []string) string {
	if len(bones) == 0 {
		return NoBonesPlaceholder
	}
	return strings.Join(bones, ", ")
}

// Result renders one BreakResult as a bordered card.
func (th Theme) Result(res tameshiwari.BreakResult, cfg tameshiwari.Config) string {
	var b strings.Builder

	b.WriteString(th.Title.Render(fmt.Sprintf("%s × %d (%s)", res.Material, res.Layers, describeConfig(cfg))))
	b.WriteString("\n\n")
	b.WriteString(th.Label.Render("Force:    "))
	b.WriteString(th.Value.Render(fmt.Sprintf("%.1f lbf", res.Force)))
	b.WriteString("\n")
	b.WriteString(th.Label.Render("Pressure: "))
	b.WriteString(th.Value.Render(fmt.Sprintf("%.1f PSI", res.Pressure)))
	b.WriteString("\n")
	b.WriteString(th.Label.Render("Bones:    "))
	b.WriteString(BoneList(res.Bones))

	if res.Advisory != nil {
		b.WriteString("\n\n")
		b.WriteString(th.Warn.Render("⚠ " + res.Advisory.String()))
	}

	b.WriteString("\n\n")
	b.WriteString(th.Note.Render("Bone data are approximations for healthy adults; not medical advice."))

	return th.Border.Render(b.String())
}

// Matrix renders a layer sweep as a table.
func (th Theme) Matrix(material string, cfg tameshiwari.Config, results []tameshiwari.BreakResult) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("63"))).
		Headers("Layers", "Force (lbf)", "PSI", "Correlated Bones")

	for _, res := range results {
		tbl.Row(
			strconv.Itoa(res.Layers),
			fmt.Sprintf("%.1f", res.Force),
			fmt.Sprintf("%.1f", res.Pressure),
			BoneList(res.Bones),
		)
	}

	title := th.Title.Render(fmt.Sprintf("Matrix for %s (%s)", material, describeConfig(cfg)))
	return title + "\n" + tbl.Render()
}

// Materials renders the resolved catalog.
func (th Theme) Materials(cat tameshiwari.Catalog) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("63"))).
		Headers("Material", "F1 (lbf)", "Mass (kg)", "Class")

	for _, m := range cat.Materials() {
		tbl.Row(m.Name, fmt.Sprintf("%.0f", m.SingleLayerForce), fmt.Sprintf("%.2f", m.Mass), m.Class.String())
	}

	return th.Title.Render("Materials") + "\n" + tbl.Render()
}

func describeConfig(cfg tameshiwari.Config) string {
	if cfg.Pegged {
		return fmt.Sprintf("pegged, spacing %.2f mm", cfg.SpacingMM)
	}
	return "unpegged"
}
