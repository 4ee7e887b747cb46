package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#0078D7")
	muted  = lipgloss.Color("#808080")
	good   = lipgloss.Color("#98C379")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	nameStyle   = lipgloss.NewStyle().Width(16)
	stateStyle  = lipgloss.NewStyle().Width(7)
	onStyle     = stateStyle.Foreground(good).Bold(true)
	offStyle    = stateStyle.Foreground(muted)
	detailStyle = lipgloss.NewStyle().Foreground(muted).Italic(true)
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)
)

// renderStyled draws the status rows as a bordered table.
func renderStyled(rows [][3]string) string {
	lines := []string{
		headerStyle.Render(nameStyle.Render("Capability") + stateStyle.Render("State") + "Detail"),
	}
	for _, r := range rows {
		state := offStyle.Render(r[1])
		if r[1] == "on" {
			state = onStyle.Render(r[1])
		}
		detail := r[2]
		if detail != "-" {
			detail = detailStyle.Render(detail)
		}
		lines = append(lines, nameStyle.Render(r[0])+state+detail)
	}
	return boxStyle.Render(strings.Join(lines, "\n")) + "\n"
}
