package tui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kingrea/classboard/internal/schedule"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	buttonFocusStyle = buttonStyle.
				BorderForeground(lipgloss.Color("#5B8DEF")).
				Bold(true)
	axisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	logBodyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1)
)

// yearBandColors tint the layout diagram background per year group, in
// the order the year groups first appear across the class list.
var yearBandColors = []lipgloss.Color{"#4A2D2D", "#2D2D4A", "#2D4A2D"}

const diagramMarker = "●"

// View renders the whole dashboard from the current board state.
func (a *App) View() string {
	report := a.board.Check()
	sections := []string{
		titleStyle.Render("⬡ CLASS SCHEDULING DASHBOARD"),
		sectionStyle.Render("Click a class unit to cycle through teachers"),
		a.renderButtonGrid(),
		"",
		sectionStyle.Render("Class layout"),
		a.renderDiagram(),
		"",
		sectionStyle.Render("Validation rules"),
		renderRules(report),
	}
	if breakdown := renderBreakdown(report); breakdown != "" {
		sections = append(sections, "", sectionStyle.Render("Teachers with invalid class counts"), breakdown)
	}
	sections = append(sections, "", sectionStyle.Render("Legend"), renderLegend(a.board.Ring()))
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	sections = append(sections,
		footerStyle.Render(a.statusMsg),
		hintStyle.Render(a.help.View(a.keys)),
	)
	return strings.Join(sections, "\n")
}

// renderButtonGrid draws the two button rows, Macro above Micro, with
// the cursor's button highlighted.
func (a *App) renderButtonGrid() string {
	rows := make([]string, 0, len(unitRows))
	for rowIdx, unit := range unitRows {
		buttons := make([]string, 0, len(a.board.Classes()))
		for colIdx, cls := range a.board.Classes() {
			label := fmt.Sprintf("%s %s (%s)", cls, unit, a.board.Teacher(cls, unit).Name)
			style := buttonStyle
			if rowIdx == a.cursorRow && colIdx == a.cursorCol {
				style = buttonFocusStyle
			}
			buttons = append(buttons, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}
	return strings.Join(rows, "\n")
}

// slotColor returns the marker color the diagram uses for one slot. It
// reads straight from the board, so the diagram can never lag a toggle.
func (a *App) slotColor(class string, unit schedule.Unit) lipgloss.Color {
	return lipgloss.Color(a.board.Teacher(class, unit).Color)
}

// bandColor returns the background tint for a class's year group. Bands
// are assigned in the order year groups first appear in the class list.
func (a *App) bandColor(class string) lipgloss.Color {
	order := map[string]int{}
	for _, cls := range a.board.Classes() {
		group := schedule.YearGroup(cls)
		if _, ok := order[group]; !ok {
			order[group] = len(order)
		}
	}
	return yearBandColors[order[schedule.YearGroup(class)]%len(yearBandColors)]
}

// renderDiagram projects the board into the two-row layout diagram: one
// column per class, a colored marker per slot, year-group bands behind.
func (a *App) renderDiagram() string {
	colWidth := 0
	for _, cls := range a.board.Classes() {
		if len(cls)+2 > colWidth {
			colWidth = len(cls) + 2
		}
	}
	lines := make([]string, 0, len(unitRows)+1)
	for _, unit := range unitRows {
		cells := make([]string, 0, len(a.board.Classes())+1)
		cells = append(cells, axisStyle.Width(6).Render(unit.String()))
		for _, cls := range a.board.Classes() {
			cell := lipgloss.NewStyle().
				Background(a.bandColor(cls)).
				Foreground(a.slotColor(cls, unit)).
				Width(colWidth).
				Align(lipgloss.Center).
				Render(diagramMarker)
			cells = append(cells, cell)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	axis := make([]string, 0, len(a.board.Classes())+1)
	axis = append(axis, axisStyle.Width(6).Render(""))
	for _, cls := range a.board.Classes() {
		axis = append(axis, axisStyle.Width(colWidth).Align(lipgloss.Center).Render(cls))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, axis...))
	return strings.Join(lines, "\n")
}

// renderRules lists the four rule results with pass/fail markers.
func renderRules(report schedule.Report) string {
	lines := make([]string, 0, len(report.Results))
	for _, result := range report.Results {
		icon := failStyle.Render("✘")
		if result.Passed {
			icon = passStyle.Render("✔")
		}
		lines = append(lines, fmt.Sprintf("%s %s", icon, result.Description))
	}
	return strings.Join(lines, "\n")
}

// renderBreakdown details the load-balance violations, if any.
func renderBreakdown(report schedule.Report) string {
	if len(report.Imbalanced) == 0 {
		return ""
	}
	names := make([]string, 0, len(report.Imbalanced))
	for name := range report.Imbalanced {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s %s has %d classes (must have 5 or 6)",
			failStyle.Render("✘"), name, report.Imbalanced[name]))
	}
	return strings.Join(lines, "\n")
}

// renderLegend shows each ring entry's color swatch and name.
func renderLegend(ring []schedule.Teacher) string {
	entries := make([]string, 0, len(ring))
	for _, t := range ring {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color)).Render("■")
		entries = append(entries, fmt.Sprintf("%s %s", swatch, t.Name))
	}
	return strings.Join(entries, "   ")
}

// renderLogPanel boxes the most recent journal lines.
func (a *App) renderLogPanel() string {
	lines := a.logbook.Tail(6)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	head := sectionStyle.Render(fmt.Sprintf("LOG · %s", fileName))
	body := logBodyStyle.Render(strings.Join(lines, "\n"))
	return panelStyle.Render(fmt.Sprintf("%s\n%s", head, body))
}
