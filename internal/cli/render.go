package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"budgetly/internal/analytics"
	"budgetly/internal/models"
)

// Theme colors
var (
	ColorBorder    = lipgloss.Color("#3B3A37")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#878580")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	infoStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	successStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// Table is a bordered text table. The first column is left-aligned, the
// rest are right-aligned.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title in a rounded box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(48).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders t with box-drawing borders.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(" " + pad(h, widths[i], false) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle.Render(" " + pad(cell, widths[i], i > 0) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}
	rule("╰", "┴", "╯")

	return b.String()
}

// pad pads s to width display cells. Widths are measured in cells so the
// rupee sign and non-Latin scripts line up.
func pad(s string, width int, right bool) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// RenderProgressBar renders utilization as a bar, capped at full.
func RenderProgressBar(p analytics.Progress, width int) string {
	filled := int(p.DisplayPercent.Mul(decimalFromInt(width)).Div(decimalFromInt(100)).IntPart())
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	style := successStyle
	switch p.Band {
	case analytics.BandCaution:
		style = warnStyle
	case analytics.BandCritical:
		style = errorStyle
	}
	bar := style.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("[%s] %s%%", bar, p.Percent.StringFixed(1))
}

// RenderKeyValues renders aligned label/value pairs.
func RenderKeyValues(pairs [][2]string) string {
	labelWidth := 0
	for _, kv := range pairs {
		if w := lipgloss.Width(kv[0]); w > labelWidth {
			labelWidth = w
		}
	}
	var b strings.Builder
	for _, kv := range pairs {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(pad(kv[0], labelWidth, false)))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(kv[1]))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderNotifications renders localized notifications, one per line,
// colored by severity.
func RenderNotifications(notifications []models.Notification) string {
	if len(notifications) == 0 {
		return ""
	}
	var b strings.Builder
	for _, n := range notifications {
		style := infoStyle
		marker := "i"
		switch n.Severity {
		case models.SeverityWarning:
			style, marker = warnStyle, "!"
		case models.SeveritySuccess:
			style, marker = successStyle, "✓"
		}
		b.WriteString("  ")
		b.WriteString(style.Render(marker + " " + n.Message))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderError renders a failure line for stderr.
func RenderError(err error) string {
	return errorStyle.Render("  error: " + err.Error())
}
