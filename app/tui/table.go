package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// table renders rows under a header with columns sized to their widest cell.
type table struct {
	headers  []string
	rows     [][]string
	selected int
}

func (t table) View(styles Styles) string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	// lipgloss widths include the horizontal padding
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	for i, h := range t.headers {
		sb.WriteString(styles.Header.Width(widths[i]).Render(h))
	}
	sb.WriteString("\n")

	total := 0
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")

	if len(t.rows) == 0 {
		sb.WriteString(styles.Muted.Render("  no products"))
		sb.WriteString("\n")
		return sb.String()
	}

	for r, row := range t.rows {
		cell := styles.Cell
		if r == t.selected {
			cell = styles.Selected
		}
		for i, c := range row {
			if i < len(widths) {
				sb.WriteString(cell.Width(widths[i]).Render(c))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
