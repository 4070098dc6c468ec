package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SpreadSheets600/pomotroid/internal/application"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Intensity ramp for heatmap cells, coldest to hottest
	heatStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("29")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	}
)

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// renderHeatmap draws the 7x24 matrix as one row per weekday, cells shaded
// by count relative to the busiest cell.
func renderHeatmap(heatmap application.Heatmap) string {
	max := 0
	for _, row := range heatmap {
		for _, count := range row {
			if count > max {
				max = count
			}
		}
	}

	var b strings.Builder

	b.WriteString(axisStyle.Render("     0  2  4  6  8  10 12 14 16 18 20 22"))
	b.WriteString("\n")

	for day := 0; day < 7; day++ {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%s  ", weekdayLabels[day])))
		for hour := 0; hour < 24; hour++ {
			b.WriteString(heatCell(heatmap[day][hour], max))
			if hour%2 == 1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	if max > 0 {
		b.WriteString(axisStyle.Render(fmt.Sprintf("busiest cell: %d sessions", max)))
		b.WriteString("\n")
	}

	return b.String()
}

// heatCell shades one cell by its count relative to the busiest cell.
func heatCell(count, max int) string {
	if count == 0 {
		return heatStyles[0].Render("·")
	}

	level := len(heatStyles) - 1
	if max > 1 {
		level = 1 + (count-1)*(len(heatStyles)-2)/(max-1)
	}
	return heatStyles[level].Render("■")
}
