package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/trace"
	"github.com/katalvlaran/stepviz/visualizer"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleFailure = lipgloss.NewStyle().Foreground(colorRed)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// catalogTable renders the visualizer catalog as a bordered table.
func catalogTable(entries []visualizer.Descriptor) string {
	rows := make([][]string, 0, len(entries))
	for _, d := range entries {
		rows = append(rows, []string{d.Name, string(d.Category), d.Title})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Category", "Title").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return base.Inherit(styleHeader)
			case col == 0:
				return base.Foreground(colorCyan)
			default:
				return base
			}
		})

	return t.Render()
}

// stepPrinter writes one colored line per step.
type stepPrinter struct {
	w       io.Writer
	palette config.Palette
}

func (p stepPrinter) print(step trace.Step) {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.palette.Color(step.Event)))
	line := style.Render(fmt.Sprintf("%4d  %-9s %s", step.Seq, step.Event, step.Message))
	if len(step.Focus) > 0 {
		line += " " + styleDim.Render(focusString(step.Focus))
	}
	fmt.Fprintln(p.w, line)
}

func focusString(focus []int) string {
	parts := make([]string, len(focus))
	for i, f := range focus {
		parts[i] = fmt.Sprint(f)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func outcomeStyle(o trace.Outcome) lipgloss.Style {
	switch o {
	case trace.OutcomeSuccess:
		return styleSuccess
	case trace.OutcomeCancelled:
		return styleDim
	default:
		return styleFailure
	}
}
