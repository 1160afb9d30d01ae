package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tardigrada777/copec-cspy-book/maze"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim       = lipgloss.NewStyle().Foreground(colorDim)
	styleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber    = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarning   = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconOK    = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarn  = lipgloss.NewStyle().Foreground(colorYellow)
	styleHighlight = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// Maze cell styles, keyed by cell kind.
var cellStyles = map[maze.Cell]lipgloss.Style{
	maze.Empty:   lipgloss.NewStyle().Foreground(colorDim),
	maze.Blocked: lipgloss.NewStyle().Foreground(colorGray),
	maze.Start:   lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
	maze.Goal:    lipgloss.NewStyle().Bold(true).Foreground(colorRed),
	maze.Path:    lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
}

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconOK.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarn.Render(iconWarning)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

// printKeyValue prints a labelled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+styleValue.Render(value))
}

// printFile prints an output file line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

// renderMaze draws m one row per line, colouring each cell by kind.
func renderMaze(m *maze.Maze) string {
	var sb strings.Builder
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Columns(); c++ {
			cell := m.At(maze.Location{Row: r, Column: c})
			sb.WriteString(cellStyles[cell].Render(cell.String()))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// renderPath joins the states of a path with arrows.
func renderPath[T any](path []T) string {
	parts := make([]string, len(path))
	for i, s := range path {
		parts[i] = styleValue.Render(fmt.Sprint(s))
	}
	return strings.Join(parts, " "+styleDim.Render(iconArrow)+" ")
}
