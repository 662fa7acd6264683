package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the terminal styles of one invocation. With color off every
// style renders text unchanged.
type styles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{heading: plain, label: plain, dim: plain}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:   r.NewStyle().Foreground(lipgloss.Color("10")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (s styles) writeHeading(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, s.heading.Render(fmt.Sprintf(format, args...)))
}

// writeLines prints one item per line, indented.
func writeLines[T fmt.Stringer](w io.Writer, items []T) {
	for _, it := range items {
		fmt.Fprintf(w, "  %s\n", it)
	}
}

// writeTally prints each distinct item once, sorted by cmp, with its count
// when it repeats.
func writeTally[T interface {
	comparable
	fmt.Stringer
}](w io.Writer, s styles, items []T, cmp func(a, b T) int) {
	counts := make(map[T]int, len(items))
	var distinct []T
	for _, it := range items {
		if counts[it] == 0 {
			distinct = append(distinct, it)
		}
		counts[it]++
	}
	sort.SliceStable(distinct, func(i, j int) bool { return cmp(distinct[i], distinct[j]) < 0 })
	for _, it := range distinct {
		if n := counts[it]; n > 1 {
			fmt.Fprintf(w, "  %s %s\n", s.label.Render(it.String()), s.dim.Render(fmt.Sprintf("×%d", n)))
		} else {
			fmt.Fprintf(w, "  %s\n", s.label.Render(it.String()))
		}
	}
}
