package session

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/rpsfair/internal/moveset"
	"github.com/lox/rpsfair/internal/outcome"
)

// abbrevLen is how many runes of a move name the help table shows.
const abbrevLen = 3

func abbrev(name string) string {
	r := []rune(name)
	if len(r) > abbrevLen {
		r = r[:abbrevLen]
	}
	return string(r)
}

// HelpRows returns the help table as plain strings: a header row followed by
// one row per computer move, each cell read from the user's point of view.
func HelpRows(ms moveset.MoveSet) (header []string, rows [][]string) {
	n := ms.Len()
	header = make([]string, 0, n+1)
	header = append(header, "Move")
	for i := range n {
		header = append(header, abbrev(ms.Name(i)))
	}

	matrix := outcome.Matrix(n)
	rows = make([][]string, n)
	for r := range n {
		row := make([]string, 0, n+1)
		row = append(row, abbrev(ms.Name(r)))
		for c := range n {
			row = append(row, matrix[r][c].String())
		}
		rows[r] = row
	}
	return header, rows
}

// RenderHelp renders the outcome matrix for ms.
func RenderHelp(ms moveset.MoveSet, styles *Styles) string {
	header, rows := HelpRows(ms)

	t := table.New().
		Border(lipgloss.ASCIIBorder()).
		BorderStyle(styles.TableBorder).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return styles.TableHeader
			}
			return styles.TableCell
		})

	return t.String()
}
