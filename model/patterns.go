package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a rectangular stamp of cells, row-major
type Pattern struct {
	Name  string
	Cells [][]bool
}

// ParsePattern builds a pattern from rows of text where 'O' or '*' is alive
// and any other rune is dead
func ParsePattern(name string, rows ...string) Pattern {
	cells := make([][]bool, len(rows))
	for r, line := range rows {
		cells[r] = make([]bool, len(line))
		for c, ch := range line {
			cells[r][c] = ch == 'O' || ch == '*'
		}
	}
	return Pattern{Name: name, Cells: cells}
}

// Height returns the number of rows in the pattern
func (p Pattern) Height() int { return len(p.Cells) }

// Width returns the widest row in the pattern
func (p Pattern) Width() (w int) {
	for _, row := range p.Cells {
		w = max(w, len(row))
	}
	return
}

var (
	// Blinker is the period-2 horizontal oscillator
	Blinker = ParsePattern("blinker", "OOO")

	// Glider travels one cell diagonally every four generations
	Glider = ParsePattern("glider",
		".O.",
		"..O",
		"OOO",
	)

	// GliderGun is the Gosper glider gun, 9x36 cells
	GliderGun = ParsePattern("glider_gun",
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	)
)

var patternsByName = map[string]Pattern{
	Blinker.Name:   Blinker,
	Glider.Name:    Glider,
	GliderGun.Name: GliderGun,
}

// LookupPattern finds a built-in pattern by name, case-insensitively
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patternsByName[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Place stamps the pattern with its top-left corner at (row, col).
// The whole pattern must fit; otherwise the grid is left untouched.
func (g *Grid) Place(p Pattern, row, col int) error {
	h, w := p.Height(), p.Width()
	if h == 0 || w == 0 {
		return nil
	}
	if !g.inBounds(row, col) || !g.inBounds(row+h-1, col+w-1) {
		return errors.Wrapf(ErrOutOfBounds, "[Place] %s (%dx%d) at (%d,%d) does not fit %dx%d grid",
			p.Name, h, w, row, col, g.rows, g.cols)
	}
	for r, line := range p.Cells {
		for c, alive := range line {
			g.current[row+r][col+c] = alive
		}
	}
	return nil
}
