package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Grid is a fixed-size, double-buffered board of alive/dead cells.
// current is the authoritative generation; next is scratch space for the one being computed.
type Grid struct {
	rows    int
	cols    int
	current [][]bool
	next    [][]bool
}

func newCells(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return cells
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] rows=%d cols=%d", rows, cols)
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		current: newCells(rows, cols),
		next:    newCells(rows, cols),
	}, nil
}

// GetRows returns the number of rows
func (g *Grid) GetRows() int {
	return g.rows
}

// GetCols returns the number of columns
func (g *Grid) GetCols() int {
	return g.cols
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) checkBounds(op string, row, col int) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "[%s] (%d,%d) outside %dx%d grid", op, row, col, g.rows, g.cols)
	}
	return nil
}

// Get returns the state of a cell in the current generation
func (g *Grid) Get(row, col int) (bool, error) {
	if err := g.checkBounds("Get", row, col); err != nil {
		return false, err
	}
	return g.current[row][col], nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) error {
	if err := g.checkBounds("Set", row, col); err != nil {
		return err
	}
	g.current[row][col] = alive
	return nil
}

// Toggle flips a single cell
func (g *Grid) Toggle(row, col int) error {
	if err := g.checkBounds("Toggle", row, col); err != nil {
		return err
	}
	g.current[row][col] = !g.current[row][col]
	return nil
}

// Clear kills every cell in both buffers
func (g *Grid) Clear() {
	clearCells(g.current)
	clearCells(g.next)
}

func clearCells(cells [][]bool) {
	for _, row := range cells {
		clear(row)
	}
}

// Randomize sets each cell alive independently with probability density.
// A nil rng falls back to the package-level source.
func (g *Grid) Randomize(density float64, rng *rand.Rand) error {
	if !(density >= 0 && density <= 1) {
		return errors.Wrapf(ErrInvalidDensity, "[Randomize] density=%v", density)
	}
	sample := rand.Float64
	if rng != nil {
		sample = rng.Float64
	}
	// Float64 is in [0,1), so density 0 and 1 are exact.
	for r := range g.rows {
		for c := range g.cols {
			g.current[r][c] = sample() < density
		}
	}
	return nil
}

// CountLiveNeighbors counts live Moore neighbors in the current generation.
// Positions off the grid count as dead.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	count := 0

	minR := max(0, row-1)
	maxR := min(g.rows-1, row+1)
	minC := max(0, col-1)
	maxC := min(g.cols-1, col+1)

	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			if r == row && c == col {
				continue
			}
			if g.current[r][c] {
				count++
			}
		}
	}

	return count
}

// ComputeNext writes the successor of every current cell into the next buffer.
// It reads only current, so the result never depends on cells already written.
func (g *Grid) ComputeNext(rs rules.RuleSet) {
	for r := range g.rows {
		for c := range g.cols {
			g.next[r][c] = rs.Apply(g.current[r][c], g.CountLiveNeighbors(r, c))
		}
	}
}

// SwapAndClear promotes next to current and resets the old current for reuse as next
func (g *Grid) SwapAndClear() {
	g.current, g.next = g.next, g.current
	clearCells(g.next)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, row := range g.current {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}

// Snapshot copies the current generation into an immutable value
func (g *Grid) Snapshot() Snapshot {
	cells := make([]bool, 0, g.rows*g.cols)
	for _, row := range g.current {
		cells = append(cells, row...)
	}
	return Snapshot{rows: g.rows, cols: g.cols, cells: cells}
}
