package model

import (
	"crypto/md5"
	"fmt"
	"slices"
	"strings"
)

const (
	snapshotAlive = 'O'
	snapshotDead  = '.'
)

// Snapshot is a read-only copy of one generation, safe to keep after the grid moves on
type Snapshot struct {
	rows  int
	cols  int
	cells []bool
}

// GetRows returns the number of rows
func (s Snapshot) GetRows() int { return s.rows }

// GetCols returns the number of columns
func (s Snapshot) GetCols() int { return s.cols }

// Alive reports whether a cell is alive; coordinates off the grid are dead
func (s Snapshot) Alive(row, col int) bool {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return false
	}
	return s.cells[row*s.cols+col]
}

// Population returns the number of living cells
func (s Snapshot) Population() (count int) {
	for _, alive := range s.cells {
		if alive {
			count++
		}
	}
	return
}

// Equal reports whether two snapshots have the same size and cells
func (s Snapshot) Equal(other Snapshot) bool {
	return s.rows == other.rows && s.cols == other.cols && slices.Equal(s.cells, other.cells)
}

// Hash returns an MD5 hash of the cell states
func (s Snapshot) Hash() string {
	h := md5.New()
	buf := make([]byte, len(s.cells))
	for i, alive := range s.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders one line per row, 'O' for alive and '.' for dead
func (s Snapshot) String() string {
	var b strings.Builder
	b.Grow(s.rows * (s.cols + 1))
	for r := range s.rows {
		for c := range s.cols {
			if s.cells[r*s.cols+c] {
				b.WriteByte(snapshotAlive)
			} else {
				b.WriteByte(snapshotDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
