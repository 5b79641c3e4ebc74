package rules

import "strings"

// MaxNeighbors is the size of a Moore neighborhood
const MaxNeighbors = 8

// Counts is a set of neighbor counts in [0, MaxNeighbors]
type Counts [MaxNeighbors + 1]bool

// NewCounts builds a set from the given values, ignoring anything out of range
func NewCounts(values ...int) Counts {
	var c Counts
	for _, v := range values {
		if v >= 0 && v <= MaxNeighbors {
			c[v] = true
		}
	}
	return c
}

// Contains reports whether n is in the set
func (c Counts) Contains(n int) bool {
	return n >= 0 && n <= MaxNeighbors && c[n]
}

// Values returns the members in ascending order
func (c Counts) Values() []int {
	var out []int
	for n, ok := range c {
		if ok {
			out = append(out, n)
		}
	}
	return out
}

// digits renders the set as a run of digits, e.g. "23"
func (c Counts) digits() string {
	var b strings.Builder
	for n, ok := range c {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// RuleSet holds the survive and birth predicates of a Life-like rule.
// Empty sets are valid: an empty Survive kills every live cell, an empty Birth never spawns one.
type RuleSet struct {
	Survive Counts
	Birth   Counts
}

/*
Apply returns the next state of a cell.

A live cell stays alive iff its neighbor count is in Survive;
a dead cell comes alive iff its neighbor count is in Birth.
*/
func (r RuleSet) Apply(alive bool, neighbors int) bool {
	if alive {
		return r.Survive.Contains(neighbors)
	}
	return r.Birth.Contains(neighbors)
}

// String renders the rule in B/S notation, e.g. "B3/S23"
func (r RuleSet) String() string {
	return "B" + r.Birth.digits() + "/S" + r.Survive.digits()
}
