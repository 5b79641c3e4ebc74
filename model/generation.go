package model

import "github.com/sheikhrachel/go-life/rules"

// NextGeneration advances the grid by one generation under rs
func NextGeneration(g *Grid, rs rules.RuleSet) {
	g.ComputeNext(rs)
	g.SwapAndClear()
}
