package rules

/*
Conway returns the rule set of Conway's Game of Life.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3, i.e. B3/S23.
*/
func Conway() RuleSet {
	return RuleSet{
		Survive: NewCounts(2, 3),
		Birth:   NewCounts(3),
	}
}

// HighLife returns the B36/S23 variant, which has a self-replicating pattern
func HighLife() RuleSet {
	return RuleSet{
		Survive: NewCounts(2, 3),
		Birth:   NewCounts(3, 6),
	}
}
