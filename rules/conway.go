package rules

const (
	// SurviveLow and SurviveHigh bound the neighbour count a live cell needs to stay alive
	SurviveLow  = 2
	SurviveHigh = 3
	// Birth is the exact neighbour count that brings a dead cell to life
	Birth = 3
)

/*
ApplyConwayRules returns whether a cell is alive in the next generation.

  - a live cell with 2 or 3 live neighbours survives, any other count kills it
  - a dead cell with exactly 3 live neighbours is born, otherwise it stays dead
*/
func ApplyConwayRules(neighbours int, alive bool) bool {
	if alive {
		return neighbours >= SurviveLow && neighbours <= SurviveHigh
	}
	return neighbours == Birth
}
