package model

// TableStats aggregates play activity across the process lifetime.
type TableStats struct {
	TotalRolls    int
	TotalSaves    int
	GamesFinished int

	TotalPoints  int     // sum of final grand totals
	BestScore    int     // highest final grand total seen
	AverageScore float64 // TotalPoints / GamesFinished
}
