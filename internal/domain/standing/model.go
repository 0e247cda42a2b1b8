package standing

import "time"

const (
	PointsForWin  = 3
	PointsForDraw = 1
)

// Record is the table row of one club in one season. A record exists for every
// club associated with the season and for every club that played a counted
// match in it.
type Record struct {
	SeasonID       string
	ClubID         string
	GroupID        string
	Position       int
	Games          int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	UpdatedAt      time.Time
}

// Reset zeroes the aggregates, keeping identity and group membership.
func (r Record) Reset() Record {
	return Record{
		SeasonID: r.SeasonID,
		ClubID:   r.ClubID,
		GroupID:  r.GroupID,
	}
}

// Table is the ranked standings of one partition (a group, or the whole
// season when it is not grouped).
type Table struct {
	GroupID string
	Rows    []Record
}
