package playerstat

import "time"

// MinutesPerMatch is credited for every counted match of the player's club.
const MinutesPerMatch = 90

// SeasonRecord is the statistics row of one player in one season.
//
// Assists are tracked from two sources: the assist field of a goal and the
// standalone assist events. Both are kept apart and summed into Assists.
type SeasonRecord struct {
	SeasonID         string
	PlayerID         string
	MatchesPlayed    int
	MatchesStarted   int
	MinutesPlayed    int
	Goals            int
	Assists          int
	AssistsFromGoals int
	AssistsRecorded  int
	YellowCards      int
	RedCards         int
	CleanSheets      int
	UpdatedAt        time.Time
}

func (r SeasonRecord) Reset() SeasonRecord {
	return SeasonRecord{SeasonID: r.SeasonID, PlayerID: r.PlayerID}
}
