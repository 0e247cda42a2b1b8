package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID          string         `db:"id"`
	ClubID      string         `db:"club_id"`
	SeasonID    sql.NullString `db:"season_id"`
	FirstName   string         `db:"first_name"`
	LastName    string         `db:"last_name"`
	DateOfBirth sql.NullTime   `db:"date_of_birth"`
	Position    string         `db:"position"`
	Number      int            `db:"number"`
	Nationality string         `db:"nationality"`
	HeightCM    int            `db:"height_cm"`
	WeightKG    int            `db:"weight_kg"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type playerSeasonStatTableModel struct {
	SeasonID         string    `db:"season_id"`
	PlayerID         string    `db:"player_id"`
	MatchesPlayed    int       `db:"matches_played"`
	MatchesStarted   int       `db:"matches_started"`
	MinutesPlayed    int       `db:"minutes_played"`
	Goals            int       `db:"goals"`
	Assists          int       `db:"assists"`
	AssistsFromGoals int       `db:"assists_from_goals"`
	AssistsRecorded  int       `db:"assists_recorded"`
	YellowCards      int       `db:"yellow_cards"`
	RedCards         int       `db:"red_cards"`
	CleanSheets      int       `db:"clean_sheets"`
	UpdatedAt        time.Time `db:"updated_at"`
}
