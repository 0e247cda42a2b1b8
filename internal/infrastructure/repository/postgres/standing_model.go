package postgres

import (
	"database/sql"
	"time"
)

type clubSeasonTableModel struct {
	SeasonID       string         `db:"season_id"`
	ClubID         string         `db:"club_id"`
	GroupID        sql.NullString `db:"group_id"`
	Position       int            `db:"position"`
	Games          int            `db:"games"`
	Wins           int            `db:"wins"`
	Draws          int            `db:"draws"`
	Losses         int            `db:"losses"`
	GoalsFor       int            `db:"goals_for"`
	GoalsAgainst   int            `db:"goals_against"`
	GoalDifference int            `db:"goal_difference"`
	Points         int            `db:"points"`
	UpdatedAt      time.Time      `db:"updated_at"`
}
