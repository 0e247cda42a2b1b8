package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID          string         `db:"id"`
	SeasonID    string         `db:"season_id"`
	GroupID     sql.NullString `db:"group_id"`
	HomeClubID  string         `db:"home_club_id"`
	AwayClubID  string         `db:"away_club_id"`
	KickoffAt   time.Time      `db:"kickoff_at"`
	Status      string         `db:"status"`
	HomeScore   sql.NullInt64  `db:"home_score"`
	AwayScore   sql.NullInt64  `db:"away_score"`
	HomeScoreHT sql.NullInt64  `db:"home_score_ht"`
	AwayScoreHT sql.NullInt64  `db:"away_score_ht"`
	Round       int            `db:"round"`
	StadiumID   sql.NullString `db:"stadium_id"`
	Stadium     string         `db:"stadium"`
	RefereeID   sql.NullString `db:"referee_id"`
	Attendance  sql.NullInt64  `db:"attendance"`
	Description string         `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type goalTableModel struct {
	ID          string         `db:"id"`
	MatchID     string         `db:"match_id"`
	ClubID      string         `db:"club_id"`
	ScorerID    string         `db:"scorer_id"`
	AssistID    sql.NullString `db:"assist_id"`
	Minute      int            `db:"minute"`
	GoalType    string         `db:"goal_type"`
	Description string         `db:"description"`
}

type cardTableModel struct {
	ID       string `db:"id"`
	MatchID  string `db:"match_id"`
	ClubID   string `db:"club_id"`
	PlayerID string `db:"player_id"`
	CardType string `db:"card_type"`
	Minute   int    `db:"minute"`
	Reason   string `db:"reason"`
}

type substitutionTableModel struct {
	ID          string `db:"id"`
	MatchID     string `db:"match_id"`
	ClubID      string `db:"club_id"`
	PlayerOutID string `db:"player_out_id"`
	PlayerInID  string `db:"player_in_id"`
	Minute      int    `db:"minute"`
}

type assistTableModel struct {
	ID       string `db:"id"`
	MatchID  string `db:"match_id"`
	ClubID   string `db:"club_id"`
	PlayerID string `db:"player_id"`
	Minute   int    `db:"minute"`
}
