package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

const ensureClubSeasonSuffix = `ON CONFLICT (season_id, club_id) DO UPDATE
SET group_id = COALESCE(EXCLUDED.group_id, club_seasons.group_id)`

// StandingRepository keeps club-season memberships and their aggregates in
// club_seasons. Rows come back in join order through joined_seq.
type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListBySeason(ctx context.Context, seasonID string) ([]standing.Record, error) {
	return r.list(ctx, "list standings by season", qb.Eq("season_id", seasonID), "joined_seq")
}

func (r *StandingRepository) ListByClub(ctx context.Context, clubID string) ([]standing.Record, error) {
	return r.list(ctx, "list standings by club", qb.Eq("club_id", clubID), "updated_at DESC", "season_id")
}

func (r *StandingRepository) list(ctx context.Context, op string, where qb.Condition, order ...string) ([]standing.Record, error) {
	query, args, err := qb.Select(qb.Columns(clubSeasonTableModel{})...).From("club_seasons").
		Where(where).
		OrderBy(order...).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []clubSeasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, op)
	}

	out := make([]standing.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *StandingRepository) Get(ctx context.Context, seasonID, clubID string) (standing.Record, bool, error) {
	query, args, err := qb.Select(qb.Columns(clubSeasonTableModel{})...).From("club_seasons").
		Where(qb.Eq("season_id", seasonID), qb.Eq("club_id", clubID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return standing.Record{}, false, fmt.Errorf("build get standing query: %w", err)
	}

	var row clubSeasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return standing.Record{}, false, nil
		}
		return standing.Record{}, false, crerr.Wrapf(err, "get standing %s/%s", seasonID, clubID)
	}
	return row.toDomain(), true, nil
}

func (r *StandingRepository) Ensure(ctx context.Context, records []standing.Record) error {
	if len(records) == 0 {
		return nil
	}

	builder := qb.InsertInto("club_seasons").Columns("season_id", "club_id", "group_id")
	for _, rec := range records {
		builder.Values(rec.SeasonID, rec.ClubID, nullString(rec.GroupID))
	}
	query, args, err := builder.Suffix(ensureClubSeasonSuffix).ToSQL()
	if err != nil {
		return fmt.Errorf("build ensure standings query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "ensure %d standings", len(records))
	}
	return nil
}

func (r *StandingRepository) Delete(ctx context.Context, seasonID, clubID string) error {
	return r.delete(ctx, "delete standing", qb.Eq("season_id", seasonID), qb.Eq("club_id", clubID))
}

func (r *StandingRepository) DeleteByClub(ctx context.Context, clubID string) error {
	return r.delete(ctx, "delete standings by club", qb.Eq("club_id", clubID))
}

func (r *StandingRepository) DeleteBySeason(ctx context.Context, seasonID string) error {
	return r.delete(ctx, "delete standings by season", qb.Eq("season_id", seasonID))
}

func (r *StandingRepository) delete(ctx context.Context, op string, where ...qb.Condition) error {
	query, args, err := qb.DeleteFrom("club_seasons").Where(where...).ToSQL()
	if err != nil {
		return fmt.Errorf("build %s query: %w", op, err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "%s", op)
	}
	return nil
}

// upsertStandings writes full aggregate rows. Rows that joined the season
// since the caller read it are left alone.
func upsertStandings(ctx context.Context, tx *sqlx.Tx, records []standing.Record) error {
	if len(records) == 0 {
		return nil
	}

	columns := qb.Columns(clubSeasonTableModel{})
	builder := qb.InsertInto("club_seasons").Columns(columns...)
	for _, rec := range records {
		row := clubSeasonFromDomain(rec)
		builder.Values(
			row.SeasonID, row.ClubID, row.GroupID, row.Position,
			row.Games, row.Wins, row.Draws, row.Losses,
			row.GoalsFor, row.GoalsAgainst, row.GoalDifference, row.Points,
			row.UpdatedAt,
		)
	}
	query, args, err := builder.
		Suffix(upsertSuffix([]string{"season_id", "club_id"}, columns)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert standings query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "upsert %d standings", len(records))
	}
	return nil
}

func clubSeasonFromDomain(rec standing.Record) clubSeasonTableModel {
	return clubSeasonTableModel{
		SeasonID:       rec.SeasonID,
		ClubID:         rec.ClubID,
		GroupID:        nullString(rec.GroupID),
		Position:       rec.Position,
		Games:          rec.Games,
		Wins:           rec.Wins,
		Draws:          rec.Draws,
		Losses:         rec.Losses,
		GoalsFor:       rec.GoalsFor,
		GoalsAgainst:   rec.GoalsAgainst,
		GoalDifference: rec.GoalDifference,
		Points:         rec.Points,
		UpdatedAt:      rec.UpdatedAt,
	}
}

func (row clubSeasonTableModel) toDomain() standing.Record {
	return standing.Record{
		SeasonID:       row.SeasonID,
		ClubID:         row.ClubID,
		GroupID:        row.GroupID.String,
		Position:       row.Position,
		Games:          row.Games,
		Wins:           row.Wins,
		Draws:          row.Draws,
		Losses:         row.Losses,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
		UpdatedAt:      row.UpdatedAt,
	}
}
