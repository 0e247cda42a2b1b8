package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/playerstat"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

type PlayerStatRepository struct {
	db *sqlx.DB
}

func NewPlayerStatRepository(db *sqlx.DB) *PlayerStatRepository {
	return &PlayerStatRepository{db: db}
}

func (r *PlayerStatRepository) ListBySeason(ctx context.Context, seasonID string) ([]playerstat.SeasonRecord, error) {
	return r.list(ctx, "list player stats by season", qb.Eq("season_id", seasonID))
}

func (r *PlayerStatRepository) ListByPlayer(ctx context.Context, playerID string) ([]playerstat.SeasonRecord, error) {
	return r.list(ctx, "list player stats by player", qb.Eq("player_id", playerID))
}

func (r *PlayerStatRepository) list(ctx context.Context, op string, where qb.Condition) ([]playerstat.SeasonRecord, error) {
	query, args, err := qb.Select(qb.Columns(playerSeasonStatTableModel{})...).From("player_season_stats").
		Where(where).
		OrderBy("created_seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []playerSeasonStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, op)
	}

	out := make([]playerstat.SeasonRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerStatRepository) Get(ctx context.Context, seasonID, playerID string) (playerstat.SeasonRecord, bool, error) {
	query, args, err := qb.Select(qb.Columns(playerSeasonStatTableModel{})...).From("player_season_stats").
		Where(qb.Eq("season_id", seasonID), qb.Eq("player_id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return playerstat.SeasonRecord{}, false, fmt.Errorf("build get player stats query: %w", err)
	}

	var row playerSeasonStatTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return playerstat.SeasonRecord{}, false, nil
		}
		return playerstat.SeasonRecord{}, false, crerr.Wrapf(err, "get player stats %s/%s", seasonID, playerID)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerStatRepository) Upsert(ctx context.Context, records []playerstat.SeasonRecord) error {
	return inTx(ctx, r.db, "upsert player stats", func(tx *sqlx.Tx) error {
		return upsertPlayerStats(ctx, tx, records)
	})
}

func (r *PlayerStatRepository) DeleteByPlayer(ctx context.Context, playerID string) error {
	return r.delete(ctx, "delete player stats by player", qb.Eq("player_id", playerID))
}

func (r *PlayerStatRepository) DeleteBySeason(ctx context.Context, seasonID string) error {
	return r.delete(ctx, "delete player stats by season", qb.Eq("season_id", seasonID))
}

func (r *PlayerStatRepository) delete(ctx context.Context, op string, where qb.Condition) error {
	query, args, err := qb.DeleteFrom("player_season_stats").Where(where).ToSQL()
	if err != nil {
		return fmt.Errorf("build %s query: %w", op, err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "%s", op)
	}
	return nil
}

func upsertPlayerStats(ctx context.Context, tx *sqlx.Tx, records []playerstat.SeasonRecord) error {
	if len(records) == 0 {
		return nil
	}

	columns := qb.Columns(playerSeasonStatTableModel{})
	builder := qb.InsertInto("player_season_stats").Columns(columns...)
	for _, rec := range records {
		row := playerSeasonStatFromDomain(rec)
		builder.Values(
			row.SeasonID, row.PlayerID,
			row.MatchesPlayed, row.MatchesStarted, row.MinutesPlayed,
			row.Goals, row.Assists, row.AssistsFromGoals, row.AssistsRecorded,
			row.YellowCards, row.RedCards, row.CleanSheets,
			row.UpdatedAt,
		)
	}
	query, args, err := builder.
		Suffix(upsertSuffix([]string{"season_id", "player_id"}, columns)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert player stats query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "upsert %d player stats", len(records))
	}
	return nil
}

func playerSeasonStatFromDomain(rec playerstat.SeasonRecord) playerSeasonStatTableModel {
	return playerSeasonStatTableModel{
		SeasonID:         rec.SeasonID,
		PlayerID:         rec.PlayerID,
		MatchesPlayed:    rec.MatchesPlayed,
		MatchesStarted:   rec.MatchesStarted,
		MinutesPlayed:    rec.MinutesPlayed,
		Goals:            rec.Goals,
		Assists:          rec.Assists,
		AssistsFromGoals: rec.AssistsFromGoals,
		AssistsRecorded:  rec.AssistsRecorded,
		YellowCards:      rec.YellowCards,
		RedCards:         rec.RedCards,
		CleanSheets:      rec.CleanSheets,
		UpdatedAt:        rec.UpdatedAt,
	}
}

func (row playerSeasonStatTableModel) toDomain() playerstat.SeasonRecord {
	return playerstat.SeasonRecord{
		SeasonID:         row.SeasonID,
		PlayerID:         row.PlayerID,
		MatchesPlayed:    row.MatchesPlayed,
		MatchesStarted:   row.MatchesStarted,
		MinutesPlayed:    row.MinutesPlayed,
		Goals:            row.Goals,
		Assists:          row.Assists,
		AssistsFromGoals: row.AssistsFromGoals,
		AssistsRecorded:  row.AssistsRecorded,
		YellowCards:      row.YellowCards,
		RedCards:         row.RedCards,
		CleanSheets:      row.CleanSheets,
		UpdatedAt:        row.UpdatedAt,
	}
}
