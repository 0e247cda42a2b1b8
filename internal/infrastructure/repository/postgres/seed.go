package postgres

import (
	"context"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

const seedOnConflict = "ON CONFLICT DO NOTHING"

// BootstrapSeed loads the demo season, clubs, players and memberships into an
// empty database. It is a no-op once any season exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM seasons`); err != nil {
		return crerr.Wrap(err, "count seasons for bootstrap seed")
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	return inTx(ctx, db, "bootstrap seed", func(tx *sqlx.Tx) error {
		for _, s := range memory.SeedSeasons() {
			if err := seedRow(ctx, tx, "seasons", seasonFromDomain(s)); err != nil {
				return fmt.Errorf("seed season %s: %w", s.ID, err)
			}
		}
		for _, c := range memory.SeedClubs() {
			c.CreatedAt, c.UpdatedAt = now, now
			if err := seedRow(ctx, tx, "clubs", clubFromDomain(c)); err != nil {
				return fmt.Errorf("seed club %s: %w", c.ID, err)
			}
		}
		for _, p := range memory.SeedPlayers() {
			p.CreatedAt, p.UpdatedAt = now, now
			if err := seedRow(ctx, tx, "players", playerFromDomain(p)); err != nil {
				return fmt.Errorf("seed player %s: %w", p.ID, err)
			}
		}
		for _, rec := range memory.SeedMemberships() {
			rec.UpdatedAt = now
			if err := seedRow(ctx, tx, "club_seasons", clubSeasonFromDomain(rec)); err != nil {
				return fmt.Errorf("seed membership %s/%s: %w", rec.SeasonID, rec.ClubID, err)
			}
		}
		return nil
	})
}

func seedRow(ctx context.Context, tx *sqlx.Tx, table string, model any) error {
	query, args, err := qb.InsertModel(table, model, seedOnConflict)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "insert %s row", table)
	}
	return nil
}
