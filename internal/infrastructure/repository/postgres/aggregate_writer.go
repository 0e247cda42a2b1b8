package postgres

import (
	"context"
	"database/sql/driver"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/playerstat"
	"github.com/riskibarqy/football-league/internal/domain/standing"
)

const (
	seasonLockQuery   = `SELECT pg_advisory_lock(hashtext($1))`
	seasonUnlockQuery = `SELECT pg_advisory_unlock(hashtext($1))`
)

// SeasonAggregateWriter writes the standings and player stats of one season
// in a single transaction. WithSeasonLock serializes whole recomputes of a
// season across processes.
type SeasonAggregateWriter struct {
	db *sqlx.DB
}

func NewSeasonAggregateWriter(db *sqlx.DB) *SeasonAggregateWriter {
	return &SeasonAggregateWriter{db: db}
}

// WithSeasonLock runs fn while a session advisory lock on the season is held
// by a dedicated connection. fn reads and writes through the pool.
func (w *SeasonAggregateWriter) WithSeasonLock(ctx context.Context, seasonID string, fn func(ctx context.Context) error) error {
	conn, err := w.db.Connx(ctx)
	if err != nil {
		return crerr.Wrapf(err, "acquire connection to lock season %s", seasonID)
	}
	defer conn.Close()

	key := seasonLockKey(seasonID)
	if _, err := conn.ExecContext(ctx, seasonLockQuery, key); err != nil {
		return crerr.Wrapf(err, "lock season %s", seasonID)
	}
	defer func() {
		if _, err := conn.ExecContext(context.WithoutCancel(ctx), seasonUnlockQuery, key); err != nil {
			// A connection still holding the lock must not go back to the pool.
			_ = conn.Raw(func(any) error { return driver.ErrBadConn })
		}
	}()

	return fn(ctx)
}

func (w *SeasonAggregateWriter) ReplaceSeasonAggregates(ctx context.Context, seasonID string, clubs []standing.Record, players []playerstat.SeasonRecord) error {
	return inTx(ctx, w.db, "replace season aggregates of "+seasonID, func(tx *sqlx.Tx) error {
		if err := upsertStandings(ctx, tx, clubs); err != nil {
			return err
		}
		return upsertPlayerStats(ctx, tx, players)
	})
}

func seasonLockKey(seasonID string) string {
	return "season:" + seasonID
}
