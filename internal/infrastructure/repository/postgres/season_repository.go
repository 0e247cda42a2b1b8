package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/season"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select("*").From("seasons").
		OrderBy("start_date DESC NULLS LAST", "name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list seasons")
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, id string) (season.Season, bool, error) {
	return r.getOne(ctx, "get season by id", qb.Eq("id", id))
}

func (r *SeasonRepository) GetActive(ctx context.Context) (season.Season, bool, error) {
	return r.getOne(ctx, "get active season", qb.Eq("is_active", true))
}

func (r *SeasonRepository) getOne(ctx context.Context, op string, where qb.Condition) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").Where(where).Limit(1).ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, crerr.Wrap(err, op)
	}
	return row.toDomain(), true, nil
}

// Create inserts a season. An active season deactivates the others inside the
// same transaction.
func (r *SeasonRepository) Create(ctx context.Context, item season.Season) error {
	return inTx(ctx, r.db, "create season", func(tx *sqlx.Tx) error {
		if item.IsActive {
			if err := deactivateOthers(ctx, tx, item.ID); err != nil {
				return err
			}
		}
		query, args, err := qb.InsertModel("seasons", seasonFromDomain(item), "")
		if err != nil {
			return fmt.Errorf("build insert season query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return writeError(err, "insert season %s", item.ID)
		}
		return nil
	})
}

func (r *SeasonRepository) Update(ctx context.Context, item season.Season) error {
	return inTx(ctx, r.db, "update season", func(tx *sqlx.Tx) error {
		if item.IsActive {
			if err := deactivateOthers(ctx, tx, item.ID); err != nil {
				return err
			}
		}
		query, args, err := qb.UpdateModel("seasons", seasonFromDomain(item), []string{"id", "created_at"}, qb.Eq("id", item.ID))
		if err != nil {
			return fmt.Errorf("build update season query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return writeError(err, "update season %s", item.ID)
		}
		return nil
	})
}

func (r *SeasonRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("seasons").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete season query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "delete season %s", id)
	}
	return nil
}

// SetActive locks every season row and leaves only id active.
func (r *SeasonRepository) SetActive(ctx context.Context, id string) error {
	return inTx(ctx, r.db, "set active season", func(tx *sqlx.Tx) error {
		lockQuery, lockArgs, err := qb.Select("id").From("seasons").Suffix("FOR UPDATE").ToSQL()
		if err != nil {
			return fmt.Errorf("build lock seasons query: %w", err)
		}
		var ids []string
		if err := tx.SelectContext(ctx, &ids, lockQuery, lockArgs...); err != nil {
			return crerr.Wrap(err, "lock seasons")
		}

		if err := deactivateOthers(ctx, tx, id); err != nil {
			return err
		}
		if id == "" {
			return nil
		}

		query, args, err := qb.Update("seasons").
			Set("is_active", true).
			SetExpr("updated_at", "NOW()").
			Where(qb.Eq("id", id)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build activate season query: %w", err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return writeError(err, "activate season %s", id)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return crerr.Newf("season %s does not exist", id)
		}
		return nil
	})
}

func (r *SeasonRepository) ListGroups(ctx context.Context, seasonID string) ([]season.Group, error) {
	query, args, err := qb.Select("*").From("season_groups").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("sort_order", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list season groups query: %w", err)
	}

	var rows []seasonGroupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "list groups of season %s", seasonID)
	}

	out := make([]season.Group, 0, len(rows))
	for _, row := range rows {
		out = append(out, season.Group{ID: row.ID, SeasonID: row.SeasonID, Name: row.Name, Order: row.SortOrder})
	}
	return out, nil
}

func (r *SeasonRepository) CreateGroups(ctx context.Context, groups []season.Group) error {
	if len(groups) == 0 {
		return nil
	}

	builder := qb.InsertInto("season_groups").Columns("id", "season_id", "name", "sort_order")
	for _, g := range groups {
		builder.Values(g.ID, g.SeasonID, g.Name, g.Order)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert season groups query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "insert %d season groups", len(groups))
	}
	return nil
}

func (r *SeasonRepository) UpdateGroup(ctx context.Context, g season.Group) error {
	query, args, err := qb.Update("season_groups").
		Set("name", g.Name).
		Set("sort_order", g.Order).
		Where(qb.Eq("id", g.ID), qb.Eq("season_id", g.SeasonID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update season group query: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError(err, "update season group %s", g.ID)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return crerr.Newf("group %s does not exist in season %s", g.ID, g.SeasonID)
	}
	return nil
}

func (r *SeasonRepository) DeleteGroup(ctx context.Context, seasonID, id string) error {
	query, args, err := qb.DeleteFrom("season_groups").
		Where(qb.Eq("id", id), qb.Eq("season_id", seasonID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete season group query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "delete season group %s", id)
	}
	return nil
}

// deactivateOthers locks the active season rows and clears every one except
// keepID.
func deactivateOthers(ctx context.Context, tx *sqlx.Tx, keepID string) error {
	lockQuery, lockArgs, err := qb.Select("id").From("seasons").
		Where(qb.Eq("is_active", true)).
		Suffix("FOR UPDATE").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build lock active seasons query: %w", err)
	}
	var active []string
	if err := tx.SelectContext(ctx, &active, lockQuery, lockArgs...); err != nil {
		return crerr.Wrap(err, "lock active seasons")
	}
	if len(active) == 0 {
		return nil
	}

	query, args, err := qb.Update("seasons").
		Set("is_active", false).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("is_active", true), qb.NotEq("id", keepID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build deactivate seasons query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrap(err, "deactivate seasons")
	}
	return nil
}

func seasonFromDomain(item season.Season) seasonTableModel {
	return seasonTableModel{
		ID:          item.ID,
		Name:        item.Name,
		Format:      string(item.Format),
		StartDate:   nullTime(item.StartDate),
		EndDate:     nullTime(item.EndDate),
		IsActive:    item.IsActive,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (row seasonTableModel) toDomain() season.Season {
	return season.Season{
		ID:          row.ID,
		Name:        row.Name,
		Format:      season.NormalizeFormat(row.Format),
		StartDate:   timePtr(row.StartDate),
		EndDate:     timePtr(row.EndDate),
		IsActive:    row.IsActive,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
