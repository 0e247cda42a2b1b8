package postgres

import (
	"context"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/player"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	conditions := make([]qb.Condition, 0, 6)
	if q := strings.TrimSpace(filter.Query); q != "" {
		conditions = append(conditions, qb.Expr("(first_name || ' ' || last_name) ILIKE ?", "%"+q+"%"))
	}
	if filter.ClubID != "" {
		conditions = append(conditions, qb.Eq("club_id", filter.ClubID))
	}
	if len(filter.ClubIDs) > 0 {
		conditions = append(conditions, qb.InStrings("club_id", filter.ClubIDs))
	}
	if filter.SeasonID != "" {
		conditions = append(conditions, qb.Eq("season_id", filter.SeasonID))
	}
	if filter.Position != "" {
		conditions = append(conditions, qb.Eq("position", string(filter.Position)))
	}
	if len(filter.IDs) > 0 {
		conditions = append(conditions, qb.InStrings("id", filter.IDs))
	}

	query, args, err := qb.Select("*").From("players").
		Where(conditions...).
		OrderBy("last_name", "first_name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, crerr.Wrapf(err, "get player %s", id)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	query, args, err := qb.InsertModel("players", playerFromDomain(item), "")
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "insert player %s", item.ID)
	}
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	query, args, err := qb.UpdateModel("players", playerFromDomain(item), []string{"id", "created_at"}, qb.Eq("id", item.ID))
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "update player %s", item.ID)
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("players").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "delete player %s", id)
	}
	return nil
}

func playerFromDomain(item player.Player) playerTableModel {
	return playerTableModel{
		ID:          item.ID,
		ClubID:      item.ClubID,
		SeasonID:    nullString(item.SeasonID),
		FirstName:   item.FirstName,
		LastName:    item.LastName,
		DateOfBirth: nullTime(item.DateOfBirth),
		Position:    string(item.Position),
		Number:      item.Number,
		Nationality: item.Nationality,
		HeightCM:    item.HeightCM,
		WeightKG:    item.WeightKG,
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (row playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:          row.ID,
		ClubID:      row.ClubID,
		SeasonID:    row.SeasonID.String,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		DateOfBirth: timePtr(row.DateOfBirth),
		Position:    player.Position(row.Position),
		Number:      row.Number,
		Nationality: row.Nationality,
		HeightCM:    row.HeightCM,
		WeightKG:    row.WeightKG,
		Status:      player.Status(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
