package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/transfer"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

type transferTableModel struct {
	ID           string         `db:"id"`
	PlayerID     string         `db:"player_id"`
	FromClubID   sql.NullString `db:"from_club_id"`
	ToClubID     string         `db:"to_club_id"`
	SeasonID     sql.NullString `db:"season_id"`
	TransferDate time.Time      `db:"transfer_date"`
	Status       string         `db:"status"`
	FeeCents     sql.NullInt64  `db:"fee_cents"`
	Notes        string         `db:"notes"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type TransferRepository struct {
	db *sqlx.DB
}

func NewTransferRepository(db *sqlx.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) List(ctx context.Context, filter transfer.Filter) ([]transfer.Transfer, error) {
	conditions := make([]qb.Condition, 0, 4)
	if filter.PlayerID != "" {
		conditions = append(conditions, qb.Eq("player_id", filter.PlayerID))
	}
	if filter.ClubID != "" {
		conditions = append(conditions, qb.Or(
			qb.Eq("from_club_id", filter.ClubID),
			qb.Eq("to_club_id", filter.ClubID),
		))
	}
	if filter.SeasonID != "" {
		conditions = append(conditions, qb.Eq("season_id", filter.SeasonID))
	}
	if filter.Status != "" {
		conditions = append(conditions, qb.Eq("status", string(filter.Status)))
	}

	query, args, err := qb.Select("*").From("player_transfers").
		Where(conditions...).
		OrderBy("transfer_date DESC", "created_at DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list transfers query: %w", err)
	}

	var rows []transferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list transfers")
	}

	out := make([]transfer.Transfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TransferRepository) GetByID(ctx context.Context, id string) (transfer.Transfer, bool, error) {
	query, args, err := qb.Select("*").From("player_transfers").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return transfer.Transfer{}, false, fmt.Errorf("build get transfer query: %w", err)
	}

	var row transferTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return transfer.Transfer{}, false, nil
		}
		return transfer.Transfer{}, false, crerr.Wrapf(err, "get transfer %s", id)
	}
	return row.toDomain(), true, nil
}

func (r *TransferRepository) Create(ctx context.Context, t transfer.Transfer) error {
	query, args, err := qb.InsertModel("player_transfers", transferFromDomain(t), "")
	if err != nil {
		return fmt.Errorf("build insert transfer query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "insert transfer %s", t.ID)
	}
	return nil
}

func (r *TransferRepository) Update(ctx context.Context, t transfer.Transfer) error {
	query, args, err := qb.UpdateModel("player_transfers", transferFromDomain(t), []string{"id", "created_at"}, qb.Eq("id", t.ID))
	if err != nil {
		return fmt.Errorf("build update transfer query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "update transfer %s", t.ID)
	}
	return nil
}

func (r *TransferRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("player_transfers").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete transfer query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "delete transfer %s", id)
	}
	return nil
}

func transferFromDomain(t transfer.Transfer) transferTableModel {
	return transferTableModel{
		ID:           t.ID,
		PlayerID:     t.PlayerID,
		FromClubID:   nullString(t.FromClubID),
		ToClubID:     t.ToClubID,
		SeasonID:     nullString(t.SeasonID),
		TransferDate: t.TransferDate,
		Status:       string(t.Status),
		FeeCents:     nullInt64(t.FeeCents),
		Notes:        t.Notes,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (row transferTableModel) toDomain() transfer.Transfer {
	return transfer.Transfer{
		ID:           row.ID,
		PlayerID:     row.PlayerID,
		FromClubID:   row.FromClubID.String,
		ToClubID:     row.ToClubID,
		SeasonID:     row.SeasonID.String,
		TransferDate: row.TransferDate,
		Status:       transfer.Status(row.Status),
		FeeCents:     int64Ptr(row.FeeCents),
		Notes:        row.Notes,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
