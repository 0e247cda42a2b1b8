package postgres

import (
	"context"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/club"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) List(ctx context.Context, filter club.Filter) ([]club.Club, error) {
	conditions := make([]qb.Condition, 0, 3)
	if q := strings.TrimSpace(filter.Query); q != "" {
		conditions = append(conditions, qb.Or(
			qb.ILike("name", q),
			qb.ILike("city", q),
			qb.ILike("short_name", q),
		))
	}
	if filter.Status != "" {
		conditions = append(conditions, qb.Eq("status", string(filter.Status)))
	}
	if len(filter.IDs) > 0 {
		conditions = append(conditions, qb.InStrings("id", filter.IDs))
	}

	query, args, err := qb.Select("*").From("clubs").
		Where(conditions...).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list clubs query: %w", err)
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list clubs")
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ClubRepository) GetByID(ctx context.Context, id string) (club.Club, bool, error) {
	query, args, err := qb.Select("*").From("clubs").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build get club query: %w", err)
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, crerr.Wrapf(err, "get club %s", id)
	}
	return row.toDomain(), true, nil
}

func (r *ClubRepository) Create(ctx context.Context, item club.Club) error {
	query, args, err := qb.InsertModel("clubs", clubFromDomain(item), "")
	if err != nil {
		return fmt.Errorf("build insert club query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "insert club %s", item.ID)
	}
	return nil
}

func (r *ClubRepository) Update(ctx context.Context, item club.Club) error {
	query, args, err := qb.UpdateModel("clubs", clubFromDomain(item), []string{"id", "created_at"}, qb.Eq("id", item.ID))
	if err != nil {
		return fmt.Errorf("build update club query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "update club %s", item.ID)
	}
	return nil
}

func (r *ClubRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("clubs").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete club query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "delete club %s", id)
	}
	return nil
}

func clubFromDomain(item club.Club) clubTableModel {
	return clubTableModel{
		ID:           item.ID,
		Name:         item.Name,
		ShortName:    item.ShortName,
		City:         item.City,
		FoundedYear:  item.FoundedYear,
		CoachName:    item.CoachName,
		Stadium:      item.Stadium,
		Status:       string(item.Status),
		ContactEmail: item.ContactEmail,
		ContactPhone: item.ContactPhone,
		Website:      item.Website,
		Description:  item.Description,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func (row clubTableModel) toDomain() club.Club {
	return club.Club{
		ID:           row.ID,
		Name:         row.Name,
		ShortName:    row.ShortName,
		City:         row.City,
		FoundedYear:  row.FoundedYear,
		CoachName:    row.CoachName,
		Stadium:      row.Stadium,
		Status:       club.Status(row.Status),
		ContactEmail: row.ContactEmail,
		ContactPhone: row.ContactPhone,
		Website:      row.Website,
		Description:  row.Description,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
