package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/club"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

// CoachRepository stores coaches in club_coaches. The (club_id, season_id)
// unique constraint surfaces as a duplicate on create and update.
type CoachRepository struct {
	table[coachTableModel, club.Coach]
}

func NewCoachRepository(db *sqlx.DB) *CoachRepository {
	return &CoachRepository{table: table[coachTableModel, club.Coach]{
		db:       db,
		name:     "club_coaches",
		order:    []string{"last_name", "first_name", "id"},
		toDomain: coachToDomain,
		toModel:  coachFromDomain,
		idOf:     func(c club.Coach) string { return c.ID },
	}}
}

func (r *CoachRepository) List(ctx context.Context, filter club.CoachFilter) ([]club.Coach, error) {
	conditions := make([]qb.Condition, 0, 3)
	if filter.ClubID != "" {
		conditions = append(conditions, qb.Eq("club_id", filter.ClubID))
	}
	if filter.SeasonID != "" {
		conditions = append(conditions, qb.Eq("season_id", filter.SeasonID))
	}
	if filter.ActiveOnly {
		conditions = append(conditions, qb.Eq("is_active", true))
	}
	return r.list(ctx, conditions...)
}

func (r *CoachRepository) GetByID(ctx context.Context, id string) (club.Coach, bool, error) {
	return r.get(ctx, id)
}

func (r *CoachRepository) Create(ctx context.Context, item club.Coach) error {
	return r.create(ctx, item)
}

func (r *CoachRepository) Update(ctx context.Context, item club.Coach) error {
	return r.update(ctx, item)
}

func (r *CoachRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

func coachFromDomain(c club.Coach) coachTableModel {
	return coachTableModel{
		ID:          c.ID,
		ClubID:      c.ClubID,
		SeasonID:    c.SeasonID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		DateOfBirth: nullTime(c.DateOfBirth),
		Nationality: c.Nationality,
		Bio:         c.Bio,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func coachToDomain(row coachTableModel) club.Coach {
	return club.Coach{
		ID:          row.ID,
		ClubID:      row.ClubID,
		SeasonID:    row.SeasonID,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		DateOfBirth: timePtr(row.DateOfBirth),
		Nationality: row.Nationality,
		Bio:         row.Bio,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
