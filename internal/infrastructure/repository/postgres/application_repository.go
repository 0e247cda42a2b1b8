package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/application"
	"github.com/riskibarqy/football-league/internal/domain/stadium"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

type StadiumRepository struct {
	table[stadiumTableModel, stadium.Stadium]
}

func NewStadiumRepository(db *sqlx.DB) *StadiumRepository {
	return &StadiumRepository{table: table[stadiumTableModel, stadium.Stadium]{
		db:       db,
		name:     "stadiums",
		order:    []string{"name", "id"},
		toDomain: stadiumToDomain,
		toModel:  stadiumFromDomain,
		idOf:     func(s stadium.Stadium) string { return s.ID },
	}}
}

func (r *StadiumRepository) List(ctx context.Context, city string) ([]stadium.Stadium, error) {
	if city == "" {
		return r.list(ctx)
	}
	return r.list(ctx, qb.Expr("LOWER(city) = LOWER(?)", city))
}

func (r *StadiumRepository) GetByID(ctx context.Context, id string) (stadium.Stadium, bool, error) {
	return r.get(ctx, id)
}

func (r *StadiumRepository) Create(ctx context.Context, item stadium.Stadium) error {
	return r.create(ctx, item)
}

func (r *StadiumRepository) Update(ctx context.Context, item stadium.Stadium) error {
	return r.update(ctx, item)
}

func (r *StadiumRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

// ApplicationRepository stores club applications in club_applications.
type ApplicationRepository struct {
	table[applicationTableModel, application.Application]
}

func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{table: table[applicationTableModel, application.Application]{
		db:       db,
		name:     "club_applications",
		order:    []string{"created_at DESC", "id DESC"},
		toDomain: applicationToDomain,
		toModel:  applicationFromDomain,
		idOf:     func(a application.Application) string { return a.ID },
	}}
}

func (r *ApplicationRepository) List(ctx context.Context, filter application.Filter) ([]application.Application, error) {
	conditions := make([]qb.Condition, 0, 2)
	if filter.SeasonID != "" {
		conditions = append(conditions, qb.Eq("season_id", filter.SeasonID))
	}
	if filter.Status != "" {
		conditions = append(conditions, qb.Eq("status", string(filter.Status)))
	}
	return r.list(ctx, conditions...)
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (application.Application, bool, error) {
	return r.get(ctx, id)
}

func (r *ApplicationRepository) Create(ctx context.Context, item application.Application) error {
	return r.create(ctx, item)
}

func (r *ApplicationRepository) Update(ctx context.Context, item application.Application) error {
	return r.update(ctx, item)
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

func stadiumFromDomain(s stadium.Stadium) stadiumTableModel {
	return stadiumTableModel{
		ID:        s.ID,
		Name:      s.Name,
		City:      s.City,
		Capacity:  nullInt(s.Capacity),
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func stadiumToDomain(row stadiumTableModel) stadium.Stadium {
	return stadium.Stadium{
		ID:        row.ID,
		Name:      row.Name,
		City:      row.City,
		Capacity:  intPtr(row.Capacity),
		Address:   row.Address,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func applicationFromDomain(a application.Application) applicationTableModel {
	return applicationTableModel{
		ID:             a.ID,
		SeasonID:       a.SeasonID,
		ClubName:       a.ClubName,
		ShortName:      a.ShortName,
		City:           a.City,
		FoundedYear:    a.FoundedYear,
		ContactPerson:  a.ContactPerson,
		ContactPhone:   a.ContactPhone,
		ContactEmail:   a.ContactEmail,
		CoachName:      a.CoachName,
		AssistantCoach: a.AssistantCoach,
		Description:    a.Description,
		Notes:          a.Notes,
		Status:         string(a.Status),
		ClubID:         nullString(a.ClubID),
		ReviewedAt:     nullTime(a.ReviewedAt),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func applicationToDomain(row applicationTableModel) application.Application {
	return application.Application{
		ID:             row.ID,
		SeasonID:       row.SeasonID,
		ClubName:       row.ClubName,
		ShortName:      row.ShortName,
		City:           row.City,
		FoundedYear:    row.FoundedYear,
		ContactPerson:  row.ContactPerson,
		ContactPhone:   row.ContactPhone,
		ContactEmail:   row.ContactEmail,
		CoachName:      row.CoachName,
		AssistantCoach: row.AssistantCoach,
		Description:    row.Description,
		Notes:          row.Notes,
		Status:         application.Status(row.Status),
		ClubID:         row.ClubID.String,
		ReviewedAt:     timePtr(row.ReviewedAt),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
