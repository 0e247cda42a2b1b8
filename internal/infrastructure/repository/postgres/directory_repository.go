package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/management"
	"github.com/riskibarqy/football-league/internal/domain/partner"
	"github.com/riskibarqy/football-league/internal/domain/referee"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

// table holds the CRUD plumbing shared by the directory-style repositories.
// M is the row model, D the domain type.
type table[M any, D any] struct {
	db       *sqlx.DB
	name     string
	order    []string
	toDomain func(M) D
	toModel  func(D) M
	idOf     func(D) string
}

func (t table[M, D]) list(ctx context.Context, conditions ...qb.Condition) ([]D, error) {
	query, args, err := qb.Select("*").From(t.name).
		Where(conditions...).
		OrderBy(t.order...).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list %s query: %w", t.name, err)
	}

	var rows []M
	if err := t.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "list %s", t.name)
	}

	out := make([]D, 0, len(rows))
	for _, row := range rows {
		out = append(out, t.toDomain(row))
	}
	return out, nil
}

func (t table[M, D]) get(ctx context.Context, id string) (D, bool, error) {
	var zero D
	query, args, err := qb.Select("*").From(t.name).Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return zero, false, fmt.Errorf("build get %s query: %w", t.name, err)
	}

	var row M
	if err := t.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return zero, false, nil
		}
		return zero, false, crerr.Wrapf(err, "get %s %s", t.name, id)
	}
	return t.toDomain(row), true, nil
}

func (t table[M, D]) create(ctx context.Context, item D) error {
	query, args, err := qb.InsertModel(t.name, t.toModel(item), "")
	if err != nil {
		return fmt.Errorf("build insert %s query: %w", t.name, err)
	}
	if _, err := t.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "insert %s %s", t.name, t.idOf(item))
	}
	return nil
}

func (t table[M, D]) update(ctx context.Context, item D) error {
	id := t.idOf(item)
	query, args, err := qb.UpdateModel(t.name, t.toModel(item), []string{"id", "created_at"}, qb.Eq("id", id))
	if err != nil {
		return fmt.Errorf("build update %s query: %w", t.name, err)
	}
	if _, err := t.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "update %s %s", t.name, id)
	}
	return nil
}

func (t table[M, D]) delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom(t.name).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete %s query: %w", t.name, err)
	}
	if _, err := t.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "delete %s %s", t.name, id)
	}
	return nil
}

type RefereeRepository struct {
	table[refereeTableModel, referee.Referee]
}

func NewRefereeRepository(db *sqlx.DB) *RefereeRepository {
	return &RefereeRepository{table: table[refereeTableModel, referee.Referee]{
		db:       db,
		name:     "referees",
		order:    []string{"last_name", "first_name", "id"},
		toDomain: refereeToDomain,
		toModel:  refereeFromDomain,
		idOf:     func(r referee.Referee) string { return r.ID },
	}}
}

func (r *RefereeRepository) List(ctx context.Context, category referee.Category) ([]referee.Referee, error) {
	if category == "" {
		return r.list(ctx)
	}
	return r.list(ctx, qb.Eq("category", string(category)))
}

func (r *RefereeRepository) GetByID(ctx context.Context, id string) (referee.Referee, bool, error) {
	return r.get(ctx, id)
}

func (r *RefereeRepository) Create(ctx context.Context, item referee.Referee) error {
	return r.create(ctx, item)
}

func (r *RefereeRepository) Update(ctx context.Context, item referee.Referee) error {
	return r.update(ctx, item)
}

func (r *RefereeRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

type ManagerRepository struct {
	table[managerTableModel, management.Manager]
}

func NewManagerRepository(db *sqlx.DB) *ManagerRepository {
	return &ManagerRepository{table: table[managerTableModel, management.Manager]{
		db:       db,
		name:     "managers",
		order:    []string{"sort_order", "last_name", "id"},
		toDomain: managerToDomain,
		toModel:  managerFromDomain,
		idOf:     func(m management.Manager) string { return m.ID },
	}}
}

func (r *ManagerRepository) List(ctx context.Context) ([]management.Manager, error) {
	return r.list(ctx)
}

func (r *ManagerRepository) GetByID(ctx context.Context, id string) (management.Manager, bool, error) {
	return r.get(ctx, id)
}

func (r *ManagerRepository) Create(ctx context.Context, item management.Manager) error {
	return r.create(ctx, item)
}

func (r *ManagerRepository) Update(ctx context.Context, item management.Manager) error {
	return r.update(ctx, item)
}

func (r *ManagerRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

type PartnerRepository struct {
	table[partnerTableModel, partner.Partner]
}

func NewPartnerRepository(db *sqlx.DB) *PartnerRepository {
	return &PartnerRepository{table: table[partnerTableModel, partner.Partner]{
		db:       db,
		name:     "partners",
		order:    []string{"sort_order", "name", "id"},
		toDomain: partnerToDomain,
		toModel:  partnerFromDomain,
		idOf:     func(p partner.Partner) string { return p.ID },
	}}
}

func (r *PartnerRepository) List(ctx context.Context, activeOnly bool) ([]partner.Partner, error) {
	if activeOnly {
		return r.list(ctx, qb.Eq("is_active", true))
	}
	return r.list(ctx)
}

func (r *PartnerRepository) GetByID(ctx context.Context, id string) (partner.Partner, bool, error) {
	return r.get(ctx, id)
}

func (r *PartnerRepository) Create(ctx context.Context, item partner.Partner) error {
	return r.create(ctx, item)
}

func (r *PartnerRepository) Update(ctx context.Context, item partner.Partner) error {
	return r.update(ctx, item)
}

func (r *PartnerRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

func refereeFromDomain(r referee.Referee) refereeTableModel {
	return refereeTableModel{
		ID:          r.ID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Category:    string(r.Category),
		DateOfBirth: nullTime(r.DateOfBirth),
		Phone:       r.Phone,
		Email:       r.Email,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func refereeToDomain(row refereeTableModel) referee.Referee {
	return referee.Referee{
		ID:          row.ID,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Category:    referee.Category(row.Category),
		DateOfBirth: timePtr(row.DateOfBirth),
		Phone:       row.Phone,
		Email:       row.Email,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func managerFromDomain(m management.Manager) managerTableModel {
	return managerTableModel{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Position:  string(m.Position),
		Phone:     m.Phone,
		Email:     m.Email,
		Bio:       m.Bio,
		SortOrder: m.Order,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func managerToDomain(row managerTableModel) management.Manager {
	return management.Manager{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Position:  management.Position(row.Position),
		Phone:     row.Phone,
		Email:     row.Email,
		Bio:       row.Bio,
		Order:     row.SortOrder,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func partnerFromDomain(p partner.Partner) partnerTableModel {
	return partnerTableModel{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		Website:     p.Website,
		Description: p.Description,
		SortOrder:   p.Order,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func partnerToDomain(row partnerTableModel) partner.Partner {
	return partner.Partner{
		ID:          row.ID,
		Name:        row.Name,
		Category:    partner.Category(row.Category),
		Website:     row.Website,
		Description: row.Description,
		Order:       row.SortOrder,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
