package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/riskibarqy/football-league/internal/domain/application"
	"github.com/riskibarqy/football-league/internal/domain/club"
	"github.com/riskibarqy/football-league/internal/domain/management"
	"github.com/riskibarqy/football-league/internal/domain/partner"
	"github.com/riskibarqy/football-league/internal/domain/referee"
	"github.com/riskibarqy/football-league/internal/domain/stadium"
	"github.com/riskibarqy/football-league/internal/platform/storeerr"
)

// directory is a mutex-guarded map backing the directory-style repositories.
// When clash is set, no two stored items may clash.
type directory[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	clash func(a, b T) bool
}

func newDirectory[T any]() *directory[T] {
	return &directory[T]{items: make(map[string]T)}
}

func (d *directory[T]) list(keep func(T) bool, compare func(a, b T) int) []T {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]T, 0, len(d.items))
	for _, item := range d.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	slices.SortFunc(out, compare)
	return out
}

func (d *directory[T]) get(id string) (T, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	item, ok := d.items[id]
	return item, ok
}

func (d *directory[T]) create(kind, id string, item T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.items[id]; exists {
		return fmt.Errorf("%s %s: %w", kind, id, storeerr.ErrDuplicate)
	}
	if err := d.checkClash(kind, id, item); err != nil {
		return err
	}
	d.items[id] = item
	return nil
}

func (d *directory[T]) update(kind, id string, item T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.items[id]; !exists {
		return fmt.Errorf("%s %s does not exist", kind, id)
	}
	if err := d.checkClash(kind, id, item); err != nil {
		return err
	}
	d.items[id] = item
	return nil
}

// checkClash compares item with every other stored item; the caller holds
// the write lock.
func (d *directory[T]) checkClash(kind, id string, item T) error {
	if d.clash == nil {
		return nil
	}
	for key, other := range d.items {
		if key != id && d.clash(item, other) {
			return fmt.Errorf("%s %s clashes with %s: %w", kind, id, key, storeerr.ErrDuplicate)
		}
	}
	return nil
}

func (d *directory[T]) delete(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.items, id)
}

type RefereeRepository struct {
	dir *directory[referee.Referee]
}

func NewRefereeRepository() *RefereeRepository {
	return &RefereeRepository{dir: newDirectory[referee.Referee]()}
}

func (r *RefereeRepository) List(_ context.Context, category referee.Category) ([]referee.Referee, error) {
	return r.dir.list(
		func(x referee.Referee) bool { return category == "" || x.Category == category },
		func(a, b referee.Referee) int {
			return cmp.Or(cmp.Compare(a.LastName, b.LastName), cmp.Compare(a.FirstName, b.FirstName), cmp.Compare(a.ID, b.ID))
		},
	), nil
}

func (r *RefereeRepository) GetByID(_ context.Context, id string) (referee.Referee, bool, error) {
	item, ok := r.dir.get(id)
	return item, ok, nil
}

func (r *RefereeRepository) Create(_ context.Context, item referee.Referee) error {
	return r.dir.create("referee", item.ID, item)
}

func (r *RefereeRepository) Update(_ context.Context, item referee.Referee) error {
	return r.dir.update("referee", item.ID, item)
}

func (r *RefereeRepository) Delete(_ context.Context, id string) error {
	r.dir.delete(id)
	return nil
}

type ManagerRepository struct {
	dir *directory[management.Manager]
}

func NewManagerRepository() *ManagerRepository {
	return &ManagerRepository{dir: newDirectory[management.Manager]()}
}

func (r *ManagerRepository) List(_ context.Context) ([]management.Manager, error) {
	return r.dir.list(
		func(management.Manager) bool { return true },
		func(a, b management.Manager) int {
			return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.LastName, b.LastName), cmp.Compare(a.ID, b.ID))
		},
	), nil
}

func (r *ManagerRepository) GetByID(_ context.Context, id string) (management.Manager, bool, error) {
	item, ok := r.dir.get(id)
	return item, ok, nil
}

func (r *ManagerRepository) Create(_ context.Context, item management.Manager) error {
	return r.dir.create("manager", item.ID, item)
}

func (r *ManagerRepository) Update(_ context.Context, item management.Manager) error {
	return r.dir.update("manager", item.ID, item)
}

func (r *ManagerRepository) Delete(_ context.Context, id string) error {
	r.dir.delete(id)
	return nil
}

type PartnerRepository struct {
	dir *directory[partner.Partner]
}

func NewPartnerRepository() *PartnerRepository {
	return &PartnerRepository{dir: newDirectory[partner.Partner]()}
}

func (r *PartnerRepository) List(_ context.Context, activeOnly bool) ([]partner.Partner, error) {
	return r.dir.list(
		func(x partner.Partner) bool { return !activeOnly || x.IsActive },
		func(a, b partner.Partner) int {
			return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
		},
	), nil
}

func (r *PartnerRepository) GetByID(_ context.Context, id string) (partner.Partner, bool, error) {
	item, ok := r.dir.get(id)
	return item, ok, nil
}

func (r *PartnerRepository) Create(_ context.Context, item partner.Partner) error {
	return r.dir.create("partner", item.ID, item)
}

func (r *PartnerRepository) Update(_ context.Context, item partner.Partner) error {
	return r.dir.update("partner", item.ID, item)
}

func (r *PartnerRepository) Delete(_ context.Context, id string) error {
	r.dir.delete(id)
	return nil
}

type StadiumRepository struct {
	dir *directory[stadium.Stadium]
}

func NewStadiumRepository() *StadiumRepository {
	return &StadiumRepository{dir: newDirectory[stadium.Stadium]()}
}

func (r *StadiumRepository) List(_ context.Context, city string) ([]stadium.Stadium, error) {
	return r.dir.list(
		func(x stadium.Stadium) bool { return city == "" || strings.EqualFold(x.City, city) },
		func(a, b stadium.Stadium) int { return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID)) },
	), nil
}

func (r *StadiumRepository) GetByID(_ context.Context, id string) (stadium.Stadium, bool, error) {
	item, ok := r.dir.get(id)
	return item, ok, nil
}

func (r *StadiumRepository) Create(_ context.Context, item stadium.Stadium) error {
	return r.dir.create("stadium", item.ID, item)
}

func (r *StadiumRepository) Update(_ context.Context, item stadium.Stadium) error {
	return r.dir.update("stadium", item.ID, item)
}

func (r *StadiumRepository) Delete(_ context.Context, id string) error {
	r.dir.delete(id)
	return nil
}

type ApplicationRepository struct {
	dir *directory[application.Application]
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{dir: newDirectory[application.Application]()}
}

func (r *ApplicationRepository) List(_ context.Context, filter application.Filter) ([]application.Application, error) {
	return r.dir.list(
		func(x application.Application) bool {
			return (filter.SeasonID == "" || x.SeasonID == filter.SeasonID) &&
				(filter.Status == "" || x.Status == filter.Status)
		},
		func(a, b application.Application) int {
			return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
		},
	), nil
}

func (r *ApplicationRepository) GetByID(_ context.Context, id string) (application.Application, bool, error) {
	item, ok := r.dir.get(id)
	return item, ok, nil
}

func (r *ApplicationRepository) Create(_ context.Context, item application.Application) error {
	return r.dir.create("club application", item.ID, item)
}

func (r *ApplicationRepository) Update(_ context.Context, item application.Application) error {
	return r.dir.update("club application", item.ID, item)
}

func (r *ApplicationRepository) Delete(_ context.Context, id string) error {
	r.dir.delete(id)
	return nil
}

// CoachRepository keeps at most one coach per club and season.
type CoachRepository struct {
	dir *directory[club.Coach]
}

func NewCoachRepository() *CoachRepository {
	dir := newDirectory[club.Coach]()
	dir.clash = func(a, b club.Coach) bool { return a.ClubID == b.ClubID && a.SeasonID == b.SeasonID }
	return &CoachRepository{dir: dir}
}

func (r *CoachRepository) List(_ context.Context, filter club.CoachFilter) ([]club.Coach, error) {
	return r.dir.list(
		func(x club.Coach) bool {
			return (filter.ClubID == "" || x.ClubID == filter.ClubID) &&
				(filter.SeasonID == "" || x.SeasonID == filter.SeasonID) &&
				(!filter.ActiveOnly || x.IsActive)
		},
		func(a, b club.Coach) int {
			return cmp.Or(cmp.Compare(a.LastName, b.LastName), cmp.Compare(a.FirstName, b.FirstName), cmp.Compare(a.ID, b.ID))
		},
	), nil
}

func (r *CoachRepository) GetByID(_ context.Context, id string) (club.Coach, bool, error) {
	item, ok := r.dir.get(id)
	return item, ok, nil
}

func (r *CoachRepository) Create(_ context.Context, item club.Coach) error {
	return r.dir.create("coach", item.ID, item)
}

func (r *CoachRepository) Update(_ context.Context, item club.Coach) error {
	return r.dir.update("coach", item.ID, item)
}

func (r *CoachRepository) Delete(_ context.Context, id string) error {
	r.dir.delete(id)
	return nil
}
