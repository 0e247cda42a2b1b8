package cache

import (
	"context"

	"github.com/riskibarqy/football-league/internal/domain/club"
	"github.com/riskibarqy/football-league/internal/domain/playerstat"
	"github.com/riskibarqy/football-league/internal/domain/season"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	basecache "github.com/riskibarqy/football-league/internal/platform/cache"
)

const (
	seasonPrefix     = "season:"
	clubPrefix       = "club:"
	standingPrefix   = "standing:"
	playerStatPrefix = "player-stat:"
)

type cachedLookup[T any] struct {
	value  T
	exists bool
}

// loadSlice reads a slice through the store and hands back a copy so callers
// cannot mutate the cached value.
func loadSlice[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	items, _ := v.([]T)
	return append([]T(nil), items...), nil
}

func loadOne[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedLookup[T]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	cached, _ := v.(cachedLookup[T])
	return cached.value, cached.exists, nil
}

type SeasonRepository struct {
	season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{Repository: next, cache: cache}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	return loadSlice(ctx, r.cache, seasonPrefix+"list", r.Repository.List)
}

func (r *SeasonRepository) GetByID(ctx context.Context, id string) (season.Season, bool, error) {
	return loadOne(ctx, r.cache, seasonPrefix+"id:"+id, func(ctx context.Context) (season.Season, bool, error) {
		return r.Repository.GetByID(ctx, id)
	})
}

func (r *SeasonRepository) GetActive(ctx context.Context) (season.Season, bool, error) {
	return loadOne(ctx, r.cache, seasonPrefix+"active", r.Repository.GetActive)
}

func (r *SeasonRepository) ListGroups(ctx context.Context, seasonID string) ([]season.Group, error) {
	return loadSlice(ctx, r.cache, seasonPrefix+"groups:"+seasonID, func(ctx context.Context) ([]season.Group, error) {
		return r.Repository.ListGroups(ctx, seasonID)
	})
}

// Every season write can flip the active flag of other seasons, so writes
// drop the whole season namespace.
func (r *SeasonRepository) Create(ctx context.Context, item season.Season) error {
	defer r.cache.DeletePrefix(ctx, seasonPrefix)
	return r.Repository.Create(ctx, item)
}

func (r *SeasonRepository) Update(ctx context.Context, item season.Season) error {
	defer r.cache.DeletePrefix(ctx, seasonPrefix)
	return r.Repository.Update(ctx, item)
}

func (r *SeasonRepository) Delete(ctx context.Context, id string) error {
	defer r.cache.DeletePrefix(ctx, seasonPrefix)
	return r.Repository.Delete(ctx, id)
}

func (r *SeasonRepository) SetActive(ctx context.Context, id string) error {
	defer r.cache.DeletePrefix(ctx, seasonPrefix)
	return r.Repository.SetActive(ctx, id)
}

func (r *SeasonRepository) CreateGroups(ctx context.Context, groups []season.Group) error {
	defer r.cache.DeletePrefix(ctx, seasonPrefix+"groups:")
	return r.Repository.CreateGroups(ctx, groups)
}

func (r *SeasonRepository) UpdateGroup(ctx context.Context, g season.Group) error {
	defer r.cache.DeletePrefix(ctx, seasonPrefix+"groups:")
	return r.Repository.UpdateGroup(ctx, g)
}

func (r *SeasonRepository) DeleteGroup(ctx context.Context, seasonID, id string) error {
	defer r.cache.DeletePrefix(ctx, seasonPrefix+"groups:")
	return r.Repository.DeleteGroup(ctx, seasonID, id)
}

type ClubRepository struct {
	club.Repository
	cache *basecache.Store
}

func NewClubRepository(next club.Repository, cache *basecache.Store) *ClubRepository {
	return &ClubRepository{Repository: next, cache: cache}
}

func (r *ClubRepository) GetByID(ctx context.Context, id string) (club.Club, bool, error) {
	return loadOne(ctx, r.cache, clubPrefix+"id:"+id, func(ctx context.Context) (club.Club, bool, error) {
		return r.Repository.GetByID(ctx, id)
	})
}

func (r *ClubRepository) Create(ctx context.Context, item club.Club) error {
	defer r.cache.Delete(ctx, clubPrefix+"id:"+item.ID)
	return r.Repository.Create(ctx, item)
}

func (r *ClubRepository) Update(ctx context.Context, item club.Club) error {
	defer r.cache.Delete(ctx, clubPrefix+"id:"+item.ID)
	return r.Repository.Update(ctx, item)
}

func (r *ClubRepository) Delete(ctx context.Context, id string) error {
	defer r.cache.Delete(ctx, clubPrefix+"id:"+id)
	return r.Repository.Delete(ctx, id)
}

type StandingRepository struct {
	standing.Repository
	cache *basecache.Store
}

func NewStandingRepository(next standing.Repository, cache *basecache.Store) *StandingRepository {
	return &StandingRepository{Repository: next, cache: cache}
}

func (r *StandingRepository) ListBySeason(ctx context.Context, seasonID string) ([]standing.Record, error) {
	return loadSlice(ctx, r.cache, standingPrefix+"season:"+seasonID, func(ctx context.Context) ([]standing.Record, error) {
		return r.Repository.ListBySeason(ctx, seasonID)
	})
}

func (r *StandingRepository) Ensure(ctx context.Context, records []standing.Record) error {
	defer r.cache.DeletePrefix(ctx, standingPrefix)
	return r.Repository.Ensure(ctx, records)
}

func (r *StandingRepository) Delete(ctx context.Context, seasonID, clubID string) error {
	defer r.cache.DeletePrefix(ctx, standingPrefix)
	return r.Repository.Delete(ctx, seasonID, clubID)
}

func (r *StandingRepository) DeleteByClub(ctx context.Context, clubID string) error {
	defer r.cache.DeletePrefix(ctx, standingPrefix)
	return r.Repository.DeleteByClub(ctx, clubID)
}

func (r *StandingRepository) DeleteBySeason(ctx context.Context, seasonID string) error {
	defer r.cache.DeletePrefix(ctx, standingPrefix)
	return r.Repository.DeleteBySeason(ctx, seasonID)
}

type PlayerStatRepository struct {
	playerstat.Repository
	cache *basecache.Store
}

func NewPlayerStatRepository(next playerstat.Repository, cache *basecache.Store) *PlayerStatRepository {
	return &PlayerStatRepository{Repository: next, cache: cache}
}

func (r *PlayerStatRepository) ListBySeason(ctx context.Context, seasonID string) ([]playerstat.SeasonRecord, error) {
	return loadSlice(ctx, r.cache, playerStatPrefix+"season:"+seasonID, func(ctx context.Context) ([]playerstat.SeasonRecord, error) {
		return r.Repository.ListBySeason(ctx, seasonID)
	})
}

func (r *PlayerStatRepository) ListByPlayer(ctx context.Context, playerID string) ([]playerstat.SeasonRecord, error) {
	return loadSlice(ctx, r.cache, playerStatPrefix+"player:"+playerID, func(ctx context.Context) ([]playerstat.SeasonRecord, error) {
		return r.Repository.ListByPlayer(ctx, playerID)
	})
}

func (r *PlayerStatRepository) Upsert(ctx context.Context, records []playerstat.SeasonRecord) error {
	defer r.cache.DeletePrefix(ctx, playerStatPrefix)
	return r.Repository.Upsert(ctx, records)
}

func (r *PlayerStatRepository) DeleteByPlayer(ctx context.Context, playerID string) error {
	defer r.cache.DeletePrefix(ctx, playerStatPrefix)
	return r.Repository.DeleteByPlayer(ctx, playerID)
}

func (r *PlayerStatRepository) DeleteBySeason(ctx context.Context, seasonID string) error {
	defer r.cache.DeletePrefix(ctx, playerStatPrefix)
	return r.Repository.DeleteBySeason(ctx, seasonID)
}

// AggregateWriter drops cached standings and player stats after a season
// recompute writes new aggregates.
type AggregateWriter struct {
	next  aggregateWriter
	cache *basecache.Store
}

type aggregateWriter interface {
	WithSeasonLock(ctx context.Context, seasonID string, fn func(ctx context.Context) error) error
	ReplaceSeasonAggregates(ctx context.Context, seasonID string, clubs []standing.Record, players []playerstat.SeasonRecord) error
}

func NewAggregateWriter(next aggregateWriter, cache *basecache.Store) *AggregateWriter {
	return &AggregateWriter{next: next, cache: cache}
}

func (w *AggregateWriter) WithSeasonLock(ctx context.Context, seasonID string, fn func(ctx context.Context) error) error {
	return w.next.WithSeasonLock(ctx, seasonID, fn)
}

func (w *AggregateWriter) ReplaceSeasonAggregates(ctx context.Context, seasonID string, clubs []standing.Record, players []playerstat.SeasonRecord) error {
	defer func() {
		w.cache.DeletePrefix(ctx, standingPrefix)
		w.cache.DeletePrefix(ctx, playerStatPrefix)
	}()
	return w.next.ReplaceSeasonAggregates(ctx, seasonID, clubs, players)
}
