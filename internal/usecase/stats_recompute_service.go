package usecase

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/playerstat"
	"github.com/riskibarqy/football-league/internal/domain/season"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	"github.com/riskibarqy/football-league/internal/platform/cache"
	"github.com/riskibarqy/football-league/internal/platform/logging"
	"github.com/riskibarqy/football-league/internal/platform/resilience"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"go.opentelemetry.io/otel/attribute"
)

// SeasonAggregateWriter replaces every club-season record and player-season
// record of a season in a single write. WithSeasonLock runs fn while no other
// process recomputes the same season; the reads, the computation and the
// write of one recompute all happen inside fn.
type SeasonAggregateWriter interface {
	WithSeasonLock(ctx context.Context, seasonID string, fn func(ctx context.Context) error) error
	ReplaceSeasonAggregates(ctx context.Context, seasonID string, clubs []standing.Record, players []playerstat.SeasonRecord) error
}

type StatsRecomputeConfig struct {
	// Timeout bounds one triggered recompute. Zero means no bound.
	Timeout time.Duration
	// Workers is the pool size used by RecomputeAllSeasons.
	Workers int
	// DedupTTL is how long a processed match fingerprint is remembered.
	DedupTTL time.Duration
}

type SeasonRecomputeResult struct {
	SeasonID string
	Clubs    int
	Players  int
	Matches  int
	Duration time.Duration
	Error    string
}

type RecomputeAllResult struct {
	Seasons   []SeasonRecomputeResult
	Succeeded int
	Failed    int
}

// StatsRecomputeService owns standings and player statistics. Recomputes of
// one season are serialized; different seasons run independently.
type StatsRecomputeService struct {
	seasonRepo   season.Repository
	matchRepo    match.Repository
	eventRepo    match.EventRepository
	playerRepo   player.Repository
	standingRepo standing.Repository
	statRepo     playerstat.Repository
	writer       SeasonAggregateWriter
	cfg          StatsRecomputeConfig
	locks        *resilience.KeyedMutex
	processed    *cache.Store
	logger       *logging.Logger
	now          func() time.Time
}

func NewStatsRecomputeService(
	seasonRepo season.Repository,
	matchRepo match.Repository,
	eventRepo match.EventRepository,
	playerRepo player.Repository,
	standingRepo standing.Repository,
	statRepo playerstat.Repository,
	writer SeasonAggregateWriter,
	cfg StatsRecomputeConfig,
	logger *logging.Logger,
) *StatsRecomputeService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.DedupTTL <= 0 {
		cfg.DedupTTL = 10 * time.Minute
	}

	return &StatsRecomputeService{
		seasonRepo:   seasonRepo,
		matchRepo:    matchRepo,
		eventRepo:    eventRepo,
		playerRepo:   playerRepo,
		standingRepo: standingRepo,
		statRepo:     statRepo,
		writer:       writer,
		cfg:          cfg,
		locks:        resilience.NewKeyedMutex(),
		processed:    cache.NewStore(cfg.DedupTTL),
		logger:       logger.With("component", "stats_recompute"),
		now:          time.Now,
	}
}

// SeasonsChanged recomputes each season, in parallel when there are several.
// Failures are logged and never returned.
func (s *StatsRecomputeService) SeasonsChanged(ctx context.Context, seasonIDs ...string) {
	ids := uniqueNonEmpty(seasonIDs...)
	if len(ids) == 0 {
		return
	}

	ctx, cancel := s.detached(ctx)
	defer cancel()

	if len(ids) == 1 {
		s.guard(ctx, "season_id", ids[0], func() {
			_, err := s.RecomputeSeason(ctx, ids[0])
			s.logOutcome(ctx, "season_id", ids[0], err)
		})
		return
	}

	var wg conc.WaitGroup
	for _, seasonID := range ids {
		wg.Go(func() {
			_, err := s.RecomputeSeason(ctx, seasonID)
			s.logOutcome(ctx, "season_id", seasonID, err)
		})
	}
	if recovered := wg.WaitAndRecover(); recovered != nil {
		s.logger.ErrorContext(ctx, "season recompute panicked", "season_ids", ids, "panic", recovered.String())
	}
}

// MatchEventsChanged refreshes the statistics of players implicated in one
// match, plus playerIDs. Failures are logged and never returned.
func (s *StatsRecomputeService) MatchEventsChanged(ctx context.Context, matchID string, playerIDs ...string) {
	if matchID == "" {
		return
	}

	ctx, cancel := s.detached(ctx)
	defer cancel()

	s.guard(ctx, "match_id", matchID, func() {
		_, err := s.RecomputeMatch(ctx, matchID, playerIDs...)
		s.logOutcome(ctx, "match_id", matchID, err)
	})
}

// RecomputeSeason rebuilds the standings and player statistics of a season
// from its matches and sub-events and stores both in one write.
func (s *StatsRecomputeService) RecomputeSeason(ctx context.Context, seasonID string) (SeasonRecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsRecomputeService.RecomputeSeason", attribute.String("season_id", seasonID))
	defer span.End()

	started := s.now()
	result := SeasonRecomputeResult{SeasonID: seasonID}

	if _, exists, err := s.seasonRepo.GetByID(ctx, seasonID); err != nil {
		return result, crerr.Wrapf(err, "get season %s", seasonID)
	} else if !exists {
		return result, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	unlock, err := s.locks.Lock(ctx, seasonID)
	if err != nil {
		return result, crerr.Wrapf(err, "wait for season %s lock", seasonID)
	}
	defer unlock()

	err = s.writer.WithSeasonLock(ctx, seasonID, func(ctx context.Context) error {
		in, err := s.loadSeasonInput(ctx, seasonID)
		if err != nil {
			return err
		}

		clubs := standing.Compute(seasonID, in.memberships, in.matches)
		players := playerstat.Compute(seasonID, in.stats, in.players, in.matches, in.events)
		stamp := s.now().UTC()
		for i := range clubs {
			clubs[i].UpdatedAt = stamp
		}
		for i := range players {
			players[i].UpdatedAt = stamp
		}

		if err := s.writer.ReplaceSeasonAggregates(ctx, seasonID, clubs, players); err != nil {
			return crerr.Wrapf(err, "replace aggregates of season %s", seasonID)
		}
		result.Clubs = len(clubs)
		result.Players = len(players)
		result.Matches = countCounted(in.matches)
		return nil
	})
	if err != nil {
		return result, err
	}
	s.processed.DeletePrefix(ctx, dedupPrefix(seasonID))

	result.Duration = s.now().Sub(started)
	return result, nil
}

// RecomputeMatch refreshes the season totals of the players implicated in
// one match and of extraPlayerIDs. Totals are absolute, so reprocessing is
// harmless; a repeated fire for an unchanged match is skipped and reported
// as false.
func (s *StatsRecomputeService) RecomputeMatch(ctx context.Context, matchID string, extraPlayerIDs ...string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsRecomputeService.RecomputeMatch", attribute.String("match_id", matchID))
	defer span.End()

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return false, crerr.Wrapf(err, "get match %s", matchID)
	}
	if !exists {
		return false, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	unlock, err := s.locks.Lock(ctx, m.SeasonID)
	if err != nil {
		return false, crerr.Wrapf(err, "wait for season %s lock", m.SeasonID)
	}
	defer unlock()

	processed := false
	err = s.writer.WithSeasonLock(ctx, m.SeasonID, func(ctx context.Context) error {
		var err error
		processed, err = s.refreshMatchPlayers(ctx, m, uniqueNonEmpty(extraPlayerIDs...))
		return err
	})
	return processed, err
}

func (s *StatsRecomputeService) refreshMatchPlayers(ctx context.Context, m match.Match, extra []string) (bool, error) {
	matches, err := s.matchRepo.List(ctx, match.Filter{SeasonID: m.SeasonID})
	if err != nil {
		return false, crerr.Wrapf(err, "list matches of season %s", m.SeasonID)
	}
	events, err := s.eventRepo.ListBySeason(ctx, m.SeasonID)
	if err != nil {
		return false, crerr.Wrapf(err, "list events of season %s", m.SeasonID)
	}

	dedupKey := dedupPrefix(m.SeasonID) + m.ID
	fingerprint := matchFingerprint(m, events.ForMatch(m.ID), extra)
	if last, ok := s.processed.Get(ctx, dedupKey); ok && last == fingerprint {
		s.logger.DebugContext(ctx, "match already processed", "match_id", m.ID)
		return false, nil
	}

	clubPlayers, err := s.playerRepo.List(ctx, player.Filter{
		SeasonID: m.SeasonID,
		ClubIDs:  []string{m.HomeClubID, m.AwayClubID},
	})
	if err != nil {
		return false, crerr.Wrapf(err, "list players of match %s", m.ID)
	}
	implicated := uniqueNonEmpty(append(playerstat.Implicated(m, clubPlayers, events), extra...)...)
	players, err := s.playersByID(ctx, implicated)
	if err != nil {
		return false, err
	}

	existing := make([]playerstat.SeasonRecord, 0, len(implicated))
	for _, playerID := range implicated {
		rec, ok, err := s.statRepo.Get(ctx, m.SeasonID, playerID)
		if err != nil {
			return false, crerr.Wrapf(err, "get stats of player %s", playerID)
		}
		if ok {
			existing = append(existing, rec)
		}
	}

	records := playerstat.Only(playerstat.Compute(m.SeasonID, existing, players, matches, events), implicated)
	stamp := s.now().UTC()
	for i := range records {
		records[i].UpdatedAt = stamp
	}
	if err := s.statRepo.Upsert(ctx, records); err != nil {
		return false, crerr.Wrapf(err, "upsert stats for match %s", m.ID)
	}

	s.processed.Set(ctx, dedupKey, fingerprint)
	return true, nil
}

// RecomputeAllSeasons rebuilds every season on a bounded worker pool.
func (s *StatsRecomputeService) RecomputeAllSeasons(ctx context.Context) (RecomputeAllResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsRecomputeService.RecomputeAllSeasons")
	defer span.End()

	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return RecomputeAllResult{}, fmt.Errorf("list seasons: %w", err)
	}
	if len(seasons) == 0 {
		return RecomputeAllResult{}, nil
	}

	workers := s.cfg.Workers
	if workers > len(seasons) {
		workers = len(seasons)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return RecomputeAllResult{}, fmt.Errorf("create recompute worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]SeasonRecomputeResult, len(seasons))
	var (
		wg        sync.WaitGroup
		failed    atomic.Int32
		submitErr error
	)
	for i, item := range seasons {
		wg.Add(1)
		seasonID := item.ID
		err := pool.Submit(func() {
			defer wg.Done()
			res, err := s.RecomputeSeason(ctx, seasonID)
			if err != nil {
				failed.Add(1)
				res.Error = err.Error()
				s.logger.ErrorContext(ctx, "recompute season failed", "season_id", seasonID, "error", err)
			}
			res.SeasonID = seasonID
			results[i] = res
		})
		if err != nil {
			wg.Done()
			submitErr = fmt.Errorf("submit season %s: %w", seasonID, err)
			break
		}
	}
	wg.Wait()
	if submitErr != nil {
		return RecomputeAllResult{}, submitErr
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SeasonID < results[j].SeasonID
	})
	out := RecomputeAllResult{Seasons: results, Failed: int(failed.Load())}
	out.Succeeded = len(results) - out.Failed
	return out, nil
}

type seasonInput struct {
	memberships []standing.Record
	matches     []match.Match
	events      match.Events
	stats       []playerstat.SeasonRecord
	players     []player.Player
}

func (s *StatsRecomputeService) loadSeasonInput(ctx context.Context, seasonID string) (seasonInput, error) {
	var in seasonInput
	var err error

	if in.memberships, err = s.standingRepo.ListBySeason(ctx, seasonID); err != nil {
		return in, crerr.Wrapf(err, "list standings of season %s", seasonID)
	}
	if in.matches, err = s.matchRepo.List(ctx, match.Filter{SeasonID: seasonID}); err != nil {
		return in, crerr.Wrapf(err, "list matches of season %s", seasonID)
	}
	if in.events, err = s.eventRepo.ListBySeason(ctx, seasonID); err != nil {
		return in, crerr.Wrapf(err, "list events of season %s", seasonID)
	}
	if in.stats, err = s.statRepo.ListBySeason(ctx, seasonID); err != nil {
		return in, crerr.Wrapf(err, "list player stats of season %s", seasonID)
	}

	// Appearances go to the players registered in the season; players of
	// other seasons only enter through the events that name them.
	roster, err := s.playerRepo.List(ctx, player.Filter{SeasonID: seasonID})
	if err != nil {
		return in, crerr.Wrapf(err, "list players of season %s", seasonID)
	}

	known := make(map[string]struct{}, len(roster))
	for _, p := range roster {
		known[p.ID] = struct{}{}
	}
	missing := make([]string, 0)
	for _, id := range in.events.PlayerIDs() {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}
	extra, err := s.playersByID(ctx, missing)
	if err != nil {
		return in, err
	}

	in.players = dedupePlayers(append(roster, extra...))
	return in, nil
}

func (s *StatsRecomputeService) playersByID(ctx context.Context, ids []string) ([]player.Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	players, err := s.playerRepo.List(ctx, player.Filter{IDs: ids})
	if err != nil {
		return nil, crerr.Wrapf(err, "list %d players by id", len(ids))
	}
	return players, nil
}

// detached keeps trace values but drops the caller's cancellation: the write
// that triggered the recompute has already happened.
func (s *StatsRecomputeService) detached(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)
	if s.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, s.cfg.Timeout)
	}
	return context.WithCancel(ctx)
}

func (s *StatsRecomputeService) guard(ctx context.Context, key, value string, fn func()) {
	var catcher panics.Catcher
	catcher.Try(fn)
	if recovered := catcher.Recovered(); recovered != nil {
		s.logger.ErrorContext(ctx, "recompute panicked", key, value, "panic", recovered.String())
	}
}

func (s *StatsRecomputeService) logOutcome(ctx context.Context, key, value string, err error) {
	switch {
	case err == nil:
		s.logger.DebugContext(ctx, "recompute finished", key, value)
	case crerr.Is(err, ErrNotFound):
		s.logger.DebugContext(ctx, "recompute skipped", key, value, "reason", err.Error())
	default:
		s.logger.ErrorContext(ctx, "recompute failed", key, value, "error", err)
	}
}

func dedupPrefix(seasonID string) string {
	return "season:" + seasonID + ":match:"
}

// matchFingerprint identifies one saved state of a match and its events.
func matchFingerprint(m match.Match, events match.Events, extraPlayerIDs []string) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s|%s|%s|%v|%v|%d", m.ID, m.SeasonID, m.HomeClubID, m.AwayClubID, m.Status,
		intOrNil(m.HomeScore), intOrNil(m.AwayScore), m.UpdatedAt.UnixNano())
	for _, g := range events.Goals {
		fmt.Fprintf(h, "|g:%+v", g)
	}
	for _, c := range events.Cards {
		fmt.Fprintf(h, "|c:%+v", c)
	}
	for _, sub := range events.Substitutions {
		fmt.Fprintf(h, "|s:%+v", sub)
	}
	for _, a := range events.Assists {
		fmt.Fprintf(h, "|a:%+v", a)
	}
	for _, id := range extraPlayerIDs {
		fmt.Fprintf(h, "|p:%s", id)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

func intOrNil(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func countCounted(matches []match.Match) int {
	n := 0
	for _, m := range matches {
		if m.Counts() {
			n++
		}
	}
	return n
}

func dedupePlayers(players []player.Player) []player.Player {
	seen := make(map[string]struct{}, len(players))
	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}
