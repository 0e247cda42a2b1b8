package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-league/internal/domain/season"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	"go.opentelemetry.io/otel/attribute"
)

// SeasonTable is the league table of one season. Tables holds one entry for
// an ungrouped view and one entry per group otherwise.
type SeasonTable struct {
	Season season.Season
	Groups []season.Group
	Tables []standing.Table
}

type StandingService struct {
	seasonRepo   season.Repository
	standingRepo standing.Repository
}

func NewStandingService(seasonRepo season.Repository, standingRepo standing.Repository) *StandingService {
	return &StandingService{
		seasonRepo:   seasonRepo,
		standingRepo: standingRepo,
	}
}

// Table returns the stored standings of a season, the active one when
// seasonID is empty. With grouped set, rows are split per group.
func (s *StandingService) Table(ctx context.Context, seasonID string, grouped bool) (SeasonTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Table", attribute.Bool("grouped", grouped))
	defer span.End()

	item, err := resolveSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return SeasonTable{}, err
	}

	records, err := s.standingRepo.ListBySeason(ctx, item.ID)
	if err != nil {
		return SeasonTable{}, fmt.Errorf("list season standings: %w", err)
	}
	rows := standing.SortByPosition(records)

	out := SeasonTable{Season: item}
	if !grouped {
		out.Tables = []standing.Table{{Rows: rows}}
		return out, nil
	}

	groups, err := s.seasonRepo.ListGroups(ctx, item.ID)
	if err != nil {
		return SeasonTable{}, fmt.Errorf("list season groups: %w", err)
	}
	out.Groups = groups
	out.Tables = orderTablesByGroup(standing.Tables(rows), groups)
	return out, nil
}

// orderTablesByGroup sorts tables by group order; unknown and empty group ids
// go last in their original order.
func orderTablesByGroup(tables []standing.Table, groups []season.Group) []standing.Table {
	byGroup := make(map[string]standing.Table, len(tables))
	for _, t := range tables {
		byGroup[t.GroupID] = t
	}

	out := make([]standing.Table, 0, len(tables))
	for _, g := range groups {
		if t, ok := byGroup[g.ID]; ok {
			out = append(out, t)
			delete(byGroup, g.ID)
		}
	}
	for _, t := range tables {
		if _, ok := byGroup[t.GroupID]; ok {
			out = append(out, t)
		}
	}
	return out
}
