package standing

import (
	"sort"

	"github.com/riskibarqy/football-league/internal/domain/match"
)

// Compute rebuilds the standings of seasonID from scratch. memberships are the
// existing records of the season (their aggregates are discarded); matches may
// contain matches of other seasons and non-counting matches, both are skipped.
// The result holds one record per club, ranked per group, ordered by group of
// first appearance and then position. Compute is deterministic: the same input
// always yields the same output.
func Compute(seasonID string, memberships []Record, matches []match.Match) []Record {
	records := make([]Record, 0, len(memberships))
	index := make(map[string]int, len(memberships))

	ensure := func(clubID, groupID string) *Record {
		if i, ok := index[clubID]; ok {
			return &records[i]
		}
		index[clubID] = len(records)
		records = append(records, Record{SeasonID: seasonID, ClubID: clubID, GroupID: groupID})
		return &records[len(records)-1]
	}

	for _, m := range memberships {
		if m.SeasonID != seasonID || m.ClubID == "" {
			continue
		}
		if _, ok := index[m.ClubID]; ok {
			continue
		}
		index[m.ClubID] = len(records)
		records = append(records, m.Reset())
	}

	for _, m := range matches {
		if m.SeasonID != seasonID || !m.Counts() {
			continue
		}
		home := ensure(m.HomeClubID, m.GroupID)
		applyResult(home, *m.HomeScore, *m.AwayScore)
		away := ensure(m.AwayClubID, m.GroupID)
		applyResult(away, *m.AwayScore, *m.HomeScore)
	}

	for i := range records {
		records[i].GoalDifference = records[i].GoalsFor - records[i].GoalsAgainst
	}

	return Rank(records)
}

func applyResult(r *Record, scored, conceded int) {
	r.Games++
	r.GoalsFor += scored
	r.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		r.Wins++
		r.Points += PointsForWin
	case scored == conceded:
		r.Draws++
		r.Points += PointsForDraw
	default:
		r.Losses++
	}
}

// Rank assigns positions 1..N independently inside each group, ordering by
// points, goal difference and goals scored, all descending. Ties keep input
// order. The returned slice is grouped by first appearance of each group.
func Rank(records []Record) []Record {
	groupOrder := make([]string, 0)
	byGroup := make(map[string][]Record)
	for _, r := range records {
		if _, ok := byGroup[r.GroupID]; !ok {
			groupOrder = append(groupOrder, r.GroupID)
		}
		byGroup[r.GroupID] = append(byGroup[r.GroupID], r)
	}

	out := make([]Record, 0, len(records))
	for _, groupID := range groupOrder {
		rows := byGroup[groupID]
		sort.SliceStable(rows, func(i, j int) bool {
			return ranksAbove(rows[i], rows[j])
		})
		for i := range rows {
			rows[i].Position = i + 1
		}
		out = append(out, rows...)
	}
	return out
}

func ranksAbove(a, b Record) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	return a.GoalsFor > b.GoalsFor
}

// Tables splits ranked records into one table per group, preserving order.
func Tables(records []Record) []Table {
	out := make([]Table, 0)
	index := make(map[string]int)
	for _, r := range records {
		i, ok := index[r.GroupID]
		if !ok {
			i = len(out)
			index[r.GroupID] = i
			out = append(out, Table{GroupID: r.GroupID})
		}
		out[i].Rows = append(out[i].Rows, r)
	}
	return out
}

// SortByPosition orders stored records for display without re-ranking:
// grouped by first appearance, then by position.
func SortByPosition(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, table := range Tables(records) {
		rows := append([]Record(nil), table.Rows...)
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Position < rows[j].Position
		})
		out = append(out, rows...)
	}
	return out
}
