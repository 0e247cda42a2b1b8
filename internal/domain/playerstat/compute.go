package playerstat

import (
	"sort"

	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/player"
)

// Compute rebuilds the player statistics of seasonID from scratch.
//
// A record is produced for every existing record of the season, every player
// of players registered in the season and every player referenced by an
// event of a counted match. Appearances are credited per club and only to
// players registered in the season: each counted match of the player's
// current club adds one match played and started and MinutesPerMatch minutes.
// Goalkeepers get a clean sheet for each of those matches their club kept
// goalless. Goal type does not matter. Events of matches that are not counted
// or belong to another season are ignored.
func Compute(seasonID string, existing []SeasonRecord, players []player.Player, matches []match.Match, events match.Events) []SeasonRecord {
	records := make([]SeasonRecord, 0, len(existing)+len(players))
	index := make(map[string]int, len(existing)+len(players))
	ensure := func(playerID string) *SeasonRecord {
		i, ok := index[playerID]
		if !ok {
			i = len(records)
			index[playerID] = i
			records = append(records, SeasonRecord{SeasonID: seasonID, PlayerID: playerID})
		}
		return &records[i]
	}

	for _, r := range existing {
		if r.SeasonID != seasonID || r.PlayerID == "" {
			continue
		}
		if _, ok := index[r.PlayerID]; ok {
			continue
		}
		index[r.PlayerID] = len(records)
		records = append(records, r.Reset())
	}

	playerByID := make(map[string]player.Player, len(players))
	for _, p := range players {
		if p.SeasonID != seasonID {
			continue
		}
		playerByID[p.ID] = p
		ensure(p.ID)
	}

	counted := make(map[string]match.Match)
	countedOrder := make([]match.Match, 0)
	for _, m := range matches {
		if m.SeasonID != seasonID || !m.Counts() {
			continue
		}
		if _, dup := counted[m.ID]; dup {
			continue
		}
		counted[m.ID] = m
		countedOrder = append(countedOrder, m)
	}
	inCounted := func(matchID string) bool {
		_, ok := counted[matchID]
		return ok
	}

	for _, g := range events.Goals {
		if !inCounted(g.MatchID) {
			continue
		}
		if g.ScorerID != "" {
			ensure(g.ScorerID).Goals++
		}
		if g.AssistID != "" {
			ensure(g.AssistID).AssistsFromGoals++
		}
	}
	for _, a := range events.Assists {
		if inCounted(a.MatchID) && a.PlayerID != "" {
			ensure(a.PlayerID).AssistsRecorded++
		}
	}
	for _, c := range events.Cards {
		if !inCounted(c.MatchID) || c.PlayerID == "" {
			continue
		}
		r := ensure(c.PlayerID)
		switch {
		case c.Type == match.CardYellow:
			r.YellowCards++
		case c.Type.IsRed():
			r.RedCards++
		}
	}

	for i := range records {
		r := &records[i]
		r.Assists = r.AssistsFromGoals + r.AssistsRecorded

		p, ok := playerByID[r.PlayerID]
		if !ok || p.ClubID == "" {
			continue
		}
		for _, m := range countedOrder {
			if !m.Involves(p.ClubID) {
				continue
			}
			r.MatchesPlayed++
			if p.Position == player.PositionGoalkeeper && m.Conceded(p.ClubID) == 0 {
				r.CleanSheets++
			}
		}
		r.MatchesStarted = r.MatchesPlayed
		r.MinutesPlayed = r.MatchesPlayed * MinutesPerMatch
	}

	return records
}

// Implicated lists the players whose statistics can change when m or its
// events change: the players of both clubs and everyone named in events.
func Implicated(m match.Match, players []player.Player, events match.Events) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, p := range players {
		if m.Involves(p.ClubID) {
			add(p.ID)
		}
	}
	for _, id := range events.ForMatch(m.ID).PlayerIDs() {
		add(id)
	}
	return out
}

// Only keeps the records of the given players.
func Only(records []SeasonRecord, playerIDs []string) []SeasonRecord {
	keep := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		keep[id] = struct{}{}
	}
	out := make([]SeasonRecord, 0, len(playerIDs))
	for _, r := range records {
		if _, ok := keep[r.PlayerID]; ok {
			out = append(out, r)
		}
	}
	return out
}

// TopScorers returns up to limit records with at least one goal, ordered by
// goals then assists, both descending. Ties keep input order.
func TopScorers(records []SeasonRecord, limit int) []SeasonRecord {
	out := make([]SeasonRecord, 0, len(records))
	for _, r := range records {
		if r.Goals > 0 {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		return out[i].Assists > out[j].Assists
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
