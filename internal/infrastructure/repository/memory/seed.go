package memory

import (
	"time"

	"github.com/riskibarqy/football-league/internal/domain/club"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/season"
	"github.com/riskibarqy/football-league/internal/domain/standing"
)

const SeasonIDCurrent = "season-2025-2026"

func SeedSeasons() []season.Season {
	start := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC)
	return []season.Season{
		{
			ID:        SeasonIDCurrent,
			Name:      "2025/2026",
			Format:    season.FormatSingle,
			StartDate: &start,
			EndDate:   &end,
			IsActive:  true,
			CreatedAt: start,
			UpdatedAt: start,
		},
	}
}

func SeedClubs() []club.Club {
	return []club.Club{
		{ID: "club-persija", Name: "Persija Jakarta", ShortName: "PSJ", City: "Jakarta", FoundedYear: 1928, Status: club.StatusActive},
		{ID: "club-persib", Name: "Persib Bandung", ShortName: "PSB", City: "Bandung", FoundedYear: 1933, Status: club.StatusActive},
		{ID: "club-persebaya", Name: "Persebaya Surabaya", ShortName: "PRB", City: "Surabaya", FoundedYear: 1927, Status: club.StatusActive},
		{ID: "club-baliutd", Name: "Bali United", ShortName: "BU", City: "Gianyar", FoundedYear: 2015, Status: club.StatusActive},
	}
}

func SeedPlayers() []player.Player {
	p := func(id, clubID, first, last string, pos player.Position, number int) player.Player {
		return player.Player{
			ID:        id,
			ClubID:    clubID,
			SeasonID:  SeasonIDCurrent,
			FirstName: first,
			LastName:  last,
			Position:  pos,
			Number:    number,
			Status:    player.StatusActive,
		}
	}
	return []player.Player{
		p("player-andritany", "club-persija", "Andritany", "Ardhiyasa", player.PositionGoalkeeper, 1),
		p("player-hansamu", "club-persija", "Hansamu", "Yama", player.PositionDefender, 4),
		p("player-gajos", "club-persija", "Maciej", "Gajos", player.PositionMidfielder, 8),
		p("player-almeida", "club-persija", "Gustavo", "Almeida", player.PositionForward, 9),
		p("player-teja", "club-persib", "Teja", "Paku Alam", player.PositionGoalkeeper, 1),
		p("player-kuipers", "club-persib", "Nick", "Kuipers", player.PositionDefender, 5),
		p("player-klok", "club-persib", "Marc", "Klok", player.PositionMidfielder, 10),
		p("player-dasilva", "club-persib", "David", "da Silva", player.PositionForward, 19),
		p("player-stevanovic", "club-persebaya", "Dusan", "Stevanovic", player.PositionDefender, 3),
		p("player-moreira", "club-persebaya", "Bruno", "Moreira", player.PositionMidfielder, 7),
		p("player-fajrin", "club-baliutd", "Ricky", "Fajrin", player.PositionDefender, 2),
		p("player-bessa", "club-baliutd", "Eber", "Bessa", player.PositionMidfielder, 11),
	}
}

// SeedMemberships associates every seeded club with the current season.
func SeedMemberships() []standing.Record {
	clubs := SeedClubs()
	out := make([]standing.Record, 0, len(clubs))
	for _, c := range clubs {
		out = append(out, standing.Record{SeasonID: SeasonIDCurrent, ClubID: c.ID})
	}
	return out
}
