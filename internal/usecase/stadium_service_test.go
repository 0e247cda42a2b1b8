package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStadiumService_MatchAtStadium(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gbk, err := env.stadiumSvc.Create(ctx, StadiumInput{Name: "Gelora Bung Karno", City: "Jakarta", Capacity: intPtr(77193)})
	require.NoError(t, err)
	_, err = env.stadiumSvc.Create(ctx, StadiumInput{Name: "Gelora Bandung Lautan Api", City: "Bandung"})
	require.NoError(t, err)

	jakarta, err := env.stadiumSvc.List(ctx, "jakarta")
	require.NoError(t, err)
	require.Len(t, jakarta, 1)
	assert.Equal(t, gbk.ID, jakarta[0].ID)

	m, err := env.matchSvc.Create(ctx, MatchInput{
		SeasonID:   memory.SeasonIDCurrent,
		HomeClubID: clubPersija,
		AwayClubID: clubPersib,
		KickoffAt:  kickoff(5),
		StadiumID:  gbk.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, gbk.ID, m.StadiumID)
	assert.Equal(t, "Gelora Bung Karno", m.Stadium)

	err = env.stadiumSvc.Delete(ctx, gbk.ID)
	assert.True(t, errors.Is(err, ErrConflict), "delete stadium with matches: %v", err)

	require.NoError(t, env.matchSvc.Delete(ctx, m.ID))
	require.NoError(t, env.stadiumSvc.Delete(ctx, gbk.ID))
	_, err = env.stadiumSvc.Get(ctx, gbk.ID)
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestStadiumService_Validates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.stadiumSvc.Create(ctx, StadiumInput{City: "Surabaya"})
	assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)

	_, err = env.stadiumSvc.Create(ctx, StadiumInput{Name: "Gelora Bung Tomo", Capacity: intPtr(-1)})
	assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)

	_, err = env.matchSvc.Create(ctx, MatchInput{
		SeasonID:   memory.SeasonIDCurrent,
		HomeClubID: clubPersebaya,
		AwayClubID: clubBali,
		KickoffAt:  kickoff(6),
		Status:     string(match.StatusScheduled),
		StadiumID:  "stadium-missing",
	})
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}
