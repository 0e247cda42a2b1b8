package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-league/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClubService_DeleteWithPlayersConflicts(t *testing.T) {
	env := newTestEnv(t)

	err := env.clubSvc.Delete(context.Background(), clubBali)
	assert.True(t, errors.Is(err, ErrConflict), "got %v", err)
}

func TestClubService_DeleteUnusedClub(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.clubSvc.Create(ctx, ClubInput{Name: "PSIS Semarang", ShortName: "PSIS", City: "Semarang", Status: "active"})
	require.NoError(t, err)
	_, err = env.seasonSvc.JoinClub(ctx, JoinClubInput{SeasonID: memory.SeasonIDCurrent, ClubID: created.ID})
	require.NoError(t, err)

	require.NoError(t, env.clubSvc.Delete(ctx, created.ID))

	_, err = env.clubSvc.Get(ctx, created.ID)
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
	clubs, err := env.seasonSvc.ListClubs(ctx, memory.SeasonIDCurrent)
	require.NoError(t, err)
	assert.Len(t, clubs, 4)
}
