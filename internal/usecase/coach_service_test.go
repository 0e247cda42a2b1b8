package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-league/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoachService_OnePerClubSeason(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	pena, err := env.coachSvc.Create(ctx, CoachInput{
		ClubID:    clubPersija,
		SeasonID:  memory.SeasonIDCurrent,
		FirstName: "Carlos",
		LastName:  "Pena",
		IsActive:  true,
	})
	require.NoError(t, err)

	_, err = env.coachSvc.Create(ctx, CoachInput{
		ClubID:   clubPersija,
		SeasonID: memory.SeasonIDCurrent,
		LastName: "Teco",
		IsActive: true,
	})
	assert.True(t, errors.Is(err, ErrConflict), "got %v", err)

	hodak, err := env.coachSvc.Create(ctx, CoachInput{
		ClubID:    clubPersib,
		SeasonID:  memory.SeasonIDCurrent,
		FirstName: "Bojan",
		LastName:  "Hodak",
	})
	require.NoError(t, err)

	_, err = env.coachSvc.Update(ctx, hodak.ID, CoachInput{
		ClubID:   clubPersija,
		SeasonID: memory.SeasonIDCurrent,
		LastName: "Hodak",
	})
	assert.True(t, errors.Is(err, ErrConflict), "moving onto a taken club season: %v", err)

	active, err := env.coachSvc.List(ctx, "", memory.SeasonIDCurrent, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, pena.ID, active[0].ID)

	all, err := env.coachSvc.List(ctx, "", memory.SeasonIDCurrent, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Hodak", all[0].LastName)
}

func TestCoachService_Validates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.coachSvc.Create(ctx, CoachInput{ClubID: clubPersija, SeasonID: memory.SeasonIDCurrent})
	assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)

	_, err = env.coachSvc.Create(ctx, CoachInput{ClubID: "club-missing", SeasonID: memory.SeasonIDCurrent, LastName: "X"})
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

	_, err = env.coachSvc.Create(ctx, CoachInput{ClubID: clubPersija, SeasonID: "season-missing", LastName: "X"})
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestCoachService_RemovedWithClubOrSeason(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	psis, err := env.clubSvc.Create(ctx, ClubInput{Name: "PSIS Semarang", City: "Semarang", Status: "active"})
	require.NoError(t, err)
	coach, err := env.coachSvc.Create(ctx, CoachInput{
		ClubID:   psis.ID,
		SeasonID: memory.SeasonIDCurrent,
		LastName: "Gilbert",
		IsActive: true,
	})
	require.NoError(t, err)

	require.NoError(t, env.clubSvc.Delete(ctx, psis.ID))

	_, err = env.coachSvc.Get(ctx, coach.ID)
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

	cup, err := env.seasonSvc.Create(ctx, SeasonInput{Name: "Piala Presiden 2026"})
	require.NoError(t, err)
	coach, err = env.coachSvc.Create(ctx, CoachInput{
		ClubID:   clubPersija,
		SeasonID: cup.ID,
		LastName: "Pena",
		IsActive: true,
	})
	require.NoError(t, err)

	require.NoError(t, env.seasonSvc.Delete(ctx, cup.ID))

	_, err = env.coachSvc.Get(ctx, coach.ID)
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}
