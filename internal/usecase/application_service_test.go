package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-league/internal/domain/application"
	"github.com/riskibarqy/football-league/internal/domain/club"
	"github.com/riskibarqy/football-league/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
	"github.com/riskibarqy/football-league/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func psmApplication() ApplicationInput {
	return ApplicationInput{
		SeasonID:      memory.SeasonIDCurrent,
		ClubName:      "PSM Makassar",
		ShortName:     "PSM",
		City:          "Makassar",
		FoundedYear:   1915,
		ContactPerson: "Andi Rahman",
		ContactEmail:  "office@psm.example",
		CoachName:     "Bernardo Tavares",
	}
}

func TestApplicationService_ApproveRegistersClub(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.appSvc.Create(ctx, psmApplication())
	require.NoError(t, err)
	assert.Equal(t, application.StatusPending, created.Status)

	approved, registered, err := env.appSvc.Approve(ctx, created.ID, "")
	require.NoError(t, err)
	assert.Equal(t, application.StatusApproved, approved.Status)
	assert.Equal(t, registered.ID, approved.ClubID)
	assert.NotNil(t, approved.ReviewedAt)

	stored, err := env.clubSvc.Get(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "PSM Makassar", stored.Name)
	assert.Equal(t, "Bernardo Tavares", stored.CoachName)
	assert.Equal(t, club.StatusActive, stored.Status)

	_, games, _ := env.standingOf(t, registered.ID)
	assert.Zero(t, games)

	_, _, err = env.appSvc.Approve(ctx, created.ID, "")
	assert.True(t, errors.Is(err, ErrConflict), "approve twice: %v", err)
	_, err = env.appSvc.Reject(ctx, created.ID, "duplicate")
	assert.True(t, errors.Is(err, ErrConflict), "reject approved: %v", err)
}

func TestApplicationService_RejectAndWithdraw(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.appSvc.Create(ctx, psmApplication())
	require.NoError(t, err)
	rejected, err := env.appSvc.Reject(ctx, first.ID, "stadium not licensed")
	require.NoError(t, err)
	assert.Equal(t, application.StatusRejected, rejected.Status)
	assert.Equal(t, "stadium not licensed", rejected.Notes)

	second, err := env.appSvc.Create(ctx, psmApplication())
	require.NoError(t, err)
	withdrawn, err := env.appSvc.Withdraw(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusWithdrawn, withdrawn.Status)
	_, _, err = env.appSvc.Approve(ctx, second.ID, "")
	assert.True(t, errors.Is(err, ErrConflict), "approve withdrawn: %v", err)

	pending, err := env.appSvc.List(ctx, application.Filter{SeasonID: memory.SeasonIDCurrent, Status: application.StatusPending})
	require.NoError(t, err)
	assert.Empty(t, pending)

	all, err := env.appSvc.List(ctx, application.Filter{SeasonID: memory.SeasonIDCurrent})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	clubs, err := env.clubSvc.List(ctx, club.Filter{Query: "PSM"})
	require.NoError(t, err)
	assert.Empty(t, clubs, "only approval registers a club")
}

func TestApplicationService_CreateValidates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	input := psmApplication()
	input.CoachName = ""
	_, err := env.appSvc.Create(ctx, input)
	assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)

	input = psmApplication()
	input.SeasonID = "season-missing"
	_, err = env.appSvc.Create(ctx, input)
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

	_, err = env.appSvc.List(ctx, application.Filter{Status: "archived"})
	assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
}

type failingApplicationUpdates struct {
	*memory.ApplicationRepository
}

func (failingApplicationUpdates) Update(context.Context, application.Application) error {
	return errors.New("connection reset by peer")
}

func TestApplicationService_ApproveUndoesClubWhenSaveFails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewApplicationService(
		failingApplicationUpdates{env.apps}, env.clubs, env.seasons, env.standings,
		env.recompute, idgen.NewSequence("app"), logging.NewNop(),
	)

	created, err := svc.Create(ctx, psmApplication())
	require.NoError(t, err)

	_, _, err = svc.Approve(ctx, created.ID, "")
	require.Error(t, err)

	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, application.StatusPending, stored.Status)

	clubs, err := env.clubSvc.List(ctx, club.Filter{Query: "PSM"})
	require.NoError(t, err)
	assert.Empty(t, clubs)
	records, err := env.standings.ListBySeason(ctx, memory.SeasonIDCurrent)
	require.NoError(t, err)
	assert.Len(t, records, 4)
}
