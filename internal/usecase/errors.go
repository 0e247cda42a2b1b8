package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/football-league/internal/platform/storeerr"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("conflict")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// storeError translates repository constraint errors into service errors and
// wraps everything else with op.
func storeError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storeerr.ErrReferenced):
		return fmt.Errorf("%w: cannot delete: related records exist", ErrConflict)
	case errors.Is(err, storeerr.ErrDuplicate):
		return fmt.Errorf("%w: %s: record already exists", ErrConflict, op)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
