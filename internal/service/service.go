// Package service implements the application core: input validation, user
// reference resolution, and orchestration of the store, merge, and share
// logic. Handlers stay thin; every business rule lives here.
package service

import (
	"context"
	"errors"
	"fmt"

	"splittab/internal/models"
	"splittab/internal/storage"
)

// Service holds the record store gateway. It is stateless between calls;
// the store is the single source of truth and the sole synchronization
// point, so concurrent requests need no locking here.
type Service struct {
	store storage.Store
}

// New creates a Service backed by the given store.
func New(store storage.Store) *Service {
	return &Service{store: store}
}

// ListUsers returns all known users.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.GetAllUsers(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

// resolveUser turns a UserRef into a concrete user before any business
// logic runs. A name must match exactly one user; the ambiguity never
// travels further into the core.
func (s *Service) resolveUser(ctx context.Context, role string, ref models.UserRef) (*models.User, error) {
	switch {
	case ref.ID != 0:
		user, err := s.store.GetUserByID(ctx, ref.ID)
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s id %d", models.ErrUnknownUser, role, ref.ID)
		}
		if err != nil {
			return nil, storeErr(err)
		}
		return user, nil

	case ref.Name != "":
		user, err := s.store.FindUserByName(ctx, ref.Name)
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: no %s named %q", models.ErrUnknownUser, role, ref.Name)
		}
		if errors.Is(err, models.ErrAmbiguousUser) {
			return nil, fmt.Errorf("%w: multiple users named %q, use an id", models.ErrAmbiguousUser, ref.Name)
		}
		if err != nil {
			return nil, storeErr(err)
		}
		return user, nil

	default:
		return nil, fmt.Errorf("%w: %s is required (id or name)", models.ErrUnknownUser, role)
	}
}

// storeErr classifies a store failure. Not-found and ambiguity pass
// through untouched; everything else is infrastructure and surfaces as a
// terminal store-unavailable error for this request, never retried here.
func storeErr(err error) error {
	if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrAmbiguousUser) {
		return err
	}
	return errors.Join(models.ErrStoreUnavailable, err)
}
