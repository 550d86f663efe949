package service

import (
	"context"

	"amity/internal/models"
	"amity/internal/repository"

	"github.com/google/uuid"
)

// requireUsers is the shared existence guard: it fails with a not-found
// domain error as soon as one of the given users is unknown. Both
// relationship services call it before touching relationship rows.
func requireUsers(ctx context.Context, users repository.UserRepository, ids ...uuid.UUID) error {
	for _, id := range ids {
		exists, err := users.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewNotFoundError("user does not exist")
		}
	}
	return nil
}
