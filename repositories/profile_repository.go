package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"city-portal/models"
	"city-portal/rowstore"

	"github.com/google/uuid"
)

type ProfileRepository struct {
	store *rowstore.Store
}

func NewProfileRepository(store *rowstore.Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

// FindByID reads the single profile row of an identity.
func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := r.store.From("profiles").
		Select(models.ProfileColumns...).
		Eq("id", id)

	profile, err := rowstore.Single[models.Profile](ctx, query)
	if err != nil {
		if errors.Is(err, rowstore.ErrNoRows) {
			return nil, models.ErrProfileNotFound
		}
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	return profile, nil
}

// UpdatePartial sends only the given columns to the identity's row.
// updated_at is stamped client-side, so racing updates resolve
// last-write-wins.
func (r *ProfileRepository) UpdatePartial(ctx context.Context, id uuid.UUID, changes map[string]any) error {
	if len(changes) == 0 {
		return nil
	}

	payload := make(map[string]any, len(changes)+1)
	for column, value := range changes {
		payload[column] = value
	}
	payload["updated_at"] = time.Now()

	err := r.store.Update("profiles", payload).Eq("id", id).Exec(ctx)
	if err != nil {
		if errors.Is(err, rowstore.ErrNoRows) {
			return models.ErrProfileNotFound
		}
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
