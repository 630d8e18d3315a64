package repositories

import (
	"context"
	"fmt"

	"city-portal/models"
	"city-portal/rowstore"
)

type PlaceRepository struct {
	store *rowstore.Store
}

func NewPlaceRepository(store *rowstore.Store) *PlaceRepository {
	return &PlaceRepository{store: store}
}

// FindAll lists the whole places directory ascending by name.
func (r *PlaceRepository) FindAll(ctx context.Context) ([]models.Place, error) {
	query := r.store.From("places").
		Select(models.PlaceColumns...).
		OrderAsc("name")

	places, err := rowstore.All[models.Place](ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch places: %w", err)
	}
	return places, nil
}
