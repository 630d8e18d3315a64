package services

import (
	"context"
	"encoding/json"
	"time"

	"city-portal/cache"
	"city-portal/models"
)

// PlaceStore is the read-only slice of the remote accessor for places.
type PlaceStore interface {
	FindAll(ctx context.Context) ([]models.Place, error)
}

type PlaceService struct {
	places PlaceStore
	cache  *cache.Cache
	ttl    time.Duration
}

func NewPlaceService(places PlaceStore, queryCache *cache.Cache, ttl time.Duration) *PlaceService {
	return &PlaceService{places: places, cache: queryCache, ttl: ttl}
}

// List returns the directory ascending by name, served from the query
// cache when a fresh entry exists. Empty optional fields are dropped so
// a card affordance only appears for fields that carry a value.
func (s *PlaceService) List(ctx context.Context) ([]models.Place, error) {
	payload, _, err := s.cache.Fetch(ctx, cache.PlacesKey(), s.ttl,
		func(ctx context.Context) ([]byte, error) {
			places, err := s.places.FindAll(ctx)
			if err != nil {
				return nil, err
			}
			for i := range places {
				places[i].Normalize()
			}
			return json.Marshal(places)
		})
	if err != nil {
		return nil, err
	}

	places := []models.Place{}
	if err := json.Unmarshal(payload, &places); err != nil {
		return nil, err
	}
	return places, nil
}
