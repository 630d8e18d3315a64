package services

import (
	"context"
	"encoding/json"
	"time"

	"city-portal/cache"
	"city-portal/models"

	"github.com/google/uuid"
)

// ProfileStore is the slice of the remote accessor the service needs.
type ProfileStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	UpdatePartial(ctx context.Context, id uuid.UUID, changes map[string]any) error
}

type ProfileService struct {
	profiles ProfileStore
	cache    *cache.Cache
	ttl      time.Duration
}

func NewProfileService(profiles ProfileStore, queryCache *cache.Cache, ttl time.Duration) *ProfileService {
	return &ProfileService{profiles: profiles, cache: queryCache, ttl: ttl}
}

// Fetch reads the profile of the session's identity through the query
// cache. ErrNotAuthenticated without a session, ErrProfileNotFound when
// the backend has no row.
func (s *ProfileService) Fetch(ctx context.Context, session *models.Session) (*models.Profile, error) {
	if session == nil {
		return nil, models.ErrNotAuthenticated
	}

	payload, _, err := s.cache.Fetch(ctx, cache.ProfileKey(session.UserID), s.ttl,
		func(ctx context.Context) ([]byte, error) {
			profile, err := s.profiles.FindByID(ctx, session.UserID)
			if err != nil {
				return nil, err
			}
			return json.Marshal(profile)
		})
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update sends a partial update restricted to the session's row. On
// success the cached profile query is invalidated and the row refetched
// so the caller sees server state.
func (s *ProfileService) Update(ctx context.Context, session *models.Session, req models.UpdateProfileRequest) (*models.Profile, error) {
	if session == nil {
		return nil, models.ErrNotAuthenticated
	}

	changes := req.Changes()
	err := s.cache.Mutate(ctx,
		func(ctx context.Context) error {
			return s.profiles.UpdatePartial(ctx, session.UserID, changes)
		},
		cache.ProfileKey(session.UserID))
	if err != nil {
		return nil, err
	}

	return s.Fetch(ctx, session)
}

// DeleteAvatar clears the avatar URL through a regular partial update.
func (s *ProfileService) DeleteAvatar(ctx context.Context, session *models.Session) (*models.Profile, error) {
	empty := ""
	return s.Update(ctx, session, models.UpdateProfileRequest{AvatarURL: &empty})
}

// DeleteCover clears the cover URL through a regular partial update.
func (s *ProfileService) DeleteCover(ctx context.Context, session *models.Session) (*models.Profile, error) {
	empty := ""
	return s.Update(ctx, session, models.UpdateProfileRequest{CoverURL: &empty})
}
