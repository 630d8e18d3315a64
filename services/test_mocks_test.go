package services

import (
	"context"
	"strings"
	"time"

	"city-portal/cache"
	"city-portal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockProfileStore struct {
	mock.Mock
}

func (m *mockProfileStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *mockProfileStore) UpdatePartial(ctx context.Context, id uuid.UUID, changes map[string]any) error {
	args := m.Called(ctx, id, changes)
	return args.Error(0)
}

type mockPlaceStore struct {
	mock.Mock
}

func (m *mockPlaceStore) FindAll(ctx context.Context) ([]models.Place, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Place), args.Error(1)
}

// memoryStore backs the query cache in tests; TTLs are ignored.
type memoryStore struct {
	entries map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: map[string][]byte{}}
}

func (m *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if value, ok := m.entries[key]; ok {
		return value, nil
	}
	return nil, cache.ErrMiss
}

func (m *memoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.entries[key] = value
	return nil
}

func (m *memoryStore) DeleteByPrefix(ctx context.Context, prefix string) error {
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}
