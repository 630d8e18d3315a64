package session

import (
	"context"
	"testing"
	"time"

	"city-portal/models"
	"city-portal/nav"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthClient drives auth-state changes by hand.
type fakeAuthClient struct {
	session   *models.Session
	getErr    error
	listeners *listenerSet
}

func newFakeAuthClient(session *models.Session) *fakeAuthClient {
	return &fakeAuthClient{session: session, listeners: newListenerSet()}
}

func (f *fakeAuthClient) GetSession(ctx context.Context) (*models.Session, error) {
	return f.session, f.getErr
}

func (f *fakeAuthClient) GetUser(ctx context.Context, token string) (*models.Session, error) {
	return f.session, nil
}

func (f *fakeAuthClient) OnAuthStateChange(cb func(*models.Session)) *Subscription {
	return f.listeners.add(cb)
}

func (f *fakeAuthClient) fire(s *models.Session) {
	f.session = s
	f.listeners.notify(s)
}

func someSession() *models.Session {
	return &models.Session{UserID: uuid.New(), Email: "user@example.com"}
}

func TestProvider_FetchesInitialSession(t *testing.T) {
	existing := someSession()
	provider := NewProvider(context.Background(), newFakeAuthClient(existing))
	defer provider.Close()

	assert.Equal(t, existing, provider.Current())
}

func TestProvider_InitialFetchErrorLeavesSessionEmpty(t *testing.T) {
	auth := newFakeAuthClient(nil)
	auth.getErr = assert.AnError

	provider := NewProvider(context.Background(), auth)
	defer provider.Close()

	assert.Nil(t, provider.Current())
}

func TestProvider_ReplacesSessionOnChange(t *testing.T) {
	auth := newFakeAuthClient(nil)
	provider := NewProvider(context.Background(), auth)
	defer provider.Close()

	require.Nil(t, provider.Current())

	next := someSession()
	auth.fire(next)
	assert.Equal(t, next, provider.Current())

	auth.fire(nil)
	assert.Nil(t, provider.Current())
}

func TestProvider_NotifiesSubscribers(t *testing.T) {
	auth := newFakeAuthClient(nil)
	provider := NewProvider(context.Background(), auth)
	defer provider.Close()

	var received []*models.Session
	sub := provider.Subscribe(func(s *models.Session) {
		received = append(received, s)
	})

	first := someSession()
	auth.fire(first)
	auth.fire(nil)

	require.Len(t, received, 2)
	assert.Equal(t, first, received[0])
	assert.Nil(t, received[1])

	sub.Unsubscribe()
	auth.fire(someSession())
	assert.Len(t, received, 2)
}

// Once the held token lapses, Current must report signed-out even
// before the next auth-state change arrives, so the profile navigation
// target falls back to /login.
func TestProvider_ExpiredSessionReadsAsSignedOut(t *testing.T) {
	auth := newFakeAuthClient(nil)
	provider := NewProvider(context.Background(), auth)
	defer provider.Close()

	lapsed := someSession()
	lapsed.ExpiresAt = time.Now().Add(-time.Minute)
	auth.fire(lapsed)

	assert.Nil(t, provider.Current())
	assert.Equal(t, "/login", nav.ProfileLinkTarget(provider.Current() != nil))

	fresh := someSession()
	fresh.ExpiresAt = time.Now().Add(time.Hour)
	auth.fire(fresh)
	assert.Equal(t, fresh, provider.Current())
}

func TestProvider_CloseDetachesFromAuthClient(t *testing.T) {
	auth := newFakeAuthClient(nil)
	provider := NewProvider(context.Background(), auth)

	provider.Close()
	auth.fire(someSession())

	assert.Nil(t, provider.Current())
}

// A login event must flip the profile navigation target from /login to
// /perfil without anything being re-created.
func TestProvider_NavTargetFollowsLogin(t *testing.T) {
	auth := newFakeAuthClient(nil)
	provider := NewProvider(context.Background(), auth)
	defer provider.Close()

	assert.Equal(t, "/login", nav.ProfileLinkTarget(provider.Current() != nil))

	auth.fire(someSession())
	assert.Equal(t, "/perfil", nav.ProfileLinkTarget(provider.Current() != nil))
}
