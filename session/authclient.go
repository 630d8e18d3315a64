// Package session wraps the hosted auth service: a client speaking its
// HTTP token API and a provider holding the single observable session
// value the rest of the portal reads.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"city-portal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClient is the boundary contract of the hosted auth service.
type AuthClient interface {
	// GetSession returns the restored session, or nil when none exists.
	GetSession(ctx context.Context) (*models.Session, error)
	// GetUser resolves the identity behind an access token.
	GetUser(ctx context.Context, token string) (*models.Session, error)
	// OnAuthStateChange registers a callback fired with the new session
	// (nil on sign-out) whenever the auth state changes.
	OnAuthStateChange(cb func(*models.Session)) *Subscription
}

// Client talks to the auth service over HTTP and validates its HS256
// access tokens locally.
type Client struct {
	baseURL    string
	apiKey     string
	jwtSecret  []byte
	httpClient *http.Client

	mu      sync.RWMutex
	current *models.Session

	listeners *listenerSet
}

func NewClient(baseURL, apiKey, jwtSecret string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		jwtSecret:  []byte(jwtSecret),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		listeners:  newListenerSet(),
	}
}

// Restore seeds the client with a persisted access token, the way a
// browser session is restored from storage. Invalid or expired tokens
// are dropped silently.
func (c *Client) Restore(token string) {
	if token == "" {
		return
	}
	session, err := c.VerifyToken(token)
	if err != nil {
		return
	}
	c.mu.Lock()
	c.current = session
	c.mu.Unlock()
}

func (c *Client) GetSession(ctx context.Context) (*models.Session, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil || c.current.Expired() {
		return nil, nil
	}
	return c.current, nil
}

// VerifyToken checks an access token's signature and expiry and returns
// the identity it carries.
func (c *Client) VerifyToken(token string) (*models.Session, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject claim: %w", err)
	}

	session := &models.Session{
		UserID:      userID,
		AccessToken: token,
	}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		session.ExpiresAt = exp.Time
	}
	return session, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// SignIn exchanges credentials for a session at the auth service and
// fires the auth-state change.
func (c *Client) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/token?grant_type=password", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth service rejected credentials (status %d)", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(tr.User.ID)
	if err != nil {
		return nil, fmt.Errorf("auth service returned invalid user id: %w", err)
	}

	session := &models.Session{
		UserID:      userID,
		Email:       tr.User.Email,
		AccessToken: tr.AccessToken,
		ExpiresAt:   time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second),
	}

	c.mu.Lock()
	c.current = session
	c.mu.Unlock()

	c.listeners.notify(session)
	return session, nil
}

// SignOut revokes the token at the auth service and fires the auth-state
// change with no session.
func (c *Client) SignOut(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()

	c.listeners.notify(nil)
	return nil
}

func (c *Client) GetUser(ctx context.Context, token string) (*models.Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}

	var user struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth service returned invalid user id: %w", err)
	}

	return &models.Session{UserID: userID, Email: user.Email, AccessToken: token}, nil
}

func (c *Client) OnAuthStateChange(cb func(*models.Session)) *Subscription {
	return c.listeners.add(cb)
}
