package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/yigit/madrasah/internal/pkg/apperrors"
	"github.com/yigit/madrasah/internal/pkg/auth"
)

const idBytes = 32

// Manager creates, resolves and destroys sessions and the tokens that name them
type Manager struct {
	store  Store
	signer *auth.TokenSigner
	ttl    time.Duration
	now    func() time.Time
}

// NewManager creates a Manager issuing sessions that live for ttl
func NewManager(store Store, signer *auth.TokenSigner, ttl time.Duration) *Manager {
	return &Manager{store: store, signer: signer, ttl: ttl, now: time.Now}
}

// TTL is the lifetime of new sessions
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Start creates a session for userID and returns it with its signed token
func (m *Manager) Start(ctx context.Context, userID string) (*Session, string, error) {
	id, err := newID()
	if err != nil {
		return nil, "", err
	}

	now := m.now()
	s := &Session{
		ID:        id,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, s); err != nil {
		return nil, "", err
	}

	token, err := m.signer.Sign(s.ID, s.ExpiresAt)
	if err != nil {
		_ = m.store.Delete(ctx, s.ID)
		return nil, "", err
	}
	return s, token, nil
}

// Load resolves token to its live session. Any bad, expired or unknown token yields
// apperrors.ErrSessionNotFound; store failures are returned as is.
func (m *Manager) Load(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, apperrors.ErrSessionNotFound
	}
	id, err := m.signer.Parse(token)
	if err != nil {
		return nil, apperrors.ErrSessionNotFound
	}
	return m.store.Get(ctx, id)
}

// Destroy removes the session named by token. Tokens that name no session are ignored.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	id, err := m.signer.Parse(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) || errors.Is(err, auth.ErrInvalidToken) {
			return nil
		}
		return err
	}
	return m.store.Delete(ctx, id)
}

// Close releases the underlying store
func (m *Manager) Close() error {
	return m.store.Close()
}

func newID() (string, error) {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
