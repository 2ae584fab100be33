package application

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Apurer/huerto-store/internal/domains/sessions/ports"
	"github.com/Apurer/huerto-store/internal/platform/localstore"
)

// Service keeps the session token as a plain string under the token key.
// Issuing a new token replaces the previous one.
type Service struct {
	store    localstore.Store
	newToken func() string
	onRevoke []func(token string)
}

var _ ports.Service = (*Service)(nil)

type Option func(*Service)

// WithTokenGenerator overrides the UUID generator.
func WithTokenGenerator(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.newToken = gen
		}
	}
}

// WithRevokeHook runs hook with the outgoing token whenever a token is replaced or revoked.
func WithRevokeHook(hook func(token string)) Option {
	return func(s *Service) {
		if hook != nil {
			s.onRevoke = append(s.onRevoke, hook)
		}
	}
}

func NewService(store localstore.Store, opts ...Option) *Service {
	s := &Service{store: store, newToken: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue stores and returns a fresh token.
func (s *Service) Issue(ctx context.Context) (string, error) {
	previous, err := s.current(ctx)
	if err != nil {
		return "", err
	}
	token := s.newToken()
	if err := s.store.Set(ctx, localstore.KeyToken, token); err != nil {
		return "", fmt.Errorf("store session token: %w", err)
	}
	if previous != "" {
		s.revoked(previous)
	}
	return token, nil
}

// Revoke forgets the stored token. Revoking without a token is a no-op.
func (s *Service) Revoke(ctx context.Context) error {
	previous, err := s.current(ctx)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, localstore.KeyToken); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}
	if previous != "" {
		s.revoked(previous)
	}
	return nil
}

// Verify accepts token only when it equals the stored one.
func (s *Service) Verify(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ports.ErrUnauthorized
	}
	stored, err := s.current(ctx)
	if err != nil {
		return err
	}
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(token)) != 1 {
		return ports.ErrUnauthorized
	}
	return nil
}

func (s *Service) current(ctx context.Context) (string, error) {
	if s.store == nil {
		return "", localstore.ErrNotConfigured
	}
	token, ok, err := s.store.Get(ctx, localstore.KeyToken)
	if err != nil {
		return "", fmt.Errorf("load session token: %w", err)
	}
	if !ok {
		return "", nil
	}
	return strings.TrimSpace(token), nil
}

func (s *Service) revoked(token string) {
	for _, hook := range s.onRevoke {
		hook(token)
	}
}
