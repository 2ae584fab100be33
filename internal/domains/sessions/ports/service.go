package ports

import (
	"context"
	"errors"
)

// ErrUnauthorized is returned when a presented token is missing or does not match.
var ErrUnauthorized = errors.New("missing or invalid session token")

// Service issues and checks the single back-office session token.
type Service interface {
	Issue(ctx context.Context) (string, error)
	Revoke(ctx context.Context) error
	Verify(ctx context.Context, token string) error
}
