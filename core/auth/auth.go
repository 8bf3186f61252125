package auth

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrMissingUser is returned when no user id is supplied.
	ErrMissingUser = errors.New("user id is required")
	// ErrNotAllowed is returned when the user is not on the allow-list.
	ErrNotAllowed = errors.New("user is not authorized")
)

// Config holds the user allow-list.
type Config struct {
	// AllowedUsers lists the user ids that may call the engine. Empty allows any user.
	AllowedUsers []string `mapstructure:"allowed_users" default:""`
}

// Authorizer validates the caller before any store access.
type Authorizer interface {
	Authorize(ctx context.Context, userID string) error
}

// AllowList authorizes users named in a fixed list.
type AllowList struct {
	users map[string]struct{}
}

// NewAllowList builds an authorizer from cfg.
func NewAllowList(cfg Config) *AllowList {
	users := make(map[string]struct{}, len(cfg.AllowedUsers))
	for _, u := range cfg.AllowedUsers {
		if u != "" {
			users[u] = struct{}{}
		}
	}
	return &AllowList{users: users}
}

// Authorize fails for an empty user id, or for a user missing from a non-empty list.
func (a *AllowList) Authorize(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrMissingUser
	}
	if len(a.users) == 0 {
		return nil
	}
	if _, ok := a.users[userID]; !ok {
		return fmt.Errorf("%w: %s", ErrNotAllowed, userID)
	}
	return nil
}
