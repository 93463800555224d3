package noticias

import (
	"context"
	"fmt"
)

// UserByID returns the public projection of a user, username and email only.
func (m *Manager) UserByID(ctx context.Context, userID int) (*UserRef, error) {
	user, err := m.store.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("db get user by id: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}

	return NewUserRef(user), nil
}
