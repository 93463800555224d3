package noticias

import (
	"context"
	"fmt"
)

// ToggleSaved flips membership of a news id in the user's saved set: present
// means remove, absent means add. The user row is re-fetched immediately
// before mutating to narrow the lost-update window, and the persisted set is
// de-duplicated so racing toggles can never leave a duplicate entry. Whether
// the news id still resolves is not checked here.
func (m *Manager) ToggleSaved(ctx context.Context, userID, newsID int) (ToggleAction, error) {
	user, err := m.store.UserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("db get user by id: %w", err)
	}
	if user == nil {
		return "", fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}

	saved := make([]int, 0, len(user.SavedNewsIDs)+1)
	seen := make(map[int]bool, len(user.SavedNewsIDs)+1)
	action := ActionAdded
	for _, id := range user.SavedNewsIDs {
		if id == newsID {
			action = ActionRemoved
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		saved = append(saved, id)
	}
	if action == ActionAdded {
		saved = append(saved, newsID)
	}

	if err := m.store.UpdateUserSavedNews(ctx, userID, saved); err != nil {
		return "", fmt.Errorf("update saved news: %w", err)
	}

	m.log.Info("saved news toggled", "userId", userID, "newsId", newsID, "action", action)
	return action, nil
}

// SavedNews resolves the user's saved set to news articles. Ids pointing at
// deleted news are dropped here, at read time; the stored set is left alone.
func (m *Manager) SavedNews(ctx context.Context, userID int) ([]News, error) {
	user, err := m.store.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("db get user by id: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}

	rows, err := m.store.NewsByIDs(ctx, user.SavedNewsIDs)
	if err != nil {
		return nil, fmt.Errorf("db get saved news: %w", err)
	}

	return NewNewsList(rows), nil
}
