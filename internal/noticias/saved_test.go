package noticias

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pautadigital/noticias-api/internal/db"
)

func TestToggleSaved(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		manager := NewManager(&mockStore{}, noOpLogger())
		_, err := manager.ToggleSaved(ctx, 404, 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("toggle sequence flips membership", func(t *testing.T) {
		store := newFakeStore()
		user := store.addUser(db.User{Username: "leitor"})
		manager := NewManager(store, noOpLogger())

		action, err := manager.ToggleSaved(ctx, user.ID, 10)
		require.NoError(t, err)
		assert.Equal(t, ActionAdded, action)

		action, err = manager.ToggleSaved(ctx, user.ID, 20)
		require.NoError(t, err)
		assert.Equal(t, ActionAdded, action)

		action, err = manager.ToggleSaved(ctx, user.ID, 10)
		require.NoError(t, err)
		assert.Equal(t, ActionRemoved, action)

		saved, err := store.UserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{20}, saved.SavedNewsIDs)
	})

	t.Run("news existence is not checked", func(t *testing.T) {
		store := newFakeStore()
		user := store.addUser(db.User{Username: "leitor"})
		manager := NewManager(store, noOpLogger())

		action, err := manager.ToggleSaved(ctx, user.ID, 9999)
		require.NoError(t, err)
		assert.Equal(t, ActionAdded, action)
	})

	t.Run("pre-existing duplicates are collapsed on write", func(t *testing.T) {
		var written []int
		store := &mockStore{
			userByIDFunc: func(ctx context.Context, userID int) (*db.User, error) {
				return &db.User{ID: userID, SavedNewsIDs: []int{5, 5, 7, 5}}, nil
			},
			updateUserSavedNewsFunc: func(ctx context.Context, userID int, newsIDs []int) error {
				written = newsIDs
				return nil
			},
		}
		manager := NewManager(store, noOpLogger())

		action, err := manager.ToggleSaved(ctx, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, ActionRemoved, action)
		assert.Equal(t, []int{7}, written)
	})

	t.Run("racing toggles never persist a duplicate", func(t *testing.T) {
		store := newFakeStore()
		user := store.addUser(db.User{Username: "leitor"})
		manager := NewManager(store, noOpLogger())

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(newsID int) {
				defer wg.Done()
				_, err := manager.ToggleSaved(ctx, user.ID, newsID)
				assert.NoError(t, err)
			}(i % 5)
		}
		wg.Wait()

		saved, err := store.UserByID(ctx, user.ID)
		require.NoError(t, err)
		seen := map[int]bool{}
		for _, id := range saved.SavedNewsIDs {
			assert.False(t, seen[id], "news %d saved twice", id)
			seen[id] = true
		}
	})
}

func TestSavedNews(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		manager := NewManager(&mockStore{}, noOpLogger())
		_, err := manager.SavedNews(ctx, 404)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("deleted news drop out of the listing", func(t *testing.T) {
		store := newFakeStore()
		ctx := context.Background()
		kept := &db.News{Title: "fica"}
		require.NoError(t, store.InsertNews(ctx, kept))
		gone := &db.News{Title: "some"}
		require.NoError(t, store.InsertNews(ctx, gone))
		user := store.addUser(db.User{Username: "leitor", SavedNewsIDs: []int{kept.ID, gone.ID}})
		manager := NewManager(store, noOpLogger())

		require.NoError(t, store.DeleteNews(ctx, gone.ID))

		news, err := manager.SavedNews(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, news, 1)
		assert.Equal(t, kept.ID, news[0].ID)

		// the stored set keeps the dangling id
		row, err := store.UserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{kept.ID, gone.ID}, row.SavedNewsIDs)
	})
}
