package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) UserByID(ctx context.Context, userID int) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."userId" = ?`, userID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *Repository) UserByUsername(ctx context.Context, username string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."username" = ?`, username).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."email" = ?`, email).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *Repository) InsertUser(ctx context.Context, user *User) error {
	_, err := r.db.ModelContext(ctx, user).Insert()
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateUserSavedNews replaces the saved-news id set in a single column
// update so racing toggles cannot clobber unrelated user fields.
func (r *Repository) UpdateUserSavedNews(ctx context.Context, userID int, newsIDs []int) error {
	result, err := r.db.ModelContext(ctx, (*User)(nil)).
		Set(`"savedNewsIds" = ?`, pg.Array(newsIDs)).
		Where(`"userId" = ?`, userID).
		Update()
	if err != nil {
		return fmt.Errorf("failed to update user saved news: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pg.ErrNoRows
	}

	return nil
}
