package noticias

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/pautadigital/noticias-api/internal/db"
)

// CommentsByFilter retrieves a page of comments, optionally restricted to a
// parent news article, sorted by createdAt DESC.
func (m *Manager) CommentsByFilter(ctx context.Context, newsID *int, page, pageSize int) (*CommentPage, error) {
	page, pageSize = normalizePage(page, pageSize)

	rows, err := m.store.Comments(ctx, newsID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("db get comments: %w", err)
	}

	count, err := m.store.CommentsCount(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get comments count: %w", err)
	}

	return &CommentPage{
		Items:       NewComments(rows),
		TotalPages:  totalPages(count, pageSize),
		CurrentPage: page,
	}, nil
}

// CreateComment persists a comment and appends its id to the parent news.
// The two writes are not atomic: if the parent is gone after the comment row
// lands, the orphaned row stays and the caller gets ErrNotFound. Orphans are
// accepted, not repaired.
func (m *Manager) CreateComment(ctx context.Context, ident Identity, content string, newsID int) (*Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("content is required: %w", ErrValidation)
	}

	row := &db.Comment{
		Content:   content,
		UserID:    ident.ID,
		NewsID:    &newsID,
		CreatedAt: time.Now(),
	}
	if err := m.store.InsertComment(ctx, row); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	news, err := m.store.NewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	}
	if news == nil {
		m.log.Warn("comment orphaned, parent news missing", "commentId", row.ID, "newsId", newsID)
		return nil, fmt.Errorf("news %d: %w", newsID, ErrNotFound)
	}

	if err := m.store.UpdateNewsCommentIDs(ctx, newsID, append(news.CommentIDs, row.ID)); err != nil {
		// the parent can vanish between the check above and the append
		if errors.Is(err, pg.ErrNoRows) {
			m.log.Warn("comment orphaned, parent news missing", "commentId", row.ID, "newsId", newsID)
			return nil, fmt.Errorf("news %d: %w", newsID, ErrNotFound)
		}
		return nil, fmt.Errorf("append comment to news: %w", err)
	}

	m.log.Info("comment created", "commentId", row.ID, "newsId", newsID)

	comment := NewComment(row)
	return &comment, nil
}

// DeleteComment removes a comment. Only the owner may delete it; admins get
// no override. The id is left dangling in the parent's sequence and is
// skipped when the sequence is resolved at read time.
func (m *Manager) DeleteComment(ctx context.Context, ident Identity, commentID int) error {
	row, err := m.store.CommentByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("db get comment by id: %w", err)
	}
	if row == nil {
		return fmt.Errorf("comment %d: %w", commentID, ErrNotFound)
	}

	if row.UserID != ident.ID {
		return fmt.Errorf("only the comment owner may delete it: %w", ErrForbidden)
	}

	if err := m.store.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	m.log.Info("comment deleted", "commentId", commentID)
	return nil
}
