package noticias

import (
	"context"
	"fmt"
	"time"

	"github.com/pautadigital/noticias-api/internal/db"
)

// NewsByFilter retrieves a page of news with optional category and author
// filters, sorted by createdAt DESC. Total pages come from a separate count
// query over the same filters, so a page past the end returns empty items
// with correct metadata, not an error.
func (m *Manager) NewsByFilter(ctx context.Context, category *string, userID *int, page, pageSize int) (*NewsPage, error) {
	page, pageSize = normalizePage(page, pageSize)

	rows, err := m.store.News(ctx, category, userID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("db get news: %w", err)
	}

	count, err := m.store.NewsCount(ctx, category, userID)
	if err != nil {
		return nil, fmt.Errorf("db get news count: %w", err)
	}

	return &NewsPage{
		Items:       NewNewsList(rows),
		TotalPages:  totalPages(count, pageSize),
		CurrentPage: page,
	}, nil
}

// NewsByID retrieves a single news article with its comments resolved; each
// comment carries the owner's username and email only. Ids in the comment
// sequence that no longer resolve are skipped. The views counter is bumped
// as a side effect; a failed bump is logged, never surfaced.
func (m *Manager) NewsByID(ctx context.Context, newsID int) (*News, error) {
	row, err := m.store.NewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("news %d: %w", newsID, ErrNotFound)
	}

	if err := m.store.IncrementNewsViews(ctx, newsID); err != nil {
		m.log.Error("failed to increment news views", "newsId", newsID, "error", err)
	}

	comments, err := m.store.CommentsByIDs(ctx, row.CommentIDs)
	if err != nil {
		return nil, fmt.Errorf("db get news comments: %w", err)
	}

	news := NewNews(row)
	news.Comments = NewComments(comments)
	return &news, nil
}

// CreateNews persists a news article on behalf of an admin.
func (m *Manager) CreateNews(ctx context.Context, ident Identity, fields NewsFields) (*News, error) {
	if !ident.IsAdmin {
		return nil, fmt.Errorf("only admins may create news: %w", ErrForbidden)
	}
	if err := checkNewsFields(fields); err != nil {
		return nil, err
	}

	row := &db.News{
		Title:       fields.Title,
		Description: fields.Description,
		Content:     fields.Content,
		Author:      fields.Author,
		Image:       fields.Image,
		Category:    fields.Category,
		UserID:      ident.ID,
		CreatedAt:   time.Now(),
	}
	if fields.Exclusive != nil {
		row.Exclusive = *fields.Exclusive
	}
	if err := m.store.InsertNews(ctx, row); err != nil {
		return nil, fmt.Errorf("insert news: %w", err)
	}

	m.log.Info("news created", "newsId", row.ID, "title", row.Title)

	news := NewNews(row)
	return &news, nil
}

// UpdateNews applies non-empty fields to an existing article. Admin only.
func (m *Manager) UpdateNews(ctx context.Context, ident Identity, newsID int, fields NewsFields) (*News, error) {
	if !ident.IsAdmin {
		return nil, fmt.Errorf("only admins may update news: %w", ErrForbidden)
	}
	if err := checkCategory(fields.Category); err != nil {
		return nil, err
	}

	row, err := m.store.NewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("news %d: %w", newsID, ErrNotFound)
	}

	if fields.Title != "" {
		row.Title = fields.Title
	}
	if fields.Description != "" {
		row.Description = fields.Description
	}
	if fields.Content != "" {
		row.Content = fields.Content
	}
	if fields.Author != "" {
		row.Author = fields.Author
	}
	if fields.Image != "" {
		row.Image = fields.Image
	}
	if fields.Category != nil {
		row.Category = fields.Category
	}
	if fields.Exclusive != nil {
		row.Exclusive = *fields.Exclusive
	}
	now := time.Now()
	row.UpdatedAt = &now

	if err := m.store.UpdateNews(ctx, row); err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}

	m.log.Info("news updated", "newsId", row.ID, "title", row.Title)

	news := NewNews(row)
	return &news, nil
}

// DeleteNews removes an article and cascades to its comments. Admin only.
// The comment rows go first: deleting the news row first would make its
// comment id sequence unrecoverable for cleanup.
func (m *Manager) DeleteNews(ctx context.Context, ident Identity, newsID int) error {
	if !ident.IsAdmin {
		return fmt.Errorf("only admins may delete news: %w", ErrForbidden)
	}

	row, err := m.store.NewsByID(ctx, newsID)
	if err != nil {
		return fmt.Errorf("db get news by id: %w", err)
	}
	if row == nil {
		return fmt.Errorf("news %d: %w", newsID, ErrNotFound)
	}

	if err := m.store.DeleteCommentsByIDs(ctx, row.CommentIDs); err != nil {
		return fmt.Errorf("delete news comments: %w", err)
	}

	if err := m.store.DeleteNews(ctx, newsID); err != nil {
		return fmt.Errorf("delete news: %w", err)
	}

	m.log.Info("news and associated comments deleted", "newsId", newsID, "comments", len(row.CommentIDs))
	return nil
}

func checkNewsFields(fields NewsFields) error {
	if fields.Title == "" || fields.Description == "" || fields.Content == "" ||
		fields.Author == "" || fields.Image == "" {
		return fmt.Errorf("all fields are required: %w", ErrValidation)
	}
	return checkCategory(fields.Category)
}
