package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

// News retrieves news with optional filtering by category and author user,
// with pagination. Results are sorted by createdAt DESC and include the
// author's user record.
func (r *Repository) News(ctx context.Context, category *string, userID *int,
	page, pageSize int) ([]News, error) {

	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	offset := (page - 1) * pageSize

	var news []News
	query := r.db.ModelContext(ctx, &news).
		Relation("User")

	if category != nil {
		query = query.Where(`"t"."category" = ?`, *category)
	}

	if userID != nil {
		query = query.Where(`"t"."userId" = ?`, *userID)
	}

	err := query.
		OrderExpr(`"t"."createdAt" DESC`).
		Limit(pageSize).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

// NewsCount counts news matching the same filters as News. Kept as a separate
// query so pagination metadata is computed over the full match set, not the
// returned page.
func (r *Repository) NewsCount(ctx context.Context, category *string, userID *int) (int, error) {
	query := r.db.ModelContext(ctx, (*News)(nil))

	if category != nil {
		query = query.Where(`"t"."category" = ?`, *category)
	}

	if userID != nil {
		query = query.Where(`"t"."userId" = ?`, *userID)
	}

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get news count: %w", err)
	}

	return count, nil
}

func (r *Repository) NewsByID(ctx context.Context, newsID int) (*News, error) {
	news := &News{}
	err := r.db.ModelContext(ctx, news).
		Relation("User").
		Where(`"t"."newsId" = ?`, newsID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}

	return news, nil
}

func (r *Repository) NewsByIDs(ctx context.Context, newsIDs []int) ([]News, error) {
	if len(newsIDs) == 0 {
		return []News{}, nil
	}

	news := []News{}
	err := r.db.ModelContext(ctx, &news).
		Where(`"t"."newsId" IN (?)`, pg.In(newsIDs)).
		OrderExpr(`"t"."createdAt" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query news by ids: %w", err)
	}

	return news, nil
}

func (r *Repository) InsertNews(ctx context.Context, news *News) error {
	_, err := r.db.ModelContext(ctx, news).Insert()
	if err != nil {
		return fmt.Errorf("failed to insert news: %w", err)
	}

	return nil
}

func (r *Repository) UpdateNews(ctx context.Context, news *News) error {
	result, err := r.db.ModelContext(ctx, news).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update news: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pg.ErrNoRows
	}

	return nil
}

func (r *Repository) DeleteNews(ctx context.Context, newsID int) error {
	result, err := r.db.ModelContext(ctx, (*News)(nil)).
		Where(`"t"."newsId" = ?`, newsID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete news: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pg.ErrNoRows
	}

	return nil
}

// RecentNewsSince retrieves all news created at or after the given time,
// sorted by createdAt DESC.
func (r *Repository) RecentNewsSince(ctx context.Context, since time.Time) ([]News, error) {
	var news []News
	err := r.db.ModelContext(ctx, &news).
		Where(`"t"."createdAt" >= ?`, since).
		OrderExpr(`"t"."createdAt" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query recent news: %w", err)
	}

	return news, nil
}

func (r *Repository) LatestNews(ctx context.Context, limit int) ([]News, error) {
	var news []News
	err := r.db.ModelContext(ctx, &news).
		OrderExpr(`"t"."createdAt" DESC`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query latest news: %w", err)
	}

	return news, nil
}

// LatestExclusiveNews returns the newest news flagged exclusive, or nil when
// none exists.
func (r *Repository) LatestExclusiveNews(ctx context.Context) (*News, error) {
	news := &News{}
	err := r.db.ModelContext(ctx, news).
		Where(`"t"."exclusive" = ?`, true).
		OrderExpr(`"t"."createdAt" DESC`).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get latest exclusive news: %w", err)
	}

	return news, nil
}

// SampleNewsByCategory returns up to limit news from a category, uniformly
// sampled without replacement in the database.
func (r *Repository) SampleNewsByCategory(ctx context.Context, category string, limit int) ([]News, error) {
	news := []News{}
	err := r.db.ModelContext(ctx, &news).
		Where(`"t"."category" = ?`, category).
		OrderExpr(`random()`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to sample news by category: %w", err)
	}

	return news, nil
}

func (r *Repository) IncrementNewsViews(ctx context.Context, newsID int) error {
	_, err := r.db.ModelContext(ctx, (*News)(nil)).
		Set(`"views" = "views" + 1`).
		Where(`"newsId" = ?`, newsID).
		Update()
	if err != nil {
		return fmt.Errorf("failed to increment news views: %w", err)
	}

	return nil
}
