package noticias

import (
	"context"
	"time"

	"github.com/pautadigital/noticias-api/internal/db"
)

// Store is the entity-store surface the managers depend on. *db.Repository
// implements it; tests substitute a mock.
type Store interface {
	News(ctx context.Context, category *string, userID *int, page, pageSize int) ([]db.News, error)
	NewsCount(ctx context.Context, category *string, userID *int) (int, error)
	NewsByID(ctx context.Context, newsID int) (*db.News, error)
	NewsByIDs(ctx context.Context, newsIDs []int) ([]db.News, error)
	InsertNews(ctx context.Context, news *db.News) error
	UpdateNews(ctx context.Context, news *db.News) error
	DeleteNews(ctx context.Context, newsID int) error
	RecentNewsSince(ctx context.Context, since time.Time) ([]db.News, error)
	LatestNews(ctx context.Context, limit int) ([]db.News, error)
	LatestExclusiveNews(ctx context.Context) (*db.News, error)
	SampleNewsByCategory(ctx context.Context, category string, limit int) ([]db.News, error)
	IncrementNewsViews(ctx context.Context, newsID int) error

	Comments(ctx context.Context, newsID *int, page, pageSize int) ([]db.Comment, error)
	CommentsCount(ctx context.Context, newsID *int) (int, error)
	CommentByID(ctx context.Context, commentID int) (*db.Comment, error)
	CommentsByIDs(ctx context.Context, commentIDs []int) ([]db.Comment, error)
	InsertComment(ctx context.Context, comment *db.Comment) error
	DeleteComment(ctx context.Context, commentID int) error
	DeleteCommentsByIDs(ctx context.Context, commentIDs []int) error
	UpdateNewsCommentIDs(ctx context.Context, newsID int, commentIDs []int) error

	UserByID(ctx context.Context, userID int) (*db.User, error)
	UpdateUserSavedNews(ctx context.Context, userID int, newsIDs []int) error
}
