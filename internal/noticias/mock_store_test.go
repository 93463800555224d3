package noticias

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/pautadigital/noticias-api/internal/db"
)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// mockStore is a manual stub implementation of Store
type mockStore struct {
	newsFunc                 func(ctx context.Context, category *string, userID *int, page, pageSize int) ([]db.News, error)
	newsCountFunc            func(ctx context.Context, category *string, userID *int) (int, error)
	newsByIDFunc             func(ctx context.Context, newsID int) (*db.News, error)
	newsByIDsFunc            func(ctx context.Context, newsIDs []int) ([]db.News, error)
	insertNewsFunc           func(ctx context.Context, news *db.News) error
	updateNewsFunc           func(ctx context.Context, news *db.News) error
	deleteNewsFunc           func(ctx context.Context, newsID int) error
	recentNewsSinceFunc      func(ctx context.Context, since time.Time) ([]db.News, error)
	latestNewsFunc           func(ctx context.Context, limit int) ([]db.News, error)
	latestExclusiveNewsFunc  func(ctx context.Context) (*db.News, error)
	sampleNewsByCategoryFunc func(ctx context.Context, category string, limit int) ([]db.News, error)
	incrementNewsViewsFunc   func(ctx context.Context, newsID int) error

	commentsFunc             func(ctx context.Context, newsID *int, page, pageSize int) ([]db.Comment, error)
	commentsCountFunc        func(ctx context.Context, newsID *int) (int, error)
	commentByIDFunc          func(ctx context.Context, commentID int) (*db.Comment, error)
	commentsByIDsFunc        func(ctx context.Context, commentIDs []int) ([]db.Comment, error)
	insertCommentFunc        func(ctx context.Context, comment *db.Comment) error
	deleteCommentFunc        func(ctx context.Context, commentID int) error
	deleteCommentsByIDsFunc  func(ctx context.Context, commentIDs []int) error
	updateNewsCommentIDsFunc func(ctx context.Context, newsID int, commentIDs []int) error

	userByIDFunc            func(ctx context.Context, userID int) (*db.User, error)
	updateUserSavedNewsFunc func(ctx context.Context, userID int, newsIDs []int) error
}

func (m *mockStore) News(ctx context.Context, category *string, userID *int, page, pageSize int) ([]db.News, error) {
	if m.newsFunc != nil {
		return m.newsFunc(ctx, category, userID, page, pageSize)
	}
	return nil, nil
}

func (m *mockStore) NewsCount(ctx context.Context, category *string, userID *int) (int, error) {
	if m.newsCountFunc != nil {
		return m.newsCountFunc(ctx, category, userID)
	}
	return 0, nil
}

func (m *mockStore) NewsByID(ctx context.Context, newsID int) (*db.News, error) {
	if m.newsByIDFunc != nil {
		return m.newsByIDFunc(ctx, newsID)
	}
	return nil, nil
}

func (m *mockStore) NewsByIDs(ctx context.Context, newsIDs []int) ([]db.News, error) {
	if m.newsByIDsFunc != nil {
		return m.newsByIDsFunc(ctx, newsIDs)
	}
	return nil, nil
}

func (m *mockStore) InsertNews(ctx context.Context, news *db.News) error {
	if m.insertNewsFunc != nil {
		return m.insertNewsFunc(ctx, news)
	}
	return nil
}

func (m *mockStore) UpdateNews(ctx context.Context, news *db.News) error {
	if m.updateNewsFunc != nil {
		return m.updateNewsFunc(ctx, news)
	}
	return nil
}

func (m *mockStore) DeleteNews(ctx context.Context, newsID int) error {
	if m.deleteNewsFunc != nil {
		return m.deleteNewsFunc(ctx, newsID)
	}
	return nil
}

func (m *mockStore) RecentNewsSince(ctx context.Context, since time.Time) ([]db.News, error) {
	if m.recentNewsSinceFunc != nil {
		return m.recentNewsSinceFunc(ctx, since)
	}
	return nil, nil
}

func (m *mockStore) LatestNews(ctx context.Context, limit int) ([]db.News, error) {
	if m.latestNewsFunc != nil {
		return m.latestNewsFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockStore) LatestExclusiveNews(ctx context.Context) (*db.News, error) {
	if m.latestExclusiveNewsFunc != nil {
		return m.latestExclusiveNewsFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) SampleNewsByCategory(ctx context.Context, category string, limit int) ([]db.News, error) {
	if m.sampleNewsByCategoryFunc != nil {
		return m.sampleNewsByCategoryFunc(ctx, category, limit)
	}
	return nil, nil
}

func (m *mockStore) IncrementNewsViews(ctx context.Context, newsID int) error {
	if m.incrementNewsViewsFunc != nil {
		return m.incrementNewsViewsFunc(ctx, newsID)
	}
	return nil
}

func (m *mockStore) Comments(ctx context.Context, newsID *int, page, pageSize int) ([]db.Comment, error) {
	if m.commentsFunc != nil {
		return m.commentsFunc(ctx, newsID, page, pageSize)
	}
	return nil, nil
}

func (m *mockStore) CommentsCount(ctx context.Context, newsID *int) (int, error) {
	if m.commentsCountFunc != nil {
		return m.commentsCountFunc(ctx, newsID)
	}
	return 0, nil
}

func (m *mockStore) CommentByID(ctx context.Context, commentID int) (*db.Comment, error) {
	if m.commentByIDFunc != nil {
		return m.commentByIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockStore) CommentsByIDs(ctx context.Context, commentIDs []int) ([]db.Comment, error) {
	if m.commentsByIDsFunc != nil {
		return m.commentsByIDsFunc(ctx, commentIDs)
	}
	return nil, nil
}

func (m *mockStore) InsertComment(ctx context.Context, comment *db.Comment) error {
	if m.insertCommentFunc != nil {
		return m.insertCommentFunc(ctx, comment)
	}
	return nil
}

func (m *mockStore) DeleteComment(ctx context.Context, commentID int) error {
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(ctx, commentID)
	}
	return nil
}

func (m *mockStore) DeleteCommentsByIDs(ctx context.Context, commentIDs []int) error {
	if m.deleteCommentsByIDsFunc != nil {
		return m.deleteCommentsByIDsFunc(ctx, commentIDs)
	}
	return nil
}

func (m *mockStore) UpdateNewsCommentIDs(ctx context.Context, newsID int, commentIDs []int) error {
	if m.updateNewsCommentIDsFunc != nil {
		return m.updateNewsCommentIDsFunc(ctx, newsID, commentIDs)
	}
	return nil
}

func (m *mockStore) UserByID(ctx context.Context, userID int) (*db.User, error) {
	if m.userByIDFunc != nil {
		return m.userByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockStore) UpdateUserSavedNews(ctx context.Context, userID int, newsIDs []int) error {
	if m.updateUserSavedNewsFunc != nil {
		return m.updateUserSavedNewsFunc(ctx, userID, newsIDs)
	}
	return nil
}
