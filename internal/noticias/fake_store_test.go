package noticias

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pautadigital/noticias-api/internal/db"
)

// fakeStore is an in-memory Store with Postgres-like query semantics, used
// for scenario tests and for racing toggles against real shared state.
type fakeStore struct {
	mu       sync.Mutex
	nextID   int
	news     map[int]db.News
	comments map[int]db.Comment
	users    map[int]db.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		news:     map[int]db.News{},
		comments: map[int]db.Comment{},
		users:    map[int]db.User{},
	}
}

func (f *fakeStore) addUser(u db.User) db.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	u.ID = f.nextID
	f.users[u.ID] = u
	return u
}

func (f *fakeStore) newsSortedByCreatedAtDesc(filter func(db.News) bool) []db.News {
	var list []db.News
	for _, n := range f.news {
		if filter == nil || filter(n) {
			list = append(list, n)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}

func (f *fakeStore) attachUser(userID int) *db.User {
	if u, ok := f.users[userID]; ok {
		copied := u
		return &copied
	}
	return nil
}

func (f *fakeStore) News(ctx context.Context, category *string, userID *int, page, pageSize int) ([]db.News, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.newsSortedByCreatedAtDesc(func(n db.News) bool {
		if category != nil && (n.Category == nil || *n.Category != *category) {
			return false
		}
		if userID != nil && n.UserID != *userID {
			return false
		}
		return true
	})
	offset := (page - 1) * pageSize
	if offset >= len(list) {
		return []db.News{}, nil
	}
	end := offset + pageSize
	if end > len(list) {
		end = len(list)
	}
	out := list[offset:end]
	for i := range out {
		out[i].User = f.attachUser(out[i].UserID)
	}
	return out, nil
}

func (f *fakeStore) NewsCount(ctx context.Context, category *string, userID *int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, n := range f.news {
		if category != nil && (n.Category == nil || *n.Category != *category) {
			continue
		}
		if userID != nil && n.UserID != *userID {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeStore) NewsByID(ctx context.Context, newsID int) (*db.News, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.news[newsID]
	if !ok {
		return nil, nil
	}
	n.User = f.attachUser(n.UserID)
	return &n, nil
}

func (f *fakeStore) NewsByIDs(ctx context.Context, newsIDs []int) ([]db.News, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []db.News{}
	for _, id := range newsIDs {
		if n, ok := f.news[id]; ok {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertNews(ctx context.Context, news *db.News) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	news.ID = f.nextID
	f.news[news.ID] = *news
	return nil
}

func (f *fakeStore) UpdateNews(ctx context.Context, news *db.News) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.news[news.ID] = *news
	return nil
}

func (f *fakeStore) DeleteNews(ctx context.Context, newsID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.news, newsID)
	return nil
}

func (f *fakeStore) RecentNewsSince(ctx context.Context, since time.Time) ([]db.News, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.newsSortedByCreatedAtDesc(func(n db.News) bool {
		return !n.CreatedAt.Before(since)
	}), nil
}

func (f *fakeStore) LatestNews(ctx context.Context, limit int) ([]db.News, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.newsSortedByCreatedAtDesc(nil)
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (f *fakeStore) LatestExclusiveNews(ctx context.Context) (*db.News, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.newsSortedByCreatedAtDesc(func(n db.News) bool { return n.Exclusive })
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (f *fakeStore) SampleNewsByCategory(ctx context.Context, category string, limit int) ([]db.News, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.newsSortedByCreatedAtDesc(func(n db.News) bool {
		return n.Category != nil && *n.Category == category
	})
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (f *fakeStore) IncrementNewsViews(ctx context.Context, newsID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n, ok := f.news[newsID]; ok {
		n.Views++
		f.news[newsID] = n
	}
	return nil
}

func (f *fakeStore) Comments(ctx context.Context, newsID *int, page, pageSize int) ([]db.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []db.Comment
	for _, c := range f.comments {
		if newsID != nil && (c.NewsID == nil || *c.NewsID != *newsID) {
			continue
		}
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	offset := (page - 1) * pageSize
	if offset >= len(list) {
		return []db.Comment{}, nil
	}
	end := offset + pageSize
	if end > len(list) {
		end = len(list)
	}
	out := list[offset:end]
	for i := range out {
		out[i].User = f.attachUser(out[i].UserID)
	}
	return out, nil
}

func (f *fakeStore) CommentsCount(ctx context.Context, newsID *int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, c := range f.comments {
		if newsID != nil && (c.NewsID == nil || *c.NewsID != *newsID) {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeStore) CommentByID(ctx context.Context, commentID int) (*db.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.comments[commentID]
	if !ok {
		return nil, nil
	}
	c.User = f.attachUser(c.UserID)
	return &c, nil
}

func (f *fakeStore) CommentsByIDs(ctx context.Context, commentIDs []int) ([]db.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []db.Comment{}
	for _, id := range commentIDs {
		if c, ok := f.comments[id]; ok {
			c.User = f.attachUser(c.UserID)
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) InsertComment(ctx context.Context, comment *db.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	comment.ID = f.nextID
	f.comments[comment.ID] = *comment
	return nil
}

func (f *fakeStore) DeleteComment(ctx context.Context, commentID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.comments, commentID)
	return nil
}

func (f *fakeStore) DeleteCommentsByIDs(ctx context.Context, commentIDs []int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range commentIDs {
		delete(f.comments, id)
	}
	return nil
}

func (f *fakeStore) UpdateNewsCommentIDs(ctx context.Context, newsID int, commentIDs []int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n, ok := f.news[newsID]; ok {
		n.CommentIDs = commentIDs
		f.news[newsID] = n
	}
	return nil
}

func (f *fakeStore) UserByID(ctx context.Context, userID int) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeStore) UpdateUserSavedNews(ctx context.Context, userID int, newsIDs []int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[userID]; ok {
		u.SavedNewsIDs = newsIDs
		f.users[userID] = u
	}
	return nil
}
