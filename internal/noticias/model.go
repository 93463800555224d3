package noticias

import (
	"time"
)

// Identity is the authenticated caller, resolved by a collaborator before
// any manager method runs.
type Identity struct {
	ID      int
	IsAdmin bool
}

// UserRef is the public projection of a user attached to news and comments:
// username and email only, never credentials.
type UserRef struct {
	ID       int
	Username string
	Email    string
}

type News struct {
	ID          int
	Title       string
	Description string
	Content     string
	Author      string
	Image       string
	Category    *string
	Views       int
	LikeUserIDs []int
	CommentIDs  []int
	Exclusive   bool
	UserID      int
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	User     *UserRef
	Comments []Comment
}

// Score is the relevance score used by the front-page curator.
func (n News) Score() int {
	return len(n.LikeUserIDs) + len(n.CommentIDs) + n.Views
}

type Comment struct {
	ID        int
	Content   string
	UserID    int
	NewsID    *int
	PostID    *int
	CreatedAt time.Time

	User *UserRef
}

// NewsFields is the validated raw input for news creation and update. Pointer
// fields distinguish "absent" from a zero value so updates stay partial.
type NewsFields struct {
	Title       string
	Description string
	Content     string
	Author      string
	Image       string
	Category    *string
	Exclusive   *bool
}

type NewsPage struct {
	Items       []News
	TotalPages  int
	CurrentPage int
}

type CommentPage struct {
	Items       []Comment
	TotalPages  int
	CurrentPage int
}

// Digest is the composite front-page payload. Its parts are independent
// queries and may be weakly inconsistent under concurrent writes.
type Digest struct {
	Relevant  []News
	Recent    []News
	Exclusive *News
	Esporte   []News
	Moda      []News
}

// ToggleAction reports which way a saved-news toggle went.
type ToggleAction string

const (
	ActionAdded   ToggleAction = "added"
	ActionRemoved ToggleAction = "removed"
)
