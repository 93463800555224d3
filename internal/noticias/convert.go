package noticias

import (
	"github.com/pautadigital/noticias-api/internal/db"
)

func NewUserRef(u *db.User) *UserRef {
	if u == nil {
		return nil
	}
	return &UserRef{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

func NewNews(n *db.News) News {
	return News{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Content:     n.Content,
		Author:      n.Author,
		Image:       n.Image,
		Category:    n.Category,
		Views:       n.Views,
		LikeUserIDs: n.LikeUserIDs,
		CommentIDs:  n.CommentIDs,
		Exclusive:   n.Exclusive,
		UserID:      n.UserID,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
		User:        NewUserRef(n.User),
	}
}

func NewNewsList(list []db.News) []News {
	result := make([]News, len(list))
	for i := range list {
		result[i] = NewNews(&list[i])
	}
	return result
}

func NewComment(c *db.Comment) Comment {
	return Comment{
		ID:        c.ID,
		Content:   c.Content,
		UserID:    c.UserID,
		NewsID:    c.NewsID,
		PostID:    c.PostID,
		CreatedAt: c.CreatedAt,
		User:      NewUserRef(c.User),
	}
}

func NewComments(list []db.Comment) []Comment {
	result := make([]Comment, len(list))
	for i := range list {
		result[i] = NewComment(&list[i])
	}
	return result
}
