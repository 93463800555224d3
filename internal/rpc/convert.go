package rpc

import "github.com/pautadigital/noticias-api/internal/noticias"

func NewUser(u *noticias.UserRef) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

func NewComment(c noticias.Comment) Comment {
	return Comment{
		ID:        c.ID,
		Content:   c.Content,
		User:      NewUser(c.User),
		CreatedAt: c.CreatedAt,
	}
}

func NewNews(n noticias.News) News {
	news := News{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Content:     n.Content,
		Author:      n.Author,
		Image:       n.Image,
		Category:    n.Category,
		Views:       n.Views,
		Likes:       n.LikeUserIDs,
		Exclusive:   n.Exclusive,
		User:        NewUser(n.User),
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}

	if len(n.Comments) > 0 {
		news.Comments = make([]Comment, len(n.Comments))
		for i := range n.Comments {
			news.Comments[i] = NewComment(n.Comments[i])
		}
	}

	return news
}

func NewNewsList(list []noticias.News) []News {
	result := make([]News, len(list))
	for i := range list {
		result[i] = NewNews(list[i])
	}
	return result
}

func NewNewsPage(p *noticias.NewsPage) NewsPage {
	return NewsPage{
		News:        NewNewsList(p.Items),
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
	}
}

func NewDigest(d *noticias.Digest) Digest {
	digest := Digest{
		Relevant: NewNewsList(d.Relevant),
		Recent:   NewNewsList(d.Recent),
		Esporte:  NewNewsList(d.Esporte),
		Moda:     NewNewsList(d.Moda),
	}

	if d.Exclusive != nil {
		news := NewNews(*d.Exclusive)
		digest.Exclusive = &news
	}

	return digest
}
