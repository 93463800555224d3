package rest

import "github.com/pautadigital/noticias-api/internal/noticias"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

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
		News:      c.NewsID,
		Post:      c.PostID,
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
		news.Comments = Map(n.Comments, NewComment)
	}

	return news
}

func NewNewsPage(p *noticias.NewsPage) NewsPage {
	return NewsPage{
		News:        Map(p.Items, NewNews),
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
	}
}

func NewCommentPage(p *noticias.CommentPage) CommentPage {
	return CommentPage{
		Comments:    Map(p.Items, NewComment),
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
	}
}

func NewDigest(d *noticias.Digest) Digest {
	digest := Digest{
		Relevant: Map(d.Relevant, NewNews),
		Recent:   Map(d.Recent, NewNews),
		Esporte:  Map(d.Esporte, NewNews),
		Moda:     Map(d.Moda, NewNews),
	}

	if d.Exclusive != nil {
		news := NewNews(*d.Exclusive)
		digest.Exclusive = &news
	}

	return digest
}
