package rpc

import (
	"time"
)

type NewsFilter struct {
	//category optional category filter
	Category *string `json:"category,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//limit=10 items per page
	Limit *int `json:"limit,omitempty"`
}

func (f NewsFilter) pageParams() (int, int) {
	page, limit := 0, 0
	if f.Page != nil {
		page = *f.Page
	}
	if f.Limit != nil {
		limit = *f.Limit
	}
	return page, limit
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Comment struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type News struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	Image       string     `json:"image"`
	Category    *string    `json:"category,omitempty"`
	Views       int        `json:"views"`
	Likes       []int      `json:"likes"`
	Exclusive   bool       `json:"exclusive"`
	User        *User      `json:"user,omitempty"`
	Comments    []Comment  `json:"comments,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type NewsPage struct {
	News        []News `json:"news"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
}

type Digest struct {
	Relevant  []News `json:"relevant"`
	Recent    []News `json:"recent"`
	Exclusive *News  `json:"exclusive"`
	Esporte   []News `json:"esporte"`
	Moda      []News `json:"moda"`
}
