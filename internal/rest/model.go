package rest

import "time"

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Comment struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	News      *int      `json:"news,omitempty"`
	Post      *int      `json:"post,omitempty"`
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

type CommentPage struct {
	Comments    []Comment `json:"comments"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
}

type Digest struct {
	Relevant  []News `json:"relevant"`
	Recent    []News `json:"recent"`
	Exclusive *News  `json:"exclusive"`
	Esporte   []News `json:"esporte"`
	Moda      []News `json:"moda"`
}

type ToggleResponse struct {
	Action string `json:"action"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
