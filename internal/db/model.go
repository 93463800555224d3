// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Comment struct {
		ID, Content, UserID, NewsID, PostID, CreatedAt string

		User string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	News struct {
		ID, Title, Description, Content, Author, Image, Category, Views,
		LikeUserIDs, CommentIDs, Exclusive, UserID, CreatedAt, UpdatedAt string

		User string
	}
	User struct {
		ID, Username, Email, PasswordHash, IsAdmin, SavedNewsIDs, CreatedAt, UpdatedAt string
	}
}{
	Comment: struct {
		ID, Content, UserID, NewsID, PostID, CreatedAt string

		User string
	}{
		ID:        "commentId",
		Content:   "content",
		UserID:    "userId",
		NewsID:    "newsId",
		PostID:    "postId",
		CreatedAt: "createdAt",

		User: "User",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	News: struct {
		ID, Title, Description, Content, Author, Image, Category, Views,
		LikeUserIDs, CommentIDs, Exclusive, UserID, CreatedAt, UpdatedAt string

		User string
	}{
		ID:          "newsId",
		Title:       "title",
		Description: "description",
		Content:     "content",
		Author:      "author",
		Image:       "image",
		Category:    "category",
		Views:       "views",
		LikeUserIDs: "likeUserIds",
		CommentIDs:  "commentIds",
		Exclusive:   "exclusive",
		UserID:      "userId",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",

		User: "User",
	},
	User: struct {
		ID, Username, Email, PasswordHash, IsAdmin, SavedNewsIDs, CreatedAt, UpdatedAt string
	}{
		ID:           "userId",
		Username:     "username",
		Email:        "email",
		PasswordHash: "passwordHash",
		IsAdmin:      "isAdmin",
		SavedNewsIDs: "savedNewsIds",
		CreatedAt:    "createdAt",
		UpdatedAt:    "updatedAt",
	},
}

var Tables = struct {
	Comment struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	News struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	News: struct {
		Name, Alias string
	}{
		Name:  "news",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID        int       `pg:"commentId,pk"`
	Content   string    `pg:"content,use_zero"`
	UserID    int       `pg:"userId,use_zero"`
	NewsID    *int      `pg:"newsId"`
	PostID    *int      `pg:"postId"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`

	User *User `pg:"fk:userId,rel:has-one"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID          int        `pg:"newsId,pk"`
	Title       string     `pg:"title,use_zero"`
	Description string     `pg:"description,use_zero"`
	Content     string     `pg:"content,use_zero"`
	Author      string     `pg:"author,use_zero"`
	Image       string     `pg:"image,use_zero"`
	Category    *string    `pg:"category"`
	Views       int        `pg:"views,use_zero"`
	LikeUserIDs []int      `pg:"likeUserIds,array,use_zero"`
	CommentIDs  []int      `pg:"commentIds,array,use_zero"`
	Exclusive   bool       `pg:"exclusive,use_zero"`
	UserID      int        `pg:"userId,use_zero"`
	CreatedAt   time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt   *time.Time `pg:"updatedAt"`

	User *User `pg:"fk:userId,rel:has-one"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           int        `pg:"userId,pk"`
	Username     string     `pg:"username,use_zero"`
	Email        string     `pg:"email,use_zero"`
	PasswordHash string     `pg:"passwordHash,use_zero"`
	IsAdmin      bool       `pg:"isAdmin,use_zero"`
	SavedNewsIDs []int      `pg:"savedNewsIds,array,use_zero"`
	CreatedAt    time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt    *time.Time `pg:"updatedAt"`
}
