package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// Comments retrieves comments with optional filtering by parent news, with
// pagination. Results are sorted by createdAt DESC and include the comment
// author's user record.
func (r *Repository) Comments(ctx context.Context, newsID *int, page, pageSize int) ([]Comment, error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	offset := (page - 1) * pageSize

	var comments []Comment
	query := r.db.ModelContext(ctx, &comments).
		Relation("User")

	if newsID != nil {
		query = query.Where(`"t"."newsId" = ?`, *newsID)
	}

	err := query.
		OrderExpr(`"t"."createdAt" DESC`).
		Limit(pageSize).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

func (r *Repository) CommentsCount(ctx context.Context, newsID *int) (int, error) {
	query := r.db.ModelContext(ctx, (*Comment)(nil))

	if newsID != nil {
		query = query.Where(`"t"."newsId" = ?`, *newsID)
	}

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get comments count: %w", err)
	}

	return count, nil
}

func (r *Repository) CommentByID(ctx context.Context, commentID int) (*Comment, error) {
	comment := &Comment{}
	err := r.db.ModelContext(ctx, comment).
		Relation("User").
		Where(`"t"."commentId" = ?`, commentID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

// CommentsByIDs resolves a list of comment ids, skipping ids that no longer
// exist. Results are sorted by commentId ASC so the parent's ordering is
// preserved for append-only id sequences.
func (r *Repository) CommentsByIDs(ctx context.Context, commentIDs []int) ([]Comment, error) {
	if len(commentIDs) == 0 {
		return []Comment{}, nil
	}

	comments := []Comment{}
	err := r.db.ModelContext(ctx, &comments).
		Relation("User").
		Where(`"t"."commentId" IN (?)`, pg.In(commentIDs)).
		OrderExpr(`"t"."commentId" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query comments by ids: %w", err)
	}

	return comments, nil
}

func (r *Repository) InsertComment(ctx context.Context, comment *Comment) error {
	_, err := r.db.ModelContext(ctx, comment).Insert()
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

func (r *Repository) DeleteComment(ctx context.Context, commentID int) error {
	result, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"t"."commentId" = ?`, commentID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pg.ErrNoRows
	}

	return nil
}

// DeleteCommentsByIDs bulk-deletes comments. Deleting an empty set is a no-op.
func (r *Repository) DeleteCommentsByIDs(ctx context.Context, commentIDs []int) error {
	if len(commentIDs) == 0 {
		return nil
	}

	_, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"t"."commentId" IN (?)`, pg.In(commentIDs)).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete comments by ids: %w", err)
	}

	return nil
}

// UpdateNewsCommentIDs replaces the comment id sequence on a news row. The
// referential integrity manager is the only caller.
func (r *Repository) UpdateNewsCommentIDs(ctx context.Context, newsID int, commentIDs []int) error {
	result, err := r.db.ModelContext(ctx, (*News)(nil)).
		Set(`"commentIds" = ?`, pg.Array(commentIDs)).
		Where(`"newsId" = ?`, newsID).
		Update()
	if err != nil {
		return fmt.Errorf("failed to update news comment ids: %w", err)
	}
	if result.RowsAffected() == 0 {
		return pg.ErrNoRows
	}

	return nil
}
