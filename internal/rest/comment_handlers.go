package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type CommentListRequest struct {
	NewsID *int `query:"newsId"`
	Page   *int `query:"page"`
	Limit  *int `query:"limit"`
}

type CommentBody struct {
	Content string `json:"content"`
	News    int    `json:"news"`
}

// Comments handles GET /api/v1/comments
// @Summary List comments
// @Description Retrieves comments with optional parent news filter and pagination, sorted by createdAt DESC
// @Tags comments
// @Produce json
// @Param newsId query int false "Filter by parent news ID"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.CommentPage
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/comments [get]
func (h *Handler) Comments(c echo.Context) error {
	var req CommentListRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request parameters")
	}

	page, pageSize := pageParams(req.Page, req.Limit)

	result, err := h.m.CommentsByFilter(c.Request().Context(), req.NewsID, page, pageSize)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewCommentPage(result))
}

// CreateComment handles POST /api/v1/comments
// @Summary Create a comment on a news article
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body rest.CommentBody true "Comment content and parent news ID"
// @Success 201 {object} rest.Comment
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/comments [post]
func (h *Handler) CreateComment(c echo.Context) error {
	ident, ok := h.requireIdentity(c)
	if !ok {
		return nil
	}

	var body CommentBody
	if err := c.Bind(&body); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	comment, err := h.m.CreateComment(c.Request().Context(), ident, body.Content, body.News)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, NewComment(*comment))
}

// DeleteComment handles DELETE /api/v1/comments/:id
// @Summary Delete a comment (owner only)
// @Tags comments
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/v1/comments/{id} [delete]
func (h *Handler) DeleteComment(c echo.Context) error {
	ident, ok := h.requireIdentity(c)
	if !ok {
		return nil
	}

	commentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c, err, "invalid id")
	}

	if err := h.m.DeleteComment(c.Request().Context(), ident, commentID); err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
