package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pautadigital/noticias-api/internal/noticias"
)

type NewsListRequest struct {
	Category *string `query:"category"`
	Page     *int    `query:"page"`
	Limit    *int    `query:"limit"`
}

type NewsBody struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	Author      string  `json:"author"`
	Image       string  `json:"image"`
	Category    *string `json:"category"`
	Exclusive   *bool   `json:"exclusive"`
}

func (b NewsBody) fields() noticias.NewsFields {
	return noticias.NewsFields{
		Title:       b.Title,
		Description: b.Description,
		Content:     b.Content,
		Author:      b.Author,
		Image:       b.Image,
		Category:    b.Category,
		Exclusive:   b.Exclusive,
	}
}

// News handles GET /api/v1/news
// @Summary List news
// @Description Retrieves news with optional category filter and pagination, sorted by createdAt DESC
// @Tags news
// @Produce json
// @Param category query string false "Filter by category"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.NewsPage
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/news [get]
func (h *Handler) News(c echo.Context) error {
	var req NewsListRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request parameters")
	}

	page, pageSize := pageParams(req.Page, req.Limit)

	result, err := h.m.NewsByFilter(c.Request().Context(), req.Category, nil, page, pageSize)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewNewsPage(result))
}

// NewsByUser handles GET /api/v1/news/user/:id
// @Summary List news by author
// @Tags news
// @Produce json
// @Param id path int true "Author user ID"
// @Success 200 {object} rest.NewsPage
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/news/user/{id} [get]
func (h *Handler) NewsByUser(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c, err, "invalid id")
	}

	var req NewsListRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err, "invalid request parameters")
	}

	page, pageSize := pageParams(req.Page, req.Limit)

	result, err := h.m.NewsByFilter(c.Request().Context(), nil, &userID, page, pageSize)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewNewsPage(result))
}

// NewsByID handles GET /api/v1/news/:id
// @Summary Get news by ID
// @Description Retrieves a single news item with its comments resolved, each comment carrying its owner's username and email
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} rest.News
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/news/{id} [get]
func (h *Handler) NewsByID(c echo.Context) error {
	newsID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c, err, "invalid id")
	}

	news, err := h.m.NewsByID(c.Request().Context(), newsID)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewNews(*news))
}

// CreateNews handles POST /api/v1/news
// @Summary Create news
// @Tags news
// @Accept json
// @Produce json
// @Param news body rest.NewsBody true "News fields"
// @Success 201 {object} rest.News
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/news [post]
func (h *Handler) CreateNews(c echo.Context) error {
	ident, ok := h.requireIdentity(c)
	if !ok {
		return nil
	}

	var body NewsBody
	if err := c.Bind(&body); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	news, err := h.m.CreateNews(c.Request().Context(), ident, body.fields())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, NewNews(*news))
}

// UpdateNews handles PUT /api/v1/news/:id
// @Summary Update news
// @Tags news
// @Accept json
// @Produce json
// @Param id path int true "News ID"
// @Param news body rest.NewsBody true "News fields"
// @Success 200 {object} rest.News
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/v1/news/{id} [put]
func (h *Handler) UpdateNews(c echo.Context) error {
	ident, ok := h.requireIdentity(c)
	if !ok {
		return nil
	}

	newsID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c, err, "invalid id")
	}

	var body NewsBody
	if err := c.Bind(&body); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	news, err := h.m.UpdateNews(c.Request().Context(), ident, newsID, body.fields())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewNews(*news))
}

// DeleteNews handles DELETE /api/v1/news/:id
// @Summary Delete news and its comments
// @Tags news
// @Param id path int true "News ID"
// @Success 204
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/v1/news/{id} [delete]
func (h *Handler) DeleteNews(c echo.Context) error {
	ident, ok := h.requireIdentity(c)
	if !ok {
		return nil
	}

	newsID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c, err, "invalid id")
	}

	if err := h.m.DeleteNews(c.Request().Context(), ident, newsID); err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// FrontPage handles GET /api/v1/frontpage
// @Summary Front-page digest
// @Description Scored recent news, latest news, the exclusive highlight and random category samples
// @Tags news
// @Produce json
// @Success 200 {object} rest.Digest
// @Failure 500 {object} map[string]string
// @Router /api/v1/frontpage [get]
func (h *Handler) FrontPage(c echo.Context) error {
	digest, err := h.m.FrontPage(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewDigest(digest))
}

func pageParams(page, limit *int) (int, int) {
	p, l := 0, 0
	if page != nil {
		p = *page
	}
	if limit != nil {
		l = *limit
	}
	if l > MaxPageSize {
		l = MaxPageSize
	}
	return p, l
}
