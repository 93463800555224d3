package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Me handles GET /api/v1/users/me
// @Summary Get the caller's profile
// @Description Returns the username and email behind the presented token
// @Tags users
// @Produce json
// @Success 200 {object} rest.User
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/users/me [get]
func (h *Handler) Me(c echo.Context) error {
	ident, ok := h.requireIdentity(c)
	if !ok {
		return nil
	}

	user, err := h.m.UserByID(c.Request().Context(), ident.ID)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewUser(user))
}

// SavedNews handles GET /api/v1/users/me/saved
// @Summary List the caller's saved news
// @Description Saved ids pointing at deleted news are dropped at read time
// @Tags users
// @Produce json
// @Success 200 {array} rest.News
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/users/me/saved [get]
func (h *Handler) SavedNews(c echo.Context) error {
	ident, ok := h.requireIdentity(c)
	if !ok {
		return nil
	}

	news, err := h.m.SavedNews(c.Request().Context(), ident.ID)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, Map(news, NewNews))
}

// ToggleSaved handles PUT /api/v1/users/me/saved/:id
// @Summary Toggle a news id in the caller's saved set
// @Description Adds the id when absent, removes it when present
// @Tags users
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} rest.ToggleResponse
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/users/me/saved/{id} [put]
func (h *Handler) ToggleSaved(c echo.Context) error {
	ident, ok := h.requireIdentity(c)
	if !ok {
		return nil
	}

	newsID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.badRequest(c, err, "invalid id")
	}

	action, err := h.m.ToggleSaved(c.Request().Context(), ident.ID, newsID)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, ToggleResponse{Action: string(action)})
}
