package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes builds the echo instance with all API routes. Extra
// handlers (the RPC endpoint) are mounted by the caller.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api/v1", h.withIdentity)

	api.POST("/login", h.Login)
	api.POST("/register", h.Register)

	api.GET("/news", h.News)
	api.POST("/news", h.CreateNews)
	api.GET("/news/user/:id", h.NewsByUser)
	api.GET("/news/:id", h.NewsByID)
	api.PUT("/news/:id", h.UpdateNews)
	api.DELETE("/news/:id", h.DeleteNews)

	api.GET("/comments", h.Comments)
	api.POST("/comments", h.CreateComment)
	api.DELETE("/comments/:id", h.DeleteComment)

	api.GET("/frontpage", h.FrontPage)

	api.GET("/users/me", h.Me)
	api.GET("/users/me/saved", h.SavedNews)
	api.PUT("/users/me/saved/:id", h.ToggleSaved)

	return e
}
