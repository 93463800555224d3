package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pautadigital/noticias-api/internal/noticias"
)

// MaxPageSize is the caller-side guard on the pagination engine, which
// enforces no upper bound itself.
const MaxPageSize = 100

// Manager is the domain core surface the handlers call.
type Manager interface {
	NewsByFilter(ctx context.Context, category *string, userID *int, page, pageSize int) (*noticias.NewsPage, error)
	NewsByID(ctx context.Context, newsID int) (*noticias.News, error)
	CreateNews(ctx context.Context, ident noticias.Identity, fields noticias.NewsFields) (*noticias.News, error)
	UpdateNews(ctx context.Context, ident noticias.Identity, newsID int, fields noticias.NewsFields) (*noticias.News, error)
	DeleteNews(ctx context.Context, ident noticias.Identity, newsID int) error
	CommentsByFilter(ctx context.Context, newsID *int, page, pageSize int) (*noticias.CommentPage, error)
	CreateComment(ctx context.Context, ident noticias.Identity, content string, newsID int) (*noticias.Comment, error)
	DeleteComment(ctx context.Context, ident noticias.Identity, commentID int) error
	FrontPage(ctx context.Context) (*noticias.Digest, error)
	ToggleSaved(ctx context.Context, userID, newsID int) (noticias.ToggleAction, error)
	SavedNews(ctx context.Context, userID int) ([]noticias.News, error)
	UserByID(ctx context.Context, userID int) (*noticias.UserRef, error)
}

// AuthService issues and resolves credential tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, email, password string) (string, error)
	Resolve(ctx context.Context, token string) (*noticias.Identity, error)
}

type Handler struct {
	m    Manager
	auth AuthService
	log  *slog.Logger
}

func NewHandler(m Manager, auth AuthService, log *slog.Logger) *Handler {
	return &Handler{
		m:    m,
		auth: auth,
		log:  log,
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. Unknown
// errors are logged and reported as a generic internal failure.
func (h *Handler) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, noticias.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, noticias.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token missing or invalid"})
	case errors.Is(err, noticias.ErrForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "you are not allowed to do that"})
	case errors.Is(err, noticias.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		h.log.Error("request failed", "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) badRequest(c echo.Context, err error, message string) error {
	h.log.Error("bad request", "path", c.Path(), "error", err, "message", message)
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}
