package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pautadigital/noticias-api/internal/noticias"
)

const identityKey = "identity"

// withIdentity resolves a bearer token, when present, into the request
// identity. A missing or invalid token leaves the identity absent; handlers
// that require one reject the request themselves.
func (h *Handler) withIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimPrefix(header, "Bearer ")
			ident, err := h.auth.Resolve(c.Request().Context(), token)
			if err == nil {
				c.Set(identityKey, *ident)
			} else {
				h.log.Debug("token resolution failed", "error", err)
			}
		}
		return next(c)
	}
}

func identityFrom(c echo.Context) (noticias.Identity, bool) {
	ident, ok := c.Get(identityKey).(noticias.Identity)
	return ident, ok
}

// requireIdentity fetches the resolved identity or writes a 401.
func (h *Handler) requireIdentity(c echo.Context) (noticias.Identity, bool) {
	ident, ok := identityFrom(c)
	if !ok {
		_ = c.JSON(http.StatusUnauthorized, map[string]string{"error": "token missing or invalid"})
	}
	return ident, ok
}
