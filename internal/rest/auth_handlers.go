package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type LoginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/login
// @Summary Log in and receive an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body rest.LoginBody true "Username and password"
// @Success 200 {object} rest.TokenResponse
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/login [post]
func (h *Handler) Login(c echo.Context) error {
	var body LoginBody
	if err := c.Bind(&body); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	token, err := h.auth.Login(c.Request().Context(), body.Username, body.Password)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Register handles POST /api/v1/register
// @Summary Register a new user and receive an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body rest.RegisterBody true "Username, email and password"
// @Success 201 {object} rest.TokenResponse
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/register [post]
func (h *Handler) Register(c echo.Context) error {
	var body RegisterBody
	if err := c.Bind(&body); err != nil {
		return h.badRequest(c, err, "invalid request body")
	}

	token, err := h.auth.Register(c.Request().Context(), body.Username, body.Email, body.Password)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, TokenResponse{Token: token})
}
