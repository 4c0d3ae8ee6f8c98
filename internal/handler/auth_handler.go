package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "nutrio/internal/errors"
	"nutrio/internal/service"
	"nutrio/internal/session"
)

// AuthHandler handles signup and login endpoints.
type AuthHandler struct {
	authService service.AuthService
	sessions    *session.Manager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// SignupRequest represents a signup form submission.
type SignupRequest struct {
	Name            string `json:"name" form:"name" validate:"required"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required"`
}

// LoginRequest represents a login form submission.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Param name formData string true "User name"
// @Param email formData string true "Email address"
// @Param password formData string true "Password"
// @Param confirmPassword formData string true "Password confirmation"
// @Success 302 {string} string "redirect to /profile"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Signup(c.Request().Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err, "An error occurred during signup. Please try again.")
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	cookie, err := h.sessions.Issue(c.Request().Context(), &session.Session{Name: user.Name, Email: user.Email})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "An error occurred during signup. Please try again.",
			Code:  "SESSION_FAILED",
		})
	}
	c.SetCookie(cookie)

	return c.Redirect(http.StatusFound, "/profile")
}

// Login godoc
// @Summary Authenticate a user
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Param email formData string true "Email address"
// @Param password formData string true "Password"
// @Success 200 {string} string "Login successful"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err, "An error occurred during login. Please try again.")
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	cookie, err := h.sessions.Issue(c.Request().Context(), &session.Session{Name: user.Name, Email: user.Email})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "An error occurred during login. Please try again.",
			Code:  "SESSION_FAILED",
		})
	}
	c.SetCookie(cookie)

	return c.String(http.StatusOK, "Login successful")
}

// SignupPage serves the signup form.
func (h *AuthHandler) SignupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", nil)
}

// LoginPage serves the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}
