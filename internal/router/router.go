package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"nutrio/internal/config"
	"nutrio/internal/handler"
	"nutrio/internal/session"
	"nutrio/internal/view"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator and page renderer
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Renderer = view.New()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.GET("/signup", authHandler.SignupPage)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// Protected routes: the session cookie is a signed token, so the same
	// middleware the API group would use validates it; a missing or invalid
	// cookie redirects to the login page instead of returning 401.
	profile := e.Group("/profile", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.SessionSecret),
		TokenLookup: "cookie:" + session.CookieName,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(session.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.Redirect(http.StatusFound, "/login")
		},
	}))
	profile.GET("", profileHandler.Show)
	profile.POST("", profileHandler.Save)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
