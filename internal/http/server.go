package http

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "goal-tracker.com/goal-tracker/internal/http/middlewares"
	"goal-tracker.com/goal-tracker/internal/http/validators"
)

// NewServer returns an echo instance with validation, error rendering and the
// request middleware every route shares. Routes are added with Register.
func NewServer(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = validators.New()
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(logger))

	return e
}
