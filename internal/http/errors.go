package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "goal-tracker.com/goal-tracker/internal/errors"
)

// ErrorHandler renders application exceptions with their own status and body,
// echo errors with their code, and anything else as a logged 500.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			exception *apperrors.Exception
			httpErr   *echo.HTTPError
		)

		switch {
		case errors.As(err, &exception):
			respond(c, exception.StatusCode, exception.Body())
		case errors.As(err, &httpErr):
			respond(c, httpErr.Code, map[string]string{
				apperrors.KeyMessage: fmt.Sprint(httpErr.Message),
			})
		default:
			logger.ErrorContext(c.Request().Context(), "request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Path()),
				slog.String("error", err.Error()),
			)
			respond(c, http.StatusInternalServerError, map[string]string{
				apperrors.KeyMessage: "internal server error",
			})
		}
	}
}

func respond(c echo.Context, status int, body interface{}) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
