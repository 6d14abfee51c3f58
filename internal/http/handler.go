package http

import (
	"github.com/labstack/echo/v4"

	apperrors "goal-tracker.com/goal-tracker/internal/errors"
	repository "goal-tracker.com/goal-tracker/internal/repositories"
)

// bindRequest decodes the JSON body into req and validates it. Any failure is
// reported as invalid data.
func bindRequest(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.ErrInvalidData
	}
	if err := c.Validate(req); err != nil {
		return apperrors.ErrInvalidData
	}
	return nil
}

func listOptions(c echo.Context) repository.ListOptions {
	return repository.ListOptions{
		Title: c.QueryParam("title"),
		Sort:  c.QueryParam("sort"),
	}
}
