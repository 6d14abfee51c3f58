package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	apperrors "goal-tracker.com/goal-tracker/internal/errors"
)

// recordKind names the errors reported for one record type.
type recordKind struct {
	name      string
	invalidID error
	notFound  error
}

var (
	goalKind = recordKind{name: "goal", invalidID: apperrors.ErrInvalidGoalID, notFound: apperrors.ErrGoalNotFound}
	taskKind = recordKind{name: "task", invalidID: apperrors.ErrInvalidTaskID, notFound: apperrors.ErrTaskNotFound}
)

// validateModel parses rawID and loads the matching record with find.
func validateModel[T any](
	ctx context.Context,
	kind recordKind,
	rawID string,
	find func(context.Context, uint) (*T, error),
) (*T, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, kind.invalidID
	}
	if id <= 0 {
		return nil, kind.notFound
	}

	record, err := find(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, kind.notFound
		}
		return nil, fmt.Errorf("find %s %d: %w", kind.name, id, err)
	}

	return record, nil
}
