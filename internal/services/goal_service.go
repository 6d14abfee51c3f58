package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	model "goal-tracker.com/goal-tracker/internal/models"
	repository "goal-tracker.com/goal-tracker/internal/repositories"
)

type GoalService struct {
	store *repository.Store
}

func NewGoalService(store *repository.Store) *GoalService {
	return &GoalService{store: store}
}

func (s *GoalService) CreateGoal(ctx context.Context, title string) (*model.Goal, error) {
	var goal *model.Goal
	err := s.store.Within(ctx, func(tx *repository.Store) error {
		var err error
		goal, err = tx.Goals.Create(ctx, title)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return goal, nil
}

func (s *GoalService) ListGoals(ctx context.Context, opts repository.ListOptions) ([]model.Goal, error) {
	return s.store.Goals.List(ctx, opts)
}

func (s *GoalService) GetGoal(ctx context.Context, rawID string) (*model.Goal, error) {
	return validateModel(ctx, goalKind, rawID, s.store.Goals.FindByID)
}

// GetGoalTasks returns the goal and every task linked to it, ordered by id.
func (s *GoalService) GetGoalTasks(ctx context.Context, rawID string) (*model.Goal, []model.Task, error) {
	goal, err := validateModel(ctx, goalKind, rawID, s.store.Goals.FindByID)
	if err != nil {
		return nil, nil, err
	}

	tasks, err := s.store.Tasks.ListByGoal(ctx, goal.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list tasks of goal %d: %w", goal.ID, err)
	}

	return goal, tasks, nil
}

// LinkTasks points every existing task in taskIDs at the goal. Ids without a
// task are skipped; the returned slice holds the ids that were linked.
func (s *GoalService) LinkTasks(ctx context.Context, rawID string, taskIDs []uint) (*model.Goal, []uint, error) {
	var (
		goal   *model.Goal
		linked = []uint{}
	)

	err := s.store.Within(ctx, func(tx *repository.Store) error {
		var err error
		goal, err = validateModel(ctx, goalKind, rawID, tx.Goals.FindByID)
		if err != nil {
			return err
		}

		for _, taskID := range taskIDs {
			task, err := tx.Tasks.FindByID(ctx, taskID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("find task %d: %w", taskID, err)
			}

			task.GoalID = &goal.ID
			if err := tx.Tasks.Update(ctx, task); err != nil {
				return fmt.Errorf("link task %d: %w", taskID, err)
			}
			linked = append(linked, task.ID)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return goal, linked, nil
}

func (s *GoalService) UpdateGoal(ctx context.Context, rawID, title string) (*model.Goal, error) {
	var goal *model.Goal
	err := s.store.Within(ctx, func(tx *repository.Store) error {
		var err error
		goal, err = validateModel(ctx, goalKind, rawID, tx.Goals.FindByID)
		if err != nil {
			return err
		}

		goal.Title = title
		return tx.Goals.Update(ctx, goal)
	})
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// DeleteGoal removes the goal. Its tasks survive with goal_id cleared.
func (s *GoalService) DeleteGoal(ctx context.Context, rawID string) (*model.Goal, error) {
	var goal *model.Goal
	err := s.store.Within(ctx, func(tx *repository.Store) error {
		var err error
		goal, err = validateModel(ctx, goalKind, rawID, tx.Goals.FindByID)
		if err != nil {
			return err
		}

		if err := tx.Tasks.DetachFromGoal(ctx, goal.ID); err != nil {
			return fmt.Errorf("detach tasks of goal %d: %w", goal.ID, err)
		}
		return tx.Goals.Delete(ctx, goal.ID)
	})
	if err != nil {
		return nil, err
	}
	return goal, nil
}
