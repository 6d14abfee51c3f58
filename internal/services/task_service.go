package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	model "goal-tracker.com/goal-tracker/internal/models"
	"goal-tracker.com/goal-tracker/internal/notifications"
	repository "goal-tracker.com/goal-tracker/internal/repositories"
)

type TaskService struct {
	store    *repository.Store
	notifier notifications.Notifier
	logger   *slog.Logger
	now      func() time.Time
}

func NewTaskService(
	store *repository.Store,
	notifier notifications.Notifier,
	logger *slog.Logger,
) *TaskService {
	if notifier == nil {
		notifier = notifications.Noop{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskService{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *TaskService) CreateTask(ctx context.Context, title, description string) (*model.Task, error) {
	var task *model.Task
	err := s.store.Within(ctx, func(tx *repository.Store) error {
		var err error
		task, err = tx.Tasks.CreateTask(ctx, title, description)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, opts repository.ListOptions) ([]model.Task, error) {
	return s.store.Tasks.List(ctx, opts)
}

func (s *TaskService) GetTask(ctx context.Context, rawID string) (*model.Task, error) {
	return validateModel(ctx, taskKind, rawID, s.store.Tasks.FindByID)
}

func (s *TaskService) UpdateTask(ctx context.Context, rawID, title, description string) (*model.Task, error) {
	return s.mutate(ctx, rawID, func(task *model.Task) {
		task.Title = title
		task.Description = description
	})
}

// MarkComplete stamps the task as completed and then announces it. A failed
// announcement is logged and does not undo the completion.
func (s *TaskService) MarkComplete(ctx context.Context, rawID string) (*model.Task, error) {
	completedAt := s.now()
	task, err := s.mutate(ctx, rawID, func(task *model.Task) {
		task.CompletedAt = &completedAt
	})
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Notify(ctx, CompletionMessage(task)); err != nil {
		s.logger.WarnContext(ctx, "task completion notification failed",
			slog.Uint64("task_id", uint64(task.ID)),
			slog.String("error", err.Error()),
		)
	}

	return task, nil
}

func (s *TaskService) MarkIncomplete(ctx context.Context, rawID string) (*model.Task, error) {
	return s.mutate(ctx, rawID, func(task *model.Task) {
		task.CompletedAt = nil
	})
}

func (s *TaskService) DeleteTask(ctx context.Context, rawID string) (*model.Task, error) {
	var task *model.Task
	err := s.store.Within(ctx, func(tx *repository.Store) error {
		var err error
		task, err = validateModel(ctx, taskKind, rawID, tx.Tasks.FindByID)
		if err != nil {
			return err
		}
		return tx.Tasks.Delete(ctx, task.ID)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// mutate loads the task, applies change and persists it in one transaction.
func (s *TaskService) mutate(ctx context.Context, rawID string, change func(*model.Task)) (*model.Task, error) {
	var task *model.Task
	err := s.store.Within(ctx, func(tx *repository.Store) error {
		var err error
		task, err = validateModel(ctx, taskKind, rawID, tx.Tasks.FindByID)
		if err != nil {
			return err
		}

		change(task)
		return tx.Tasks.Update(ctx, task)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func CompletionMessage(task *model.Task) string {
	return fmt.Sprintf("Someone just completed the task %s", task.Title)
}
