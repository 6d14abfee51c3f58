package repository

import (
	"context"

	"gorm.io/gorm"

	model "goal-tracker.com/goal-tracker/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, title, description string) (*model.Task, error) {
	task := &model.Task{
		Title:       title,
		Description: description,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, opts ListOptions) ([]model.Task, error) {
	tasks := []model.Task{}
	err := opts.apply(r.db.WithContext(ctx)).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListByGoal(ctx context.Context, goalID uint) ([]model.Task, error) {
	tasks := []model.Task{}
	err := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("id asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":        task.Title,
			"description":  task.Description,
			"completed_at": task.CompletedAt,
			"goal_id":      task.GoalID,
		}).Error
}

// DetachFromGoal clears goal_id on every task linked to the goal.
func (r *TaskRepository) DetachFromGoal(ctx context.Context, goalID uint) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("goal_id = ?", goalID).
		Update("goal_id", nil).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, id).Error
}
