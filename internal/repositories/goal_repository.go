package repository

import (
	"context"

	"gorm.io/gorm"

	model "goal-tracker.com/goal-tracker/internal/models"
)

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, title string) (*model.Goal, error) {
	goal := &model.Goal{Title: title}

	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return nil, err
	}

	return goal, nil
}

func (r *GoalRepository) FindByID(ctx context.Context, id uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.db.WithContext(ctx).First(&goal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) List(ctx context.Context, opts ListOptions) ([]model.Goal, error) {
	goals := []model.Goal{}
	err := opts.apply(r.db.WithContext(ctx)).Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) Update(ctx context.Context, goal *model.Goal) error {
	return r.db.WithContext(ctx).Model(&model.Goal{}).
		Where("id = ?", goal.ID).
		Update("title", goal.Title).Error
}

func (r *GoalRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Goal{}, id).Error
}
