package model

import "time"

type Task struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"not null" json:"description"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	GoalID      *uint      `gorm:"index" json:"goal_id,omitempty"`
}

// IsComplete reports whether the task has a completion timestamp.
func (t *Task) IsComplete() bool {
	return t.CompletedAt != nil
}
