package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories over one database handle so a service can run
// several of them inside a single transaction.
type Store struct {
	db    *gorm.DB
	Goals *GoalRepository
	Tasks *TaskRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:    db,
		Goals: NewGoalRepository(db),
		Tasks: NewTaskRepository(db),
	}
}

// Within runs fn in a transaction. The transaction commits when fn returns nil
// and rolls back on error or panic.
func (s *Store) Within(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
