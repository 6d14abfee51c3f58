package dto

// GoalRequest is the body of goal create and update.
type GoalRequest struct {
	Title string `json:"title" validate:"required"`
}

type LinkTasksRequest struct {
	TaskIDs []uint `json:"task_ids" validate:"required,min=1"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateTaskRequest requires both keys; description may be blank.
type UpdateTaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description" validate:"required"`
}
