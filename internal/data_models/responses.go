package dto

type GoalResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type GoalEnvelope struct {
	Goal GoalResponse `json:"goal"`
}

type TaskResponse struct {
	ID          uint   `json:"id"`
	GoalID      *uint  `json:"goal_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsComplete  bool   `json:"is_complete"`
}

type TaskEnvelope struct {
	Task TaskResponse `json:"task"`
}

// GoalTaskResponse is a task listed under its goal; goal_id is always present.
type GoalTaskResponse struct {
	ID          uint   `json:"id"`
	GoalID      uint   `json:"goal_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsComplete  bool   `json:"is_complete"`
}

type GoalTasksResponse struct {
	ID    uint               `json:"id"`
	Title string             `json:"title"`
	Tasks []GoalTaskResponse `json:"tasks"`
}

type LinkTasksResponse struct {
	ID      uint   `json:"id"`
	TaskIDs []uint `json:"task_ids"`
}

type DetailsResponse struct {
	Details string `json:"details"`
}
