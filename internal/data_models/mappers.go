package dto

import (
	"fmt"

	model "goal-tracker.com/goal-tracker/internal/models"
)

func NewGoalResponse(goal *model.Goal) GoalResponse {
	return GoalResponse{ID: goal.ID, Title: goal.Title}
}

func NewGoalResponses(goals []model.Goal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		out = append(out, NewGoalResponse(&goals[i]))
	}
	return out
}

// NewTaskResponse renders a task without its goal reference.
func NewTaskResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		IsComplete:  task.IsComplete(),
	}
}

// NewTaskDetailResponse adds goal_id when the task belongs to a goal.
func NewTaskDetailResponse(task *model.Task) TaskResponse {
	resp := NewTaskResponse(task)
	resp.GoalID = task.GoalID
	return resp
}

func NewTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}

func NewGoalTasksResponse(goal *model.Goal, tasks []model.Task) GoalTasksResponse {
	items := make([]GoalTaskResponse, 0, len(tasks))
	for i := range tasks {
		items = append(items, GoalTaskResponse{
			ID:          tasks[i].ID,
			GoalID:      goal.ID,
			Title:       tasks[i].Title,
			Description: tasks[i].Description,
			IsComplete:  tasks[i].IsComplete(),
		})
	}

	return GoalTasksResponse{
		ID:    goal.ID,
		Title: goal.Title,
		Tasks: items,
	}
}

func GoalDeleted(goal *model.Goal) DetailsResponse {
	return DetailsResponse{Details: fmt.Sprintf(`Goal %d "%s" successfully deleted`, goal.ID, goal.Title)}
}

func TaskDeleted(task *model.Task) DetailsResponse {
	return DetailsResponse{Details: fmt.Sprintf(`Task %d "%s" successfully deleted`, task.ID, task.Title)}
}
