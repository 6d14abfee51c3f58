package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "goal-tracker.com/goal-tracker/internal/data_models"
	"goal-tracker.com/goal-tracker/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Create(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req.Title, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.TaskEnvelope{Task: dto.NewTaskResponse(task)})
}

func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context(), listOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponses(tasks))
}

func (h *TaskHandler) Get(c echo.Context) error {
	task, err := h.taskService.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TaskEnvelope{Task: dto.NewTaskDetailResponse(task)})
}

func (h *TaskHandler) Update(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), c.Param("id"), req.Title, *req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TaskEnvelope{Task: dto.NewTaskResponse(task)})
}

func (h *TaskHandler) MarkComplete(c echo.Context) error {
	task, err := h.taskService.MarkComplete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TaskEnvelope{Task: dto.NewTaskResponse(task)})
}

func (h *TaskHandler) MarkIncomplete(c echo.Context) error {
	task, err := h.taskService.MarkIncomplete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TaskEnvelope{Task: dto.NewTaskResponse(task)})
}

func (h *TaskHandler) Delete(c echo.Context) error {
	task, err := h.taskService.DeleteTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TaskDeleted(task))
}
