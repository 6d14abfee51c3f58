package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "goal-tracker.com/goal-tracker/internal/data_models"
	"goal-tracker.com/goal-tracker/internal/services"
)

type GoalHandler struct {
	goalService *services.GoalService
}

func NewGoalHandler(goalService *services.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (h *GoalHandler) Create(c echo.Context) error {
	var req dto.GoalRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	goal, err := h.goalService.CreateGoal(c.Request().Context(), req.Title)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.GoalEnvelope{Goal: dto.NewGoalResponse(goal)})
}

func (h *GoalHandler) List(c echo.Context) error {
	goals, err := h.goalService.ListGoals(c.Request().Context(), listOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewGoalResponses(goals))
}

func (h *GoalHandler) Get(c echo.Context) error {
	goal, err := h.goalService.GetGoal(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.GoalEnvelope{Goal: dto.NewGoalResponse(goal)})
}

func (h *GoalHandler) ListTasks(c echo.Context) error {
	goal, tasks, err := h.goalService.GetGoalTasks(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewGoalTasksResponse(goal, tasks))
}

func (h *GoalHandler) LinkTasks(c echo.Context) error {
	var req dto.LinkTasksRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	goal, linked, err := h.goalService.LinkTasks(c.Request().Context(), c.Param("id"), req.TaskIDs)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.LinkTasksResponse{ID: goal.ID, TaskIDs: linked})
}

func (h *GoalHandler) Update(c echo.Context) error {
	var req dto.GoalRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	goal, err := h.goalService.UpdateGoal(c.Request().Context(), c.Param("id"), req.Title)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.GoalEnvelope{Goal: dto.NewGoalResponse(goal)})
}

func (h *GoalHandler) Delete(c echo.Context) error {
	goal, err := h.goalService.DeleteGoal(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.GoalDeleted(goal))
}
