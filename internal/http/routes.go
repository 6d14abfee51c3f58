package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func Register(e *echo.Echo, goals *GoalHandler, tasks *TaskHandler) {
	e.GET("/healthz", health)

	g := e.Group("/goals")
	g.POST("", goals.Create)
	g.GET("", goals.List)
	g.GET("/:id", goals.Get)
	g.PUT("/:id", goals.Update)
	g.DELETE("/:id", goals.Delete)
	g.GET("/:id/tasks", goals.ListTasks)
	g.POST("/:id/tasks", goals.LinkTasks)

	t := e.Group("/tasks")
	t.POST("", tasks.Create)
	t.GET("", tasks.List)
	t.GET("/:id", tasks.Get)
	t.PUT("/:id", tasks.Update)
	t.PATCH("/:id/mark_complete", tasks.MarkComplete)
	t.PATCH("/:id/mark_incomplete", tasks.MarkIncomplete)
	t.DELETE("/:id", tasks.Delete)
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
