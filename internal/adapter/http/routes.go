package http

import (
	"tasktracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health      *handlers.HealthHandler
	Tasks       *handlers.TaskHandler
	Diagnostics *handlers.DiagnosticsHandler
}

// RegisterRoutes mounts the API under basePath. The diagnostics routes are
// only added when a diagnostics handler is given.
func RegisterRoutes(r gin.IRouter, basePath string, h Handlers) {
	api := r.Group(basePath)
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/tasks", h.Tasks.ListTasks)
		api.GET("/tasks/:id", h.Tasks.GetTask)
		api.POST("/tasks", h.Tasks.CreateTask)
		api.PUT("/tasks/:id", h.Tasks.UpdateTask)
		api.PATCH("/tasks/:id/complete", h.Tasks.CompleteTask)
		api.DELETE("/tasks/:id", h.Tasks.DeleteTask)
	}

	if h.Diagnostics != nil {
		diagnostics := api.Group("/diagnostics")
		diagnostics.GET("/errors/:kind", h.Diagnostics.RaiseError)
		diagnostics.GET("/success", h.Diagnostics.Success)
	}
}
