package http

import (
	"github.com/gin-gonic/gin"

	"todolist/internal/adapter/http/handlers"
	"todolist/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
) {
	r.GET("/", handlers.Meta)

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/tasks/:userId", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.PUT("/tasks/:taskId", taskHandler.UpdateTask)
		api.DELETE("/tasks/:taskId", taskHandler.DeleteTask)
	}
}
