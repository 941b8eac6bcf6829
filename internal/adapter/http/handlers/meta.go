package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type ServiceInfo struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Meta answers the root path with a map of the API surface.
func Meta(c *gin.Context) {
	c.JSON(http.StatusOK, ServiceInfo{
		Status:  StatusOk,
		Message: "To-Do List API is running",
		Version: appVersion(),
		Endpoints: map[string]string{
			"health":     "GET /api/health",
			"register":   "POST /api/register",
			"login":      "POST /api/login",
			"tasks":      "GET /api/tasks/:userId",
			"createTask": "POST /api/tasks",
			"updateTask": "PUT /api/tasks/:taskId",
			"deleteTask": "DELETE /api/tasks/:taskId",
		},
	})
}

func appVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "1.0.0"
	}
	return version
}
