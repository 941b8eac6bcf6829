package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

const (
	StatusOk        = "OK"
	StatusDown      = "DOWN"
	healthDBTimeout = 2 * time.Second
)

type HealthStatus struct {
	Status    string  `json:"status"`
	Message   string  `json:"message"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

type HealthHandler struct {
	db        *sqlx.DB
	startedAt time.Time
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db, startedAt: time.Now()}
}

// CheckHealth always answers 200; the status field carries the
// database reachability so an unreachable store is visible without
// failing the probe.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	status := StatusOk
	message := "Server is running"
	if !h.checkConnectionToDatabase(c.Request.Context()) {
		status = StatusDown
		message = "Database unreachable"
	}

	c.JSON(http.StatusOK, HealthStatus{
		Status:    status,
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    time.Since(h.startedAt).Seconds(),
	})
}

func (h *HealthHandler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	// Avoid hanging health checks if the database stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}
