package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthChecker is satisfied by *database.Database.
type HealthChecker interface {
	HealthCheck() error
}

type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Service   string `json:"service" example:"casting-agency"`
	Version   string `json:"version" example:"1.0.0"`
	Database  string `json:"database" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2026-01-01T00:00:00Z"`
}

// Health godoc
// @Summary Health check
// @Description Report service and database status
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func Health(db HealthChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(HealthResponse{
			Status:    "ok",
			Service:   "casting-agency",
			Version:   "1.0.0",
			Database:  dbStatus,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
