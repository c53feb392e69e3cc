package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/salesdb/internal/config"
	"github.com/localnerve/salesdb/internal/services"
	"gorm.io/gorm"
)

// HealthHandler handles the liveness route
type HealthHandler struct {
	Cfg *config.Config
	DB  *gorm.DB
}

// GetHealth handles GET /health
// @Summary Health check
// @Description Report database reachability and migration state
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
