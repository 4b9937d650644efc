package controller

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "quizengine_backend/internals/helpers"
)

// ActuatorController serves the admin-only management surface: health, build
// info and DB pool statistics.
type ActuatorController struct {
	DB      *gorm.DB
	started time.Time
}

func NewActuatorController(db *gorm.DB) *ActuatorController {
	return &ActuatorController{DB: db, started: time.Now()}
}

func (ctrl *ActuatorController) Health(c *fiber.Ctx) error {
	status := "UP"
	sqlDB, err := ctrl.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.UserContext())
	}
	if err != nil {
		status = "DOWN"
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"status": status,
		"uptime": time.Since(ctrl.started).String(),
	})
}

func (ctrl *ActuatorController) Info(c *fiber.Ctx) error {
	return helper.JsonOK(c, "OK", fiber.Map{
		"app":        "quizengine",
		"go_version": runtime.Version(),
		"goroutines": runtime.NumGoroutine(),
	})
}

func (ctrl *ActuatorController) DBStats(c *fiber.Ctx) error {
	sqlDB, err := ctrl.DB.DB()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read pool stats")
	}
	stats := sqlDB.Stats()
	return helper.JsonOK(c, "OK", fiber.Map{
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"wait_count":       stats.WaitCount,
		"wait_duration":    stats.WaitDuration.String(),
	})
}
