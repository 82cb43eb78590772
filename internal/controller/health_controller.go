package controller

import (
	"net/http"
	"time"

	"altacoach_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB        *gorm.DB
	StartedAt time.Time
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db, StartedAt: time.Now()}
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	status := "ok"
	dbStatus := "up"

	sqlDB, err := c.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		status = "degraded"
		dbStatus = "down"
	}

	payload := gin.H{
		"status":   status,
		"database": dbStatus,
		"uptime":   time.Since(c.StartedAt).Round(time.Second).String(),
	}

	if status != "ok" {
		ctx.JSON(http.StatusServiceUnavailable, util.Response{Code: http.StatusServiceUnavailable, Message: "degraded", Data: payload})
		return
	}
	util.Success(ctx, payload)
}
