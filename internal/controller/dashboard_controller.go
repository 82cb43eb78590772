package controller

import (
	"altacoach_backend/internal/service"
	"altacoach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary Dashboard statistics
// @Description Each metric is gathered independently; a failing metric carries an error field instead of failing the request
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/admin/dashboard [get]
func (c *DashboardController) GetStats(ctx *gin.Context) {
	util.Success(ctx, c.DashboardService.GetStats())
}
