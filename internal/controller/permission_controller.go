package controller

import (
	"altacoach_backend/internal/model"
	"altacoach_backend/internal/service"
	"altacoach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PermissionController struct {
	PermissionService *service.PermissionService
}

func NewPermissionController(permissionService *service.PermissionService) *PermissionController {
	return &PermissionController{PermissionService: permissionService}
}

// @Summary List permission presets
// @Tags permissions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/admin/permissions [get]
func (c *PermissionController) ListPresets(ctx *gin.Context) {
	presets, err := c.PermissionService.ListPresets()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, presets)
}

// @Summary Get the preset for a role
// @Tags permissions
// @Security BearerAuth
// @Produce json
// @Param role path string true "Role"
// @Success 200 {object} util.Response
// @Router /api/admin/permissions/{role} [get]
func (c *PermissionController) GetPreset(ctx *gin.Context) {
	preset, err := c.PermissionService.GetPreset(model.UserRole(ctx.Param("role")))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, preset)
}

// @Summary Create or update a permission preset
// @Tags permissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param preset body model.PermissionPreset true "Preset"
// @Success 200 {object} util.Response
// @Router /api/admin/permissions [put]
func (c *PermissionController) SavePreset(ctx *gin.Context) {
	var preset model.PermissionPreset
	if err := ctx.ShouldBindJSON(&preset); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.PermissionService.SavePreset(&preset); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, preset)
}

// @Summary Delete a permission preset
// @Tags permissions
// @Security BearerAuth
// @Produce json
// @Param role path string true "Role"
// @Success 200 {object} util.Response
// @Router /api/admin/permissions/{role} [delete]
func (c *PermissionController) DeletePreset(ctx *gin.Context) {
	if err := c.PermissionService.DeletePreset(model.UserRole(ctx.Param("role"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
