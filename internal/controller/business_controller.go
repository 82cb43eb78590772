package controller

import (
	"strconv"

	"altacoach_backend/internal/model"
	"altacoach_backend/internal/service"
	"altacoach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BusinessController struct {
	BusinessService *service.BusinessService
	AuthService     *service.AuthService
}

func NewBusinessController(businessService *service.BusinessService, authService *service.AuthService) *BusinessController {
	return &BusinessController{
		BusinessService: businessService,
		AuthService:     authService,
	}
}

// @Summary Create a business
// @Tags businesses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param business body model.Business true "Business"
// @Success 201 {object} util.Response
// @Router /api/admin/businesses [post]
func (c *BusinessController) CreateBusiness(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var business model.Business
	if err := ctx.ShouldBindJSON(&business); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.BusinessService.CreateBusiness(&business, claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, business)
}

// @Summary List businesses
// @Description Super admins see every tenant, admins see their own
// @Tags businesses
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/admin/businesses [get]
func (c *BusinessController) ListBusinesses(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	businesses, err := c.BusinessService.ListBusinesses(user)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, businesses)
}

// @Summary Get a business
// @Tags businesses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} util.Response
// @Router /api/admin/businesses/{id} [get]
func (c *BusinessController) GetBusiness(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	business, err := c.BusinessService.GetBusiness(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, business)
}

// @Summary Update a business
// @Tags businesses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Business ID"
// @Param business body model.Business true "Business fields"
// @Success 200 {object} util.Response
// @Router /api/admin/businesses/{id} [put]
func (c *BusinessController) UpdateBusiness(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var updates model.Business
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.BusinessService.UpdateBusiness(uint(id), claims.UserID, &updates); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary Delete a business
// @Tags businesses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} util.Response
// @Router /api/admin/businesses/{id} [delete]
func (c *BusinessController) DeleteBusiness(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.BusinessService.DeleteBusiness(uint(id), claims.UserID, claims.Role); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

type MemberRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

// @Summary Add a user to a business
// @Tags businesses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Business ID"
// @Param request body MemberRequest true "Member"
// @Success 200 {object} util.Response
// @Router /api/admin/businesses/{id}/members [post]
func (c *BusinessController) AddMember(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req MemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.BusinessService.AddMember(uint(id), req.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary Remove a user from a business
// @Tags businesses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Business ID"
// @Param userId path int true "User ID"
// @Success 200 {object} util.Response
// @Router /api/admin/businesses/{id}/members/{userId} [delete]
func (c *BusinessController) RemoveMember(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}
	userID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		util.BadRequest(ctx, "invalid userId")
		return
	}

	if err := c.BusinessService.RemoveMember(uint(id), uint(userID)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary List business members
// @Tags businesses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} util.Response
// @Router /api/admin/businesses/{id}/members [get]
func (c *BusinessController) ListMembers(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	members, err := c.BusinessService.ListMembers(uint(id))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, members)
}
