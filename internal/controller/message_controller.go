package controller

import (
	"altacoach_backend/internal/service"
	"altacoach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	Reconciler *service.ReconcilerService
}

func NewMessageController(reconciler *service.ReconcilerService) *MessageController {
	return &MessageController{Reconciler: reconciler}
}

// @Summary Ingest a chat turn
// @Description Accepts one user or assistant message and reconciles it into the suggestion log
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param turn body service.Turn true "Chat turn"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/messages [put]
func (c *MessageController) IngestMessage(ctx *gin.Context) {
	var turn service.Turn
	if err := ctx.ShouldBindJSON(&turn); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Reconciler.Ingest(&turn)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
