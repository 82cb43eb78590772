package controller

import (
	"net/http"
	"strconv"

	"altacoach_backend/internal/model"
	"altacoach_backend/internal/service"
	"altacoach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SuggestionController struct {
	Reconciler *service.ReconcilerService
}

func NewSuggestionController(reconciler *service.ReconcilerService) *SuggestionController {
	return &SuggestionController{Reconciler: reconciler}
}

// @Summary Submit feedback about an exchange
// @Description Records user feedback, optionally attaching supporting documents; document failures are partial, not fatal
// @Tags suggestions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param feedback body service.FeedbackInput true "Feedback"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/suggestions [post]
func (c *SuggestionController) SubmitFeedback(ctx *gin.Context) {
	var input service.FeedbackInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Reconciler.SubmitFeedback(&input)
	if err != nil {
		// Documents already written are reported even when the
		// suggestion row itself failed.
		if result != nil {
			ctx.JSON(http.StatusInternalServerError, util.Response{
				Code:    http.StatusInternalServerError,
				Message: err.Error(),
				Data:    result,
			})
			return
		}
		util.RespondError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// @Summary Query suggestion context for a user
// @Description Returns the business admin name, attached documents and optionally the reconstructed message list
// @Tags suggestions
// @Security BearerAuth
// @Produce json
// @Param userId query int true "User ID"
// @Param suggestionId query int false "Scope messages to this suggestion's chat"
// @Param chatId query string false "Scope messages to a chat"
// @Param includeDocuments query bool false "Include the full document list"
// @Param documentType query string false "Filter documents by type"
// @Param includeMessages query bool false "Include the reconstructed messages"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/suggestions [get]
func (c *SuggestionController) QueryContext(ctx *gin.Context) {
	userIDStr := ctx.Query("userId")
	if userIDStr == "" {
		util.BadRequest(ctx, "userId is required")
		return
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil || userID <= 0 {
		util.BadRequest(ctx, "invalid userId")
		return
	}

	suggestionID, _ := strconv.Atoi(ctx.Query("suggestionId"))
	includeDocuments, _ := strconv.ParseBool(ctx.DefaultQuery("includeDocuments", "false"))
	includeMessages, _ := strconv.ParseBool(ctx.DefaultQuery("includeMessages", "false"))

	opts := &service.ContextOptions{
		SuggestionID:     uint(suggestionID),
		ChatID:           ctx.Query("chatId"),
		IncludeDocuments: includeDocuments,
		DocumentType:     model.DocumentType(ctx.Query("documentType")),
		IncludeMessages:  includeMessages,
	}

	result, err := c.Reconciler.QueryContext(uint(userID), opts)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
