package controller

import (
	"strconv"

	"altacoach_backend/internal/model"
	"altacoach_backend/internal/service"
	"altacoach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// @Summary Upload a document
// @Description Multipart upload; the file is stored and attached to the listed businesses
// @Tags documents
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document file"
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param documentType formData string false "Type (course, guide, faq, other)"
// @Param businessIds formData string false "Comma-separated business ids"
// @Success 201 {object} util.Response
// @Router /api/admin/documents [post]
func (c *ContentController) UploadDocument(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	title := ctx.PostForm("title")
	if title == "" {
		util.BadRequest(ctx, "title is required")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	var businessIDs []uint
	for _, raw := range ctx.PostFormArray("businessIds") {
		if id, err := strconv.Atoi(raw); err == nil && id > 0 {
			businessIDs = append(businessIDs, uint(id))
		}
	}

	doc, err := c.ContentService.UploadDocument(ctx.Request.Context(), &service.UploadDocumentInput{
		Title:        title,
		Description:  ctx.PostForm("description"),
		DocumentType: model.DocumentType(ctx.PostForm("documentType")),
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Reader:       file,
		BusinessIDs:  businessIDs,
		UploadedBy:   claims.UserID,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, doc)
}

// @Summary List documents of a business
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path int true "Business ID"
// @Param documentType query string false "Filter by type"
// @Success 200 {object} util.Response
// @Router /api/admin/businesses/{id}/documents [get]
func (c *ContentController) ListBusinessDocuments(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	docs, err := c.ContentService.ListBusinessDocuments(uint(id), model.DocumentType(ctx.Query("documentType")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, docs)
}

type AttachDocumentRequest struct {
	DocumentID uint `json:"documentId" binding:"required"`
}

// @Summary Attach an existing document to a business
// @Tags documents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Business ID"
// @Param request body AttachDocumentRequest true "Document"
// @Success 200 {object} util.Response
// @Router /api/admin/businesses/{id}/documents [post]
func (c *ContentController) AttachDocument(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req AttachDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ContentService.AttachDocument(uint(id), req.DocumentID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary Delete a document
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} util.Response
// @Router /api/admin/documents/{id} [delete]
func (c *ContentController) DeleteDocument(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.ContentService.DeleteDocument(ctx.Request.Context(), uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
