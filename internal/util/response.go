package util

import (
	"errors"
	"net/http"

	"altacoach_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the unified API envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PageResponse wraps paginated lists.
type PageResponse struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Resource not found")
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

// RespondError maps the error taxonomy onto HTTP statuses. Unknown
// errors are logged and answered with a plain 500.
func RespondError(c *gin.Context, err error) {
	var (
		validationErr  *ValidationError
		notFoundErr    *NotFoundError
		associationErr *BusinessAssociationError
		configErr      *ConfigurationError
		persistErr     *PersistenceError
	)

	switch {
	case errors.As(err, &validationErr):
		BadRequest(c, validationErr.Msg)
	case errors.As(err, &notFoundErr):
		Error(c, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &associationErr):
		BadRequest(c, associationErr.Error())
	case errors.As(err, &configErr):
		Error(c, http.StatusInternalServerError, configErr.Error())
	case errors.As(err, &persistErr):
		logger.Log.Error("persistence failure", zap.String("op", persistErr.Op), zap.Error(persistErr.Err))
		Error(c, http.StatusInternalServerError, persistErr.Error())
	default:
		LogInternalError(c, err)
	}
}
