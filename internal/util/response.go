package util

import (
	"errors"
	"net/http"

	"quizhub_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrorResponse is the body accompanying every non-2xx status.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// PageResponse is the envelope returned by every list endpoint.
// swagger:model PageResponse
type PageResponse struct {
	Data     interface{} `json:"data"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func Paged(c *gin.Context, data interface{}, page, pageSize int) {
	c.JSON(http.StatusOK, PageResponse{Data: data, Page: page, PageSize: pageSize})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	Error(c, http.StatusInternalServerError, "Internal server error")
}

// FromError maps a service error onto the HTTP taxonomy: validation and
// conflict to 400, forbidden to 403, missing resources to 404, everything
// else to an opaque 500.
func FromError(c *gin.Context, err error) {
	switch {
	case IsValidation(err),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrInvalidReference),
		errors.Is(err, ErrAttemptFinished),
		errors.Is(err, ErrEmptyUpdate):
		BadRequest(c, err.Error())
	case errors.Is(err, ErrForbidden),
		errors.Is(err, ErrQuizPrivate),
		errors.Is(err, ErrNotInClass):
		Forbidden(c, err.Error())
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, err.Error())
	default:
		LogInternalError(c, err)
	}
}
