// Package response holds the uniform API envelope. Every endpoint, success or
// failure, answers with the same shape so clients parse one thing.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInternalError   = "INTERNAL_ERROR"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: code, Message: message},
	})
}

func ValidationError(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeValidationError, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, CodeNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, CodeConflict, message)
}

// InternalError never echoes store or stack detail to the caller.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, CodeInternalError, message)
}
