package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Messages sent to clients on gate and storage failures
const (
	MsgUnauthorized    = "Unauthorized Access"
	MsgForbiddenUser   = "Forbidden User"
	MsgForbiddenAccess = "Forbidden Access"
	MsgInvalidID       = "Invalid ID"
	MsgInvalidBody     = "Invalid request body"
	MsgInternalError   = "Internal Server Error"
	MsgUserExists      = "User already exists"
	MsgEmailRequired   = "Email is required"
)

// ErrorResponse is the error envelope returned by every failing route
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// MessageResponse carries an informational message with a 200 status
type MessageResponse struct {
	Message string `json:"message"`
}

// OK writes data as the JSON body with a 200 status
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message writes {message} with a 200 status
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Error writes the error envelope and aborts the handler chain
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   true,
		Message: message,
	})
}

// InternalError records err on the context and writes a generic 500
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	Error(c, http.StatusInternalServerError, MsgInternalError)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}
