package middleware

import (
	"fmt"
	"net/http"

	"github.com/KakonDebnath/bistro-boss-server/pkg/logger"
	"github.com/KakonDebnath/bistro-boss-server/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextKeyEmail holds the verified caller email for request logs
const ContextKeyEmail = "email"

// Recovery turns a panic anywhere in the chain into a 500 error envelope
// so a failing handler never leaves the request without a response.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		log.Error("Recovered from panic",
			zap.String("request_id", GetRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
			zap.Stack("stack"),
		)
		_ = c.Error(err)
		if c.Writer.Written() {
			c.Abort()
			return
		}
		response.Error(c, http.StatusInternalServerError, response.MsgInternalError)
	})
}
