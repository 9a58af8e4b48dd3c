package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware tags every request with a correlation id, reusing the
// caller's X-Request-Id header when one is supplied.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set("RequestID", requestID)
		ctx.Header("X-Request-Id", requestID)
		ctx.Next()
	}
}
