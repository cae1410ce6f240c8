package middleware

import (
	"forohub/pkg/context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

// RequestID propaga el identificador de petición entrante o genera uno nuevo.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(context.CtxRequestID, rid)
		c.Header(HeaderRequestID, rid)

		c.Next()
	}
}
