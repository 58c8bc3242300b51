package middleware

import (
	"github.com/gin-gonic/gin"

	"bookreview-backend/internal/shared/response"
)

// AdminMiddleware rejects callers without the admin role. Must run after
// AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(CtxRole)
		if !ok || role != "admin" {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
