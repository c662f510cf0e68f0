package authorization

import (
	"github.com/gin-gonic/gin"

	"atrium/internal/shared/constants"
	"atrium/internal/shared/utils"
)

// RequireAdmin rejects any request whose session role claim is not admin.
// It must run after the auth middleware has populated the context.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyRole)
		if role != string(RoleAdmin) {
			utils.ErrorResponse(c, 403, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
