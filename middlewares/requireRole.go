package middlewares

import (
	"net/http"

	"github.com/Kariqs/amexan-eats-api/auth"
	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/gin-gonic/gin"
)

// RequireRole must run after RequireAuth.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, exists := CurrentIdentity(ctx)
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		if !auth.Allowed(identity.Role, roles...) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "You are not allowed to perform this action"})
			return
		}

		ctx.Next()
	}
}
