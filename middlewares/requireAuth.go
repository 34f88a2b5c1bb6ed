package middlewares

import (
	"net/http"
	"strings"

	"github.com/Kariqs/amexan-eats-api/auth"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// RequireAuth resolves the Authorization header into a caller identity.
// Both "Bearer <token>" and a bare token are accepted.
func RequireAuth(tokens *auth.TokenMaker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := strings.TrimSpace(ctx.GetHeader("Authorization"))
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization token required"})
			return
		}
		tokenString := header
		if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
			tokenString = strings.TrimSpace(rest)
		}

		identity, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		ctx.Set(identityKey, *identity)
		ctx.Next()
	}
}

// CurrentIdentity returns the identity RequireAuth stored on the request.
func CurrentIdentity(ctx *gin.Context) (auth.Identity, bool) {
	value, exists := ctx.Get(identityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}
