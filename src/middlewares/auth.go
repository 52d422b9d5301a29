package middlewares

import (
	"log"
	"net/http"
	"strings"

	"yatrasetu/src/identity"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token to a user id and stores the
// caller's identity in the gin context. Downstream handlers only ever see an
// already-resolved user id.
func AuthMiddleware(ids *identity.Service) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		bearerToken := ctx.Request.Header.Get("Authorization")
		if !strings.HasPrefix(bearerToken, "Bearer") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "login required"})
			return
		}
		parts := strings.Split(bearerToken, " ")
		if len(parts) < 2 || parts[1] == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "login required"})
			return
		}
		claims, uid, err := ids.Verify(parts[1])
		if err != nil {
			log.Printf("token error: %s\n", err.Error())
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "login required"})
			return
		}
		user, err := ids.GetUser(uid)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "login required"})
			return
		}

		ctx.Set("id", user.ID)
		ctx.Set("email", user.Email)
		ctx.Set("name", user.Name)
		ctx.Set("role", string(claims.Role))
	}
}
