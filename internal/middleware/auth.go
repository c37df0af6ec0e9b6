package middleware

import (
	"net/http"
	"strings"

	"mindlift/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthCookie is the HTTP-only, SameSite=Lax cookie carrying the session token.
const AuthCookie = "auth_token"

// Auth resolves the session token from the auth cookie (or a Bearer header)
// and puts the user on the request context. Resolution fails closed: anything
// short of a valid, unexpired token is a 401.
func Auth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AuthCookie)
		if err != nil || token == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				token = h[7:]
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		user := auth.ResolveToken(token)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user_email", user.Email)
		c.Set("user_name", user.Name)
		c.Next()
	}
}
