package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/utils"
)

// JWTAuthMiddleware guards the admin-only routes. Validity is solely a
// function of the token's signature and embedded expiry; there is no
// server-side revocation list.
func JWTAuthMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			utils.Fail(c, http.StatusUnauthorized, "Authorization header missing", nil)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			utils.Fail(c, http.StatusUnauthorized, "Malformed Authorization header", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			utils.Fail(c, http.StatusUnauthorized, "Invalid token", err)
			c.Abort()
			return
		}

		c.Set("admin_email", claims.Email)
		c.Next()
	}
}
