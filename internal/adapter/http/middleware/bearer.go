package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const tokenKey = "bearer-token"

// BearerToken pulls the token out of the Authorization header. A
// missing or malformed header is rejected with 403 before any auth work
// happens; a syntactically present but bogus token is left for the auth
// service to reject with 401.
func BearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		if header == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden, no token"})
			return
		}

		parts := strings.SplitN(header, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden, no token"})
			return
		}

		c.Set(tokenKey, parts[1])
		c.Next()
	}
}

// TokenFrom returns the bearer token stashed by BearerToken.
func TokenFrom(c *gin.Context) string {
	return c.GetString(tokenKey)
}
