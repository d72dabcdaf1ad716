package middlewares

import (
	"net/http"
	"strings"

	"github.com/ctabo91/dreamhost-backend/utils"

	"github.com/gin-gonic/gin"
)

const identityKey = "username"

// Identity decodes a bearer token when one is present and attaches the
// username to the context. A missing or invalid token is not an error here;
// routes that need an identity are gated separately.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		username, err := utils.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "))
		if err == nil {
			c.Set(identityKey, username)
		}
		c.Next()
	}
}

// RequireAuth fails closed unless Identity attached a username.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(identityKey) == "" {
			abortUnauthorized(c)
			return
		}
		c.Next()
	}
}

// RequireSameUser additionally demands that the identity matches the
// :username path segment.
func RequireSameUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString(identityKey)
		if username == "" || username != c.Param("username") {
			abortUnauthorized(c)
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"message": "unauthorized",
			"status":  http.StatusUnauthorized,
		},
	})
}
