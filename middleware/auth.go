package middleware

import (
	"net/http"
	"strings"

	"recipe-api/entities"
	"recipe-api/usecases"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// TokenAuth validates the "Authorization: Token <key>" header, resolves it to
// an active user and stores the identity in the request context. Requests
// without a valid token are rejected with 401.
func TokenAuth(auth *usecases.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication credentials were not provided",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Token") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid Authorization header, expected: Token <key>",
			})
			return
		}

		user, err := auth.Resolve(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity the auth middleware attached to the
// request. It must only be called on routes behind TokenAuth.
func CurrentUser(c *gin.Context) *entities.User {
	return c.MustGet(userContextKey).(*entities.User)
}
