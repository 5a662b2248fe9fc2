package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const userIDKey = contextKey("userID")

// DefaultUserID is the audit identity recorded when the caller does not
// identify itself.
const DefaultUserID = "system"

// UserIdentityHeader names the header callers use to identify themselves for
// audit trails.
const UserIdentityHeader = "X-User-ID"

// UserIdentityMiddleware resolves the caller identity used for audit fields
// from the request header, falling back to DefaultUserID.
func UserIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIdentityHeader)
		if userID == "" {
			userID = DefaultUserID
		}
		c.Set(string(userIDKey), userID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), userIDKey, userID))
		c.Next()
	}
}

// GetUserIDFromContext retrieves the caller identity from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		userIDCtx := c.Request.Context().Value(userIDKey)
		if userIDCtx != nil {
			return userIDCtx.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}
