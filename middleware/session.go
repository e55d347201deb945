package middleware

import (
	"cart-widget/models"
	"cart-widget/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName = "cart_session"
	SessionIDKey      = "session_id"
)

// SessionToken returns the token from the Authorization header, falling back
// to the session cookie.
func SessionToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
			return tokenParts[1]
		}
		return ""
	}

	token, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

func SessionMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Session token required",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(secret, token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired session token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set(SessionIDKey, claims.SessionID)
		c.Next()
	}
}
