package middleware

import (
	"net/http"
	"strings"

	"city-portal/models"

	"github.com/gin-gonic/gin"
)

// TokenVerifier validates a bearer access token and returns the session
// it represents.
type TokenVerifier func(token string) (*models.Session, error)

const sessionKey = "session"

func AuthMiddleware(verify TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		session, err := verify(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Set("user_id", session.UserID.String())
		c.Set("user_email", session.Email)
		c.Next()
	}
}

// SessionFromContext returns the session placed by AuthMiddleware, or
// nil on routes that ran without it.
func SessionFromContext(c *gin.Context) *models.Session {
	value, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	session, ok := value.(*models.Session)
	if !ok {
		return nil
	}
	return session
}
