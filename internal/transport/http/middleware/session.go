package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfoliohub/internal/app"
	"portfoliohub/internal/transport/http/response"
)

const (
	ContextUserIDKey       = "user_id"
	ContextSessionTokenKey = "session_token"
)

// RequireSession resolves the session cookie to a user id and stores it in
// the request context. Requests without a live session are rejected with 401;
// ownership checks further down return 403, keeping the two cases distinct.
func RequireSession(cookieName string, authService *app.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			response.Error(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		userID, err := authService.ResolveToken(c.Request.Context(), token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextSessionTokenKey, token)
		c.Next()
	}
}
