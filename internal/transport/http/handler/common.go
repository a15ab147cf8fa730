package handler

import (
	"github.com/gin-gonic/gin"

	"portfoliohub/internal/transport/http/middleware"
)

func getUserIDFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

func getSessionTokenFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(middleware.ContextSessionTokenKey)
	if !exists {
		return "", false
	}
	token, ok := value.(string)
	return token, ok && token != ""
}
