package response

import "github.com/gin-gonic/gin"

// Error writes the flat error body used across the API.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"error": message})
}

// Internal hides the cause from the caller; detail stays in server logs.
func Internal(c *gin.Context) {
	Error(c, 500, "internal server error")
}
