package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Fail sends the standard failure envelope.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// FailWithError sends the failure envelope with the underlying error attached.
func FailWithError(c *gin.Context, status int, message string, err error) {
	c.JSON(status, gin.H{"success": false, "message": message, "error": err.Error()})
}

// ServerError maps any unhandled error to a 500.
func ServerError(c *gin.Context, err error) {
	FailWithError(c, http.StatusInternalServerError, "Server error", err)
}
