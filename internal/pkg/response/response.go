package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var devMode bool

// SetDevMode controls whether Internal echoes the underlying error.
// Production responses stay generic.
func SetDevMode(enabled bool) { devMode = enabled }

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// Internal answers 500 with a generic message, attaching the driver
// error only in development.
func Internal(c *gin.Context, err error, message string) {
	if devMode && err != nil {
		ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", message, err.Error())
		return
	}
	Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", message)
}
