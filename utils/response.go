package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONErrorWithRequestID adds the request id set by the logger middleware, when present.
func JSONErrorWithRequestID(c *gin.Context, code int, message string) {
	body := gin.H{"success": false, "error": message}
	if id := c.GetString(RequestIDKey); id != "" {
		body["requestId"] = id
	}
	c.JSON(code, body)
}
