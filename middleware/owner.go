package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	ownerIDHeader = "X-Owner-ID"
	ownerIDKey    = "ownerID"
)

// OwnerContext reads the authenticated owner id forwarded by the auth gateway.
// Requests without a valid id are rejected with 401.
func OwnerContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(ownerIDHeader))
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			utils.JSONError(c, http.StatusUnauthorized, "missing or invalid "+ownerIDHeader)
			c.Abort()
			return
		}
		c.Set(ownerIDKey, uint(id))
		c.Next()
	}
}

// OwnerID is zero outside OwnerContext.
func OwnerID(c *gin.Context) uint {
	v, _ := c.Get(ownerIDKey)
	id, _ := v.(uint)
	return id
}
