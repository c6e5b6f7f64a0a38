package api

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const StaffTokenHeader = "X-Staff-Token"

// StaffAuth lets a request through when it carries the shared staff token, either in the
// X-Staff-Token header or as a bearer token. An empty configured token rejects every request.
func StaffAuth(token string) gin.HandlerFunc {
	logger := slog.Default().With("component", "staff-auth")

	return func(c *gin.Context) {
		provided := c.GetHeader(StaffTokenHeader)

		if len(provided) == 0 {
			provided, _ = strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		}

		if len(provided) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authentication", "code": "UNAUTHORIZED"})
			return
		}

		if len(token) == 0 || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			logger.Warn("rejected staff request", "path", c.FullPath(), "ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication", "code": "UNAUTHORIZED"})
			return
		}

		c.Set("staff", true)
	}
}
