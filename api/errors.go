package api

import (
	"github.com/gin-gonic/gin"
	"github.com/hanksha/venue-booking-backend/apperrors"
)

// respondError writes {"error", "code", "details"} with the status of the error's kind. Errors
// that are not AppErrors become a 500.
func respondError(c *gin.Context, err error) {
	c.Error(err)

	appErr := apperrors.AsAppError(err)
	body := gin.H{
		"error": appErr.Message,
		"code":  appErr.Kind,
	}

	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}

	c.AbortWithStatusJSON(appErr.HTTPStatus, body)
}

func badJSON(c *gin.Context, err error) {
	respondError(c, apperrors.Validation("failed to parse JSON body", map[string]any{"cause": err.Error()}))
}
