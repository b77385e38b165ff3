package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/landy-api/internal/middleware"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
	"github.com/noah-isme/landy-api/pkg/response"
)

// ownerFromContext returns the authenticated landlord id, writing a 401 when
// the request carries no subject.
func ownerFromContext(c *gin.Context) (string, bool) {
	claims := middleware.Claims(c)
	if claims == nil || claims.UserID() == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return "", false
	}
	return claims.UserID(), true
}

func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.WithDetails(appErrors.ErrValidation, "invalid request body", err.Error()))
		return false
	}
	return true
}

// evaluationInstant reads the optional ?at= override as RFC3339 or a plain
// date (midnight UTC).
func evaluationInstant(c *gin.Context) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query("at"))
	if raw == "" {
		return nil, true
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return &parsed, true
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return &parsed, true
	}
	response.Error(c, appErrors.WithDetails(appErrors.ErrValidation, "invalid at parameter", "expected RFC3339 timestamp or YYYY-MM-DD"))
	return nil, false
}
