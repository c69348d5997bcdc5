package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// errorStatus maps service errors to HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrBlobReference),
		errors.Is(err, models.ErrInvalidReference):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"ok": false, "message": message})
}

func failErr(c *gin.Context, err error) {
	status := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		message = "Internal server error"
	}
	fail(c, status, message)
}

// writeResult renders a content write Result. Failed writes are 500 unless
// the service reported bad input.
func writeResult(c *gin.Context, res models.Result) {
	if res.Success {
		c.JSON(http.StatusOK, res)
		return
	}
	status := http.StatusInternalServerError
	if isValidationMessage(res.Error) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"ok": false, "success": false, "message": res.Error})
}

func isValidationMessage(msg string) bool {
	return strings.HasPrefix(msg, models.ErrValidation.Error())
}
