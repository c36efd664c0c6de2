package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Qankor386/BookApp/internal/repository"
)

// respondError maps repository errors to HTTP responses. Validation and
// stale-index failures are the caller's to fix; store failures mean the
// change was not persisted and the client should retry by resubmitting.
func respondError(c *gin.Context, err error) {
	var validation *repository.ValidationError
	var outOfRange *repository.IndexOutOfRangeError
	var unavailable *repository.StoreUnavailableError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &outOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": outOfRange.Error()})
	case errors.As(err, &unavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage is unavailable, the change was not saved"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
