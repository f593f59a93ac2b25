package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/evseevdm/laundrobook/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto the HTTP taxonomy: validation 400,
// authorization 403, missing records 404, everything else 500 with a generic
// body and a server-side log line.
func writeError(c *gin.Context, err error) {
	var ve domain.ValidationError
	var fe domain.ForbiddenError

	switch {
	case errors.As(err, &ve),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &fe), errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
