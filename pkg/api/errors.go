package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-ai/inkwell/pkg/dms"
	"github.com/inkwell-ai/inkwell/pkg/review"
)

// abortWithError maps service-layer errors to HTTP error responses.
func (s *Server) abortWithError(c *gin.Context, err error) {
	var validErr *review.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.Is(err, review.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, dms.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "document not found"})
	case errors.Is(err, dms.ErrUnauthorized):
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "document service rejected credentials"})
	case errors.Is(err, dms.ErrUnavailable):
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "document service unavailable"})
	default:
		s.logger.Error("Unexpected service error", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
