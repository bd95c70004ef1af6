package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-ai/inkwell/pkg/models"
)

// listBlocklistHandler handles GET /api/v1/blocklist.
func (s *Server) listBlocklistHandler(c *gin.Context) {
	entries, err := s.blocklist.List(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(entries), "entries": entries})
}

// addBlocklistHandler handles POST /api/v1/blocklist.
func (s *Server) addBlocklistHandler(c *gin.Context) {
	var req models.AddBlocklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.blocklist.Add(c.Request.Context(), req.Kind, req.Suggestion, req.Reason); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "blocked"})
}

// removeBlocklistHandler handles DELETE /api/v1/blocklist with
// ?kind= and ?suggestion=.
func (s *Server) removeBlocklistHandler(c *gin.Context) {
	kind, suggestion := c.Query("kind"), c.Query("suggestion")
	if kind == "" || suggestion == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind and suggestion are required"})
		return
	}
	if err := s.blocklist.Remove(c.Request.Context(), kind, suggestion); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
