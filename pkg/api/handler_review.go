package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-ai/inkwell/pkg/models"
)

// listReviewsHandler handles GET /api/v1/reviews with optional ?kind=
// and ?doc_id= filters.
func (s *Server) listReviewsHandler(c *gin.Context) {
	docID := 0
	if raw := c.Query("doc_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doc_id"})
			return
		}
		docID = parsed
	}

	items, err := s.reviews.List(c.Request.Context(), c.Query("kind"), docID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// reviewCountsHandler handles GET /api/v1/reviews/counts.
func (s *Server) reviewCountsHandler(c *gin.Context) {
	counts, err := s.reviews.CountsByKind(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// similarGroupsHandler handles GET /api/v1/reviews/similar-groups.
func (s *Server) similarGroupsHandler(c *gin.Context) {
	groups, err := s.reviews.SimilarGroups(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(groups), "groups": groups})
}

// getReviewHandler handles GET /api/v1/reviews/:id.
func (s *Server) getReviewHandler(c *gin.Context) {
	item, err := s.reviews.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// updateReviewHandler handles PATCH /api/v1/reviews/:id.
func (s *Server) updateReviewHandler(c *gin.Context) {
	var req models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := s.reviews.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// removeReviewHandler handles DELETE /api/v1/reviews/:id. The item is
// dropped without touching the document.
func (s *Server) removeReviewHandler(c *gin.Context) {
	if err := s.reviews.Remove(c.Request.Context(), c.Param("id")); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// approveReviewHandler handles POST /api/v1/reviews/:id/approve. An
// optional body value overrides the suggested one.
func (s *Server) approveReviewHandler(c *gin.Context) {
	var req models.ApproveReviewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if err := s.reviews.Approve(c.Request.Context(), c.Param("id"), req.Value); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}

// rejectReviewHandler handles POST /api/v1/reviews/:id/reject. The
// optional feedback is recorded and, when block is set, the suggestion
// is blocklisted for its kind.
func (s *Server) rejectReviewHandler(c *gin.Context) {
	var req struct {
		Feedback string `json:"feedback"`
		Block    bool   `json:"block"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	item, err := s.reviews.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	if req.Block {
		if err := s.blocklist.Add(c.Request.Context(), string(item.Kind), item.Suggestion, req.Feedback); err != nil {
			s.abortWithError(c, err)
			return
		}
	}
	if err := s.reviews.Reject(c.Request.Context(), item.ID, req.Feedback); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "rejected"})
}

// bulkReviewHandler handles POST /api/v1/reviews/bulk.
func (s *Server) bulkReviewHandler(c *gin.Context) {
	var req models.BulkReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids must not be empty"})
		return
	}
	result := s.reviews.Bulk(c.Request.Context(), req)
	c.JSON(http.StatusOK, result)
}
