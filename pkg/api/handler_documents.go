package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-ai/inkwell/pkg/models"
)

// processHandler handles POST /api/v1/documents/:id/process.
//
// By default the response is an NDJSON stream of pipeline events, one
// JSON object per line, flushed as the run progresses. With
// ?stream=false the run executes to completion and the final
// PipelineResult is returned as one JSON document.
func (s *Server) processHandler(c *gin.Context) {
	docID, ok := s.docID(c)
	if !ok {
		return
	}

	if c.Query("stream") == "false" {
		result := s.orchestrator.Run(c.Request.Context(), docID)
		c.JSON(http.StatusOK, result)
		return
	}

	c.Header("Content-Type", "application/x-ndjson")
	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)

	flusher, canFlush := c.Writer.(http.Flusher)
	enc := json.NewEncoder(c.Writer)
	for event := range s.orchestrator.RunStream(c.Request.Context(), docID) {
		if err := enc.Encode(event); err != nil {
			// Client went away; the run continues to completion because
			// its state lives in DMS tags, not in this connection.
			return
		}
		if canFlush {
			flusher.Flush()
		}
	}
}

// runStageHandler handles POST /api/v1/documents/:id/stages/:stage,
// executing one named stage ad hoc.
func (s *Server) runStageHandler(c *gin.Context) {
	docID, ok := s.docID(c)
	if !ok {
		return
	}
	result := s.orchestrator.RunStage(c.Request.Context(), docID, c.Param("stage"))
	if result.Error != "" && len(result.Steps) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Error})
		return
	}
	c.JSON(http.StatusOK, result)
}

// historyHandler handles GET /api/v1/documents/:id/history.
func (s *Server) historyHandler(c *gin.Context) {
	docID, ok := s.docID(c)
	if !ok {
		return
	}
	entries, err := s.recorder.ByDoc(c.Request.Context(), docID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doc_id": docID, "entries": entries})
}

// bulkIngestHandler handles POST /api/v1/documents/bulk-ingest.
func (s *Server) bulkIngestHandler(c *gin.Context) {
	var req models.BulkIngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := s.sched.BulkIngest(c.Request.Context(), req)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) docID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document id"})
		return 0, false
	}
	return id, true
}
