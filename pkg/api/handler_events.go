package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-ai/inkwell/pkg/events"
)

// eventStreamHandler handles GET /api/v1/events/stream, the NDJSON event
// feed. ?channel= selects the global docs feed (default) or one
// document's channel via ?doc_id=. A Last-Event-ID header (or
// ?since_id=) replays persisted events after that id before live ones.
func (s *Server) eventStreamHandler(c *gin.Context) {
	channel := events.GlobalDocsChannel
	if raw := c.Query("doc_id"); raw != "" {
		docID, err := strconv.Atoi(raw)
		if err != nil || docID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doc_id"})
			return
		}
		channel = events.DocChannel(docID)
	}

	var sinceID int64
	if raw := c.GetHeader("Last-Event-ID"); raw != "" {
		sinceID, _ = strconv.ParseInt(raw, 10, 64)
	} else if raw := c.Query("since_id"); raw != "" {
		sinceID, _ = strconv.ParseInt(raw, 10, 64)
	}

	sub, err := s.subscribers.Subscribe(c.Request.Context(), channel, sinceID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	defer s.subscribers.Unsubscribe(sub)

	c.Header("Content-Type", "application/x-ndjson")
	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)

	flusher, canFlush := c.Writer.(http.Flusher)
	for {
		select {
		case <-c.Request.Context().Done():
			return
		case payload, ok := <-sub.Events():
			if !ok {
				return
			}
			if _, err := c.Writer.Write(append(payload, '\n')); err != nil {
				return
			}
			if canFlush {
				flusher.Flush()
			}
		}
	}
}
