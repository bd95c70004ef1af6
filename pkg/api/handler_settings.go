package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-ai/inkwell/pkg/scheduler"
)

// listSettingsHandler handles GET /api/v1/settings.
func (s *Server) listSettingsHandler(c *gin.Context) {
	all, err := s.settings.All(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

// putSettingHandler handles PUT /api/v1/settings/:key.
func (s *Server) putSettingHandler(c *gin.Context) {
	var req struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.settings.Set(c.Request.Context(), c.Param("key"), req.Value); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{c.Param("key"): req.Value})
}

// jobStatusHandler handles GET /api/v1/processing/status.
func (s *Server) jobStatusHandler(c *gin.Context) {
	state, err := s.jobs.Ensure(c.Request.Context(), scheduler.AutoProcessingJob)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// pauseJobHandler handles POST /api/v1/processing/pause.
func (s *Server) pauseJobHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.Reason == "" {
		req.Reason = "paused via API"
	}
	if err := s.jobs.Pause(c.Request.Context(), scheduler.AutoProcessingJob, req.Reason); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "paused"})
}

// resumeJobHandler handles POST /api/v1/processing/resume.
func (s *Server) resumeJobHandler(c *gin.Context) {
	if err := s.jobs.Resume(c.Request.Context(), scheduler.AutoProcessingJob); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "running"})
}

// runMaintenanceHandler handles POST /api/v1/maintenance/:job/run,
// triggering one maintenance job outside its schedule.
func (s *Server) runMaintenanceHandler(c *gin.Context) {
	var err error
	switch c.Param("job") {
	case "retention":
		err = s.maintenance.RunRetention(c.Request.Context())
	case "schema_cleanup":
		err = s.maintenance.RunSchemaCleanup(c.Request.Context())
	case "metadata_enhancement":
		err = s.maintenance.RunMetadataEnhancement(c.Request.Context())
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown maintenance job"})
		return
	}
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}
