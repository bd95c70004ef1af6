// Package api exposes the HTTP surface: document processing, the review
// queue, the blocklist, settings, scheduler control, and the NDJSON
// event stream.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-ai/inkwell/pkg/cleanup"
	"github.com/inkwell-ai/inkwell/pkg/config"
	"github.com/inkwell-ai/inkwell/pkg/database"
	"github.com/inkwell-ai/inkwell/pkg/events"
	"github.com/inkwell-ai/inkwell/pkg/history"
	"github.com/inkwell-ai/inkwell/pkg/pipeline"
	"github.com/inkwell-ai/inkwell/pkg/review"
	"github.com/inkwell-ai/inkwell/pkg/scheduler"
	"github.com/inkwell-ai/inkwell/pkg/settings"
)

// Server wires the service layer to HTTP handlers.
type Server struct {
	cfg          *config.Config
	db           *database.Client
	orchestrator *pipeline.Orchestrator
	reviews      *review.Service
	blocklist    *review.Blocklist
	settings     *settings.Service
	recorder     *history.Recorder
	sched        *scheduler.Scheduler
	jobs         *scheduler.JobStore
	activity     *scheduler.ActivityTracker
	subscribers  *events.SubscriberManager
	maintenance  *cleanup.Service
	logger       *slog.Logger
}

// ServerDeps carries the server's collaborators.
type ServerDeps struct {
	Config       *config.Config
	DB           *database.Client
	Orchestrator *pipeline.Orchestrator
	Reviews      *review.Service
	Blocklist    *review.Blocklist
	Settings     *settings.Service
	Recorder     *history.Recorder
	Scheduler    *scheduler.Scheduler
	Jobs         *scheduler.JobStore
	Activity     *scheduler.ActivityTracker
	Subscribers  *events.SubscriberManager
	Maintenance  *cleanup.Service
	Logger       *slog.Logger
}

// NewServer creates an API server.
func NewServer(d ServerDeps) *Server {
	return &Server{
		cfg:          d.Config,
		db:           d.DB,
		orchestrator: d.Orchestrator,
		reviews:      d.Reviews,
		blocklist:    d.Blocklist,
		settings:     d.Settings,
		recorder:     d.Recorder,
		sched:        d.Scheduler,
		jobs:         d.Jobs,
		activity:     d.Activity,
		subscribers:  d.Subscribers,
		maintenance:  d.Maintenance,
		logger:       d.Logger.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), securityHeaders())

	r.GET("/health", s.healthHandler)
	r.GET("/ready", s.readyHandler)
	r.GET("/version", s.versionHandler)

	v1 := r.Group("/api/v1")
	v1.Use(s.trackActivity())
	{
		docs := v1.Group("/documents")
		docs.POST("/:id/process", s.processHandler)
		docs.POST("/:id/stages/:stage", s.runStageHandler)
		docs.GET("/:id/history", s.historyHandler)
		docs.POST("/bulk-ingest", s.bulkIngestHandler)

		reviews := v1.Group("/reviews")
		reviews.GET("", s.listReviewsHandler)
		reviews.GET("/counts", s.reviewCountsHandler)
		reviews.GET("/similar-groups", s.similarGroupsHandler)
		reviews.POST("/bulk", s.bulkReviewHandler)
		reviews.GET("/:id", s.getReviewHandler)
		reviews.PATCH("/:id", s.updateReviewHandler)
		reviews.DELETE("/:id", s.removeReviewHandler)
		reviews.POST("/:id/approve", s.approveReviewHandler)
		reviews.POST("/:id/reject", s.rejectReviewHandler)

		blocklist := v1.Group("/blocklist")
		blocklist.GET("", s.listBlocklistHandler)
		blocklist.POST("", s.addBlocklistHandler)
		blocklist.DELETE("", s.removeBlocklistHandler)

		settingsGroup := v1.Group("/settings")
		settingsGroup.GET("", s.listSettingsHandler)
		settingsGroup.PUT("/:key", s.putSettingHandler)

		job := v1.Group("/processing")
		job.GET("/status", s.jobStatusHandler)
		job.POST("/pause", s.pauseJobHandler)
		job.POST("/resume", s.resumeJobHandler)

		maint := v1.Group("/maintenance")
		maint.POST("/:job/run", s.runMaintenanceHandler)
	}

	// The event stream is exempt from activity tracking: an open UI tab
	// must not keep the scheduler paused forever.
	r.GET("/api/v1/events/stream", s.eventStreamHandler)

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("API server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
