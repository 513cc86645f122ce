// Package httpapi exposes the case intake pipeline over HTTP: image
// storage and retrieval plus notification dispatch.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/caseintake/internal/logging"
	"github.com/dmitrijs2005/caseintake/internal/server/services"
)

// Options carries the transport-level settings of the server.
type Options struct {
	// Address is the listen address, e.g. ":8080".
	Address string
	// PublicBaseURL, when set, prefixes the download URLs returned by the
	// image upload endpoint. When empty the request's own host is used.
	PublicBaseURL string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
}

// HTTPServer wires the intake services into a gin router and runs it
// until the context is cancelled.
type HTTPServer struct {
	opts          Options
	images        *services.ImageService
	submissions   *services.SubmissionService
	notifications *services.NotificationService
	logger        logging.Logger
}

func NewHTTPServer(opts Options, img *services.ImageService, sub *services.SubmissionService, ntf *services.NotificationService, l logging.Logger) *HTTPServer {
	return &HTTPServer{
		opts:          opts,
		images:        img,
		submissions:   sub,
		notifications: ntf,
		logger:        l.With("module", "http_server"),
	}
}

// Router builds the gin engine with all intake routes registered.
func (s *HTTPServer) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	{
		api.GET("/ping", s.ping)
		api.POST("/images", s.storeImages)
		api.GET("/images/:imageID", s.downloadImage)
		api.POST("/notifications", s.sendNotification)
	}

	return router
}

func (s *HTTPServer) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.opts.Address,
		Handler:      s.Router(),
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "Shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.opts.Address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// downloadBaseURL resolves the origin used for absolute download URLs.
func (s *HTTPServer) downloadBaseURL(c *gin.Context) string {
	if s.opts.PublicBaseURL != "" {
		return s.opts.PublicBaseURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
