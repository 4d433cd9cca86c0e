// Package web serves the video summarizer form.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"briefkit/internal/config"
	"briefkit/internal/media"
)

// SummarizeFunc runs the full summarization pipeline for one URL
type SummarizeFunc func(ctx context.Context, videoURL string) (string, error)

// Server hosts the summarizer web UI
type Server struct {
	manager   *config.Manager
	summarize SummarizeFunc
	limiter   *ipLimiter
	engine    *gin.Engine

	hostOverride string
	portOverride int
}

func New(manager *config.Manager, summarize SummarizeFunc) *Server {
	cfg := manager.GetConfig()

	if !cfg.Server.Dev {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		manager:   manager,
		summarize: summarize,
		limiter:   newIPLimiter(cfg.Server.RatePerMinute, cfg.Server.RateBurst),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(securityHeaders(manager))
	engine.Use(maxBodyBytes(manager))
	engine.SetHTMLTemplate(pageTemplate())

	engine.GET("/", s.handleIndex)
	engine.POST("/summarize", s.handleSummarize)
	engine.GET("/healthz", s.handleHealth)

	s.engine = engine
	return s
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// OverrideAddr takes precedence over the configured listen address. Zero
// values leave the configured ones in place.
func (s *Server) OverrideAddr(host string, port int) {
	s.hostOverride = host
	s.portOverride = port
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSummarize(c *gin.Context) {
	// Pick up rate changes from config reloads before consulting the bucket
	cfg := s.manager.GetConfig()
	s.limiter.update(cfg.Server.RatePerMinute, cfg.Server.RateBurst)

	if !s.limiter.allow(c.ClientIP()) {
		c.HTML(http.StatusTooManyRequests, "index", gin.H{
			"Summary": "Too many requests. Please try again later.",
		})
		return
	}

	videoURL := strings.TrimSpace(c.PostForm("video_url"))
	if videoURL == "" {
		c.HTML(http.StatusBadRequest, "index", gin.H{
			"Summary": "Error: Please provide a YouTube URL",
		})
		return
	}

	summary, err := s.summarize(c.Request.Context(), videoURL)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrInvalidURL):
			log.Printf("web: validation error: %v", err)
			c.HTML(http.StatusBadRequest, "index", gin.H{
				"Summary": "Error: Invalid YouTube URL",
			})
		case errors.Is(err, media.ErrDownload):
			log.Printf("web: download error: %v", err)
			c.HTML(http.StatusBadRequest, "index", gin.H{
				"Summary": "Error: Error downloading video. Please check the URL and try again.",
			})
		default:
			log.Printf("web: unexpected error: %v", err)
			c.HTML(http.StatusInternalServerError, "index", gin.H{
				"Summary": "An error occurred while processing your request. Please try again.",
			})
		}
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{"Summary": summary})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	cfg := s.manager.GetConfig()
	host := cfg.Server.Host
	port := cfg.Server.Port
	if s.hostOverride != "" {
		host = s.hostOverride
	}
	if s.portOverride > 0 {
		port = s.portOverride
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("web: listening on http://%s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("web: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
