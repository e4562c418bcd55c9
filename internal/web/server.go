// Package web hosts the browser-facing terminal story service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/warmpool/sprite-terminal/internal/platform/timeouts"
	"github.com/warmpool/sprite-terminal/internal/sequence"
	"github.com/warmpool/sprite-terminal/internal/story"
	"github.com/warmpool/sprite-terminal/internal/sysinfo"
	"github.com/warmpool/sprite-terminal/internal/web/platform/httpx"
	"github.com/warmpool/sprite-terminal/internal/web/platform/observability"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
}

// Server hosts the HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler: story document resolved against the
// host snapshot, boot schedule computed once, routes wired, middleware on top.
func NewHandler(cfg Config) (http.Handler, error) {
	doc, err := story.Load()
	if err != nil {
		return nil, fmt.Errorf("load story document: %w", err)
	}

	info := sysinfo.Capture()
	resolved := doc.Resolve(map[string]string{
		"host": info.Hostname,
		"user": info.User,
		"cpus": strconv.Itoa(info.CPUCount),
	})

	schedule, err := sequence.New(sequence.BootLog(info), resolved.BlockCount(), sequence.DefaultTiming())
	if err != nil {
		return nil, fmt.Errorf("build presentation schedule: %w", err)
	}

	h := &handlers{
		doc:      resolved,
		info:     info,
		schedule: schedule,
	}
	return httpx.Chain(newRouter(h),
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.Tracing("sprite-terminal/web"),
		observability.RequestLogger(log.Default()),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
