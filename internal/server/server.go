// Package server exposes the tutorial catalog over a read-only JSON API
// for pages that embed the walkthrough.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ventiq/ventiq-terminal/pkg/debug"
	"github.com/ventiq/ventiq-terminal/pkg/models"
	"github.com/ventiq/ventiq-terminal/pkg/search"
	"github.com/ventiq/ventiq-terminal/pkg/walkthrough"
)

// Server serves one catalog. Reload swaps the catalog atomically; requests
// in flight keep the snapshot they started with.
type Server struct {
	mu       sync.RWMutex
	catalog  *models.Catalog
	resolver *walkthrough.ScreenshotResolver
	settings *models.Settings
	search   *search.Engine
}

// New creates a server over a catalog and screenshot index
func New(catalog *models.Catalog, index *models.ScreenshotIndex, settings *models.Settings) *Server {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	return &Server{
		catalog:  catalog,
		resolver: walkthrough.NewScreenshotResolver(index, settings.Assets),
		settings: settings,
		search:   search.NewEngine(catalog),
	}
}

// Reload replaces the catalog and screenshot index
func (s *Server) Reload(catalog *models.Catalog, index *models.ScreenshotIndex) {
	resolver := walkthrough.NewScreenshotResolver(index, s.settings.Assets)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = catalog
	s.resolver = resolver
	s.search.Index(catalog)
}

// snapshot returns the current catalog and resolver
func (s *Server) snapshot() (*models.Catalog, *walkthrough.ScreenshotResolver) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog, s.resolver
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		debug.Log("server: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	}
}
