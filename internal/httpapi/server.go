// Package httpapi serves the scoring pipeline over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/HendryAvila/lifemorale/internal/config"
	"github.com/HendryAvila/lifemorale/internal/lmi"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configures a Server.
type Options struct {
	Service  *lmi.Service
	Settings config.HTTPSettings
	// Gatherer backs GET /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
	Version  string
}

// Server is the HTTP front end of a scoring Service.
type Server struct {
	engine          *gin.Engine
	httpServer      *http.Server
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

// NewServer builds the gin engine and routes. The gin mode is the
// caller's to set.
func NewServer(opts Options) (*Server, error) {
	if opts.Service == nil {
		return nil, errors.New("httpapi: nil service")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(requestLogger(logger))
	engine.Use(gin.Recovery())

	if opts.Settings.CORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
		engine.Use(cors.New(corsConfig))
	}

	s := &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:         opts.Settings.Addr,
			Handler:      engine,
			ReadTimeout:  opts.Settings.ReadTimeout,
			WriteTimeout: opts.Settings.WriteTimeout,
		},
		logger:          logger,
		shutdownTimeout: opts.Settings.ShutdownTimeout,
	}
	maxBody := opts.Settings.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = config.DefaultMaxBodyBytes
	}
	s.setupRoutes(newHandler(opts.Service, opts.Version, maxBody), opts.Gatherer)
	return s, nil
}

func (s *Server) setupRoutes(h *handler, gatherer prometheus.Gatherer) {
	s.engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})
	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
	})

	s.engine.GET("/healthz", h.health)

	api := s.engine.Group("/api")
	api.POST("/lmi", h.score)

	if gatherer != nil {
		s.engine.GET("/metrics", gin.WrapH(metricsHandler(gatherer)))
	}
}

// Handler returns the routed engine.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("http server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		timeout := s.shutdownTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		s.logger.Info("http server shutting down")
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
