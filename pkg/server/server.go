package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"schedulebot/pkg/metrics"
)

const shutdownTimeout = 5 * time.Second

// Lifecycle is the bot as seen by the hosting process.
type Lifecycle interface {
	Start() error
	Shutdown() error
}

// Server keeps the hosting process alive and answers its liveness checks.
type Server struct {
	engine *gin.Engine
	http   *http.Server
	logger *log.Logger
}

func New(addr string, metrics *metrics.Metrics, logger *log.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))

	engine.GET("/ping", Ping)
	if metrics != nil {
		engine.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	return &Server{
		engine: engine,
		http:   &http.Server{Addr: addr, Handler: engine, ReadHeaderTimeout: 10 * time.Second},
		logger: logger,
	}
}

// Ping reports that the process is alive.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP until ctx is done. The bot starts receiving once the listener
// is bound and is shut down before the server stops.
func (s *Server) Run(ctx context.Context, bot Lifecycle) error {
	listener, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.http.Addr, err)
	}

	served := make(chan error, 1)
	go func() { served <- s.http.Serve(listener) }()
	s.logger.Info("Server started", "addr", listener.Addr().String())

	if err := bot.Start(); err != nil {
		s.shutdown()
		return fmt.Errorf("error starting bot: %w", err)
	}

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down server")
	case err = <-served:
		s.logger.Error("Server stopped unexpectedly", "error", err)
	}

	if shutdownErr := bot.Shutdown(); shutdownErr != nil {
		s.logger.Error("Failed to shut down bot", "error", shutdownErr)
	}
	s.shutdown()

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error("Failed to shut down server", "error", err)
	}
}

func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"ip", c.ClientIP(),
		)
	}
}
