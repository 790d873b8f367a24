package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	requestIDHeader = "X-Request-ID"
	shutdownTimeout = 5 * time.Second
)

type decisionService interface {
	Decide(ctx context.Context, turn int, cells []int) (*entity.Decision, error)
	Validate(ctx context.Context, turn int, cells []int) error
}

type Server struct {
	logger *slog.Logger
	router *gin.Engine
}

func New(logger *slog.Logger, decisions decisionService) *Server {
	gin.SetMode(gin.ReleaseMode)

	server := &Server{
		logger: logger.With("component", "rest"),
		router: gin.New(),
	}

	handlers := NewHandlers(server.logger, decisions)

	server.router.Use(gin.Recovery(), server.requestID())
	server.router.GET("/ping", PingHandler)
	server.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	server.router.POST("/decide", handlers.Decide)
	server.router.POST("/validate", handlers.Validate)

	return server
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// requestID - tags every request with an id, reusing the caller's one when present.
func (that *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
