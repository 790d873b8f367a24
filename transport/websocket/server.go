package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	actionDecide   = "decide"
	actionValidate = "validate"
	actionError    = "error"

	shutdownTimeout = 5 * time.Second
)

type decisionService interface {
	Decide(ctx context.Context, turn int, cells []int) (*entity.Decision, error)
	Validate(ctx context.Context, turn int, cells []int) error
}

type handlerFunc func(ctx context.Context, conn *websocket.Conn, message *Message) error

type Server struct {
	logger    *slog.Logger
	decisions decisionService
	upgrader  websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, decisions decisionService) *Server {
	server := &Server{
		logger:    logger.With("component", "websocket"),
		decisions: decisions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionDecide] = server.handleDecide
	server.handlers[actionValidate] = server.handleValidate

	return server
}

// Handler - the /ws endpoint, every connection is served until the client or ctx closes it.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})
	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(ctx),
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

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection", "connection_id", uuid.NewString())

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	done := make(chan struct{})
	defer close(done)

	go that.closeOnShutdown(ctx, done, conn)

	log.Info("WebSocket connection established")

	if err = that.handleMessages(ctx, conn, log); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// closeOnShutdown - unblocks the read loop once ctx is done, hijacked connections outlive srv.Shutdown.
func (that *Server) closeOnShutdown(ctx context.Context, done <-chan struct{}, conn *websocket.Conn) {
	select {
	case <-done:
	case <-ctx.Done():
		closeMessage := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
		_ = conn.WriteControl(websocket.CloseMessage, closeMessage, time.Now().Add(time.Second))
		_ = conn.Close()
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, log *slog.Logger) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		_, reqBody, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				log.Info("WebSocket connection closed on shutdown")
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Info("WebSocket connection closed")
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			if err = that.sendErrorResponse(conn, actionError, "message is not valid JSON"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			if err = that.sendErrorResponse(conn, message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, conn, &message); err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}
