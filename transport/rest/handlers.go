package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type decideRequest struct {
	Turn  *int  `json:"turn" binding:"required"`
	Board []int `json:"board" binding:"required"`
}

type validateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type Handlers interface {
	Decide(c *gin.Context)
	Validate(c *gin.Context)
}

type handlers struct {
	logger    *slog.Logger
	decisions decisionService
}

func NewHandlers(logger *slog.Logger, decisions decisionService) Handlers {
	return &handlers{
		logger:    logger,
		decisions: decisions,
	}
}

// Decide - 200 with the move, or 422 with move -1 and the reason.
func (that *handlers) Decide(c *gin.Context) {
	log := that.logger.With("method", "Decide", "request_id", c.GetString(requestIDHeader))

	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Info("bad request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "turn and board are required"})
		return
	}

	decision, err := that.decisions.Decide(requestContext(c), *req.Turn, req.Board)
	if err != nil {
		log.Info("no move", "error", err)
		c.JSON(http.StatusUnprocessableEntity, decision)
		return
	}

	c.JSON(http.StatusOK, decision)
}

func (that *handlers) Validate(c *gin.Context) {
	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "turn and board are required"})
		return
	}

	if err := that.decisions.Validate(requestContext(c), *req.Turn, req.Board); err != nil {
		c.JSON(http.StatusOK, validateResponse{Valid: false, Reason: err.Error()})
		return
	}

	c.JSON(http.StatusOK, validateResponse{Valid: true})
}

func requestContext(c *gin.Context) context.Context {
	return c.Request.Context()
}
