package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

type DecisionService interface {
	Decide(ctx context.Context, turn int, cells []int) (*entity.Decision, error)
	Validate(ctx context.Context, turn int, cells []int) error
}

type decisionCache interface {
	CreateOrUpdate(ctx context.Context, board entity.Board, turn entity.Turn, decision *entity.Decision) error
	Get(ctx context.Context, board entity.Board, turn entity.Turn) (*entity.Decision, error)
	Delete(ctx context.Context, board entity.Board, turn entity.Turn) error
}

type decisionService struct {
	logger *slog.Logger

	cache decisionCache
}

// NewDecisionService - cache may be nil, then every request runs the search.
func NewDecisionService(logger *slog.Logger, cache decisionCache) DecisionService {
	return &decisionService{
		logger: logger.With("component", "decision"),
		cache:  cache,
	}
}

// Decide - returns the decision for the position. On invalid input the decision is still returned,
// with Move set to -1 and the reason filled in, together with the error.
func (that *decisionService) Decide(ctx context.Context, turn int, cells []int) (*entity.Decision, error) {
	log := that.logger.With("method", "Decide", "turn", turn)

	board, boardErr := entity.ParseBoard(cells)
	playerTurn, turnErr := entity.ParseTurn(turn)
	cacheable := that.cache != nil && boardErr == nil && turnErr == nil

	if cacheable {
		if cached := that.lookup(ctx, log, board, playerTurn); cached != nil {
			metrics.Decisions.WithLabelValues(metrics.ResultMove).Inc()
			return cached, nil
		}
	}

	decision, err := tictactoe.Explain(turn, cells)
	metrics.Decisions.WithLabelValues(resultLabel(err)).Inc()

	if err != nil {
		log.Debug("no move for position", "board", cells, "reason", decision.Reason)
		return decision, fmt.Errorf("failed to decide: %w", err)
	}

	metrics.SearchNodes.Observe(float64(decision.Nodes))
	log.Debug("decided", "board", board.String(), "move", decision.Move, "score", decision.Score, "nodes", decision.Nodes)

	if cacheable {
		if err = that.cache.CreateOrUpdate(ctx, board, playerTurn, decision); err != nil {
			log.Error("could not cache decision", "error", err)
		}
	}

	return decision, nil
}

func (that *decisionService) Validate(_ context.Context, turn int, cells []int) error {
	if err := tictactoe.Validate(turn, cells); err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}
	return nil
}

func (that *decisionService) lookup(ctx context.Context, log *slog.Logger, board entity.Board, turn entity.Turn) *entity.Decision {
	decision, err := that.cache.Get(ctx, board, turn)

	switch {
	case err == nil && !playable(board, decision):
		metrics.CacheLookups.WithLabelValues("stale").Inc()
		log.Warn("evicting unplayable cached decision", "board", board.String(), "decision", decision)

		if err = that.cache.Delete(ctx, board, turn); err != nil && !errors.Is(err, repository.ErrDecisionNotFound) {
			log.Error("could not evict cached decision", "error", err)
		}
	case err == nil:
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		decision.Cached = true
		return decision
	case errors.Is(err, repository.ErrDecisionNotFound):
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	default:
		metrics.CacheLookups.WithLabelValues("error").Inc()
		log.Error("could not read decision cache", "error", err)
	}

	return nil
}

// playable - the cached move must point at an empty cell of the board it was stored under.
func playable(board entity.Board, decision *entity.Decision) bool {
	return decision != nil && decision.Move >= 0 && decision.Move < entity.BoardSize && board[decision.Move] == entity.EmptyCell
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultMove
	case errors.Is(err, apperror.ErrMalformedInput):
		return metrics.ResultMalformed
	case errors.Is(err, apperror.ErrUnreachableState):
		return metrics.ResultUnreachable
	case errors.Is(err, apperror.ErrGameFinished):
		return metrics.ResultFinished
	default:
		return metrics.ResultNoMove
	}
}
