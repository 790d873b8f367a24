package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

var ErrDecisionNotFound = errors.New("decision not found")

type DecisionRepository interface {
	CreateOrUpdate(ctx context.Context, board entity.Board, turn entity.Turn, decision *entity.Decision) error
	Get(ctx context.Context, board entity.Board, turn entity.Turn) (*entity.Decision, error)
	Delete(ctx context.Context, board entity.Board, turn entity.Turn) error
}

type dbDecision struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDecisionRepository - decisions expire after ttl, zero keeps them forever.
func NewDecisionRepository(client *redis.Client, ttl time.Duration) DecisionRepository {
	return &dbDecision{
		client: client,
		ttl:    ttl,
	}
}

func decisionKey(board entity.Board, turn entity.Turn) string {
	return "decision:" + strconv.Itoa(int(turn)) + ":" + board.Key()
}

func (that *dbDecision) CreateOrUpdate(ctx context.Context, board entity.Board, turn entity.Turn, decision *entity.Decision) error {
	decisionJSON, err := json.Marshal(decision)
	if err != nil {
		return fmt.Errorf("could not marshal decision: %w", err)
	}

	err = that.client.Set(ctx, decisionKey(board, turn), decisionJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set decision: %w", err)
	}

	return nil
}

func (that *dbDecision) Get(ctx context.Context, board entity.Board, turn entity.Turn) (*entity.Decision, error) {
	response, err := that.client.Get(ctx, decisionKey(board, turn)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrDecisionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get decision: %w", err)
	}

	var decision entity.Decision
	if err = json.Unmarshal([]byte(response), &decision); err != nil {
		return nil, fmt.Errorf("failed to unmarshal decision: %w", err)
	}

	return &decision, nil
}

func (that *dbDecision) Delete(ctx context.Context, board entity.Board, turn entity.Turn) error {
	deleted, err := that.client.Del(ctx, decisionKey(board, turn)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete decision: %w", err)
	}

	if deleted == 0 {
		return ErrDecisionNotFound
	}

	return nil
}
