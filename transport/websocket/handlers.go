package websocket

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
)

func (that *Server) handleDecide(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	log := that.logger.With("method", "handleDecide")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil || payloadReq.Turn == nil {
		return that.sendErrorResponse(conn, msg.Action, "turn and board are required")
	}

	decision, err := that.decisions.Decide(ctx, *payloadReq.Turn, payloadReq.Board)
	if err != nil {
		log.Info("no move", "error", err)
		return that.sendMessage(conn, msg.Action, Payload{Decision: decision, Error: decision.Reason})
	}

	return that.sendMessage(conn, msg.Action, Payload{Decision: decision})
}

func (that *Server) handleValidate(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil || payloadReq.Turn == nil {
		return that.sendErrorResponse(conn, msg.Action, "turn and board are required")
	}

	valid := true
	payload := Payload{Valid: &valid}

	if err := that.decisions.Validate(ctx, *payloadReq.Turn, payloadReq.Board); err != nil {
		valid = false
		payload.Error = err.Error()
	}

	return that.sendMessage(conn, msg.Action, payload)
}
