package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// handleGameStart - the new session is pushed by the GameStarted callback.
func (that *Server) handleGameStart(_ context.Context, client *client, msg *Message) error {
	log := that.logger.With("method", "handleGameStart")

	var payloadReq Payload
	if err := decodePayload(msg, &payloadReq); err != nil {
		client.sendError(msg.Action, "malformed payload")
		return err
	}

	size := payloadReq.Size
	if size == 0 {
		size = that.defaultSize
	}

	session, err := client.manager.StartGame(payloadReq.PlayerOne, payloadReq.PlayerTwo, size)
	if err != nil {
		client.sendError(msg.Action, err.Error())
		return fmt.Errorf("failed to start game: %w", err)
	}

	log.Info("game started", "gameID", session.ID)

	return nil
}

// handleGameTurn - accepted moves are pushed by the presenter callbacks; a refused move is answered here.
func (that *Server) handleGameTurn(_ context.Context, client *client, msg *Message) error {
	var payloadReq Payload
	if err := decodePayload(msg, &payloadReq); err != nil {
		client.sendError(msg.Action, "malformed payload")
		return err
	}

	if payloadReq.Row == nil || payloadReq.Col == nil {
		client.sendError(msg.Action, "row and col are required")
		return nil
	}

	outcome, err := client.manager.MakeMove(*payloadReq.Row, *payloadReq.Col)
	if err != nil {
		client.sendError(msg.Action, err.Error())

		if errors.Is(err, apperror.ErrInvalidCell) || errors.Is(err, apperror.ErrGameFinished) ||
			errors.Is(err, apperror.ErrNoActiveGame) {
			return nil
		}

		return fmt.Errorf("failed to make move: %w", err)
	}

	if outcome.Kind == entity.OutcomeRejected {
		client.send(msg.Action, Payload{Outcome: &outcome, Error: apperror.ErrCellOccupied.Error()})
	}

	return nil
}

// handleRecordsList - a positive top returns the fastest wins, otherwise every record in order.
func (that *Server) handleRecordsList(ctx context.Context, client *client, msg *Message) error {
	var payloadReq Payload
	if err := decodePayload(msg, &payloadReq); err != nil {
		client.sendError(msg.Action, "malformed payload")
		return err
	}

	var (
		records []*entity.Record
		err     error
	)

	if payloadReq.Top > 0 {
		records, err = client.manager.Leaderboard(ctx, payloadReq.Top)
	} else {
		records, err = client.manager.Records(ctx)
	}

	if err != nil {
		client.sendError(msg.Action, "failed to read records")
		return err
	}

	if records == nil {
		records = []*entity.Record{}
	}

	client.send(msg.Action, Payload{Records: records})

	return nil
}

func decodePayload(msg *Message, payload *Payload) error {
	if len(msg.Payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(msg.Payload, payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return nil
}
