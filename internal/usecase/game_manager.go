package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

// GameManager - joins a participant to a room: seat negotiation, then the game session.
type GameManager struct {
	logger *slog.Logger

	negotiator   *SeatNegotiator
	synchronizer *GameSynchronizer
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepo, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game-manager"),

		negotiator:   NewSeatNegotiator(logger, playerRepo),
		synchronizer: NewGameSynchronizer(logger, gameRepo),
	}
}

// Join - seats participantID in room and opens its game session.
// A full room fails with apperror.ErrRoomFull and leaves nothing subscribed.
func (that *GameManager) Join(ctx context.Context, room, participantID string, renderer Renderer) (*Session, error) {
	log := that.logger.With("method", "Join")

	seat, err := that.negotiator.Join(ctx, room, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to take a seat: %w", err)
	}

	session, err := that.synchronizer.Open(ctx, room, seat, renderer)
	if err != nil {
		return nil, fmt.Errorf("failed to open game: %w", err)
	}

	log.Info("joined room", "room", session.Room(), "seat", seat)

	return session, nil
}
