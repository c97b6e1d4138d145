package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

type playerRepo interface {
	ClaimSeat(ctx context.Context, room, participantID string) (entity.Seat, error)
}

// SeatNegotiator - assigns each participant of a room a stable seat.
type SeatNegotiator struct {
	logger     *slog.Logger
	playerRepo playerRepo
}

func NewSeatNegotiator(logger *slog.Logger, playerRepo playerRepo) *SeatNegotiator {
	return &SeatNegotiator{
		logger:     logger.With("component", "seat-negotiator"),
		playerRepo: playerRepo,
	}
}

// Join - returns the seat of participantID in room, claiming a free one if needed.
// The claim is a single atomic update of the players record, so two joiners never share a seat.
func (that *SeatNegotiator) Join(ctx context.Context, room, participantID string) (entity.Seat, error) {
	log := that.logger.With("method", "Join")

	room, err := NormalizeRoom(room)
	if err != nil {
		return entity.NoSeat, err
	}

	if participantID == "" {
		return entity.NoSeat, apperror.ErrInvalidParticipant
	}

	seat, err := that.playerRepo.ClaimSeat(ctx, room, participantID)
	if errors.Is(err, apperror.ErrRoomFull) {
		log.Info("room is full", "room", room)
		return entity.NoSeat, fmt.Errorf("room %s: %w", room, apperror.ErrRoomFull)
	}

	if err != nil {
		return entity.NoSeat, fmt.Errorf("failed to join room %s: %w", room, err)
	}

	log.Info("seat assigned", "room", room, "seat", seat)

	return seat, nil
}

// NormalizeRoom - room codes are compared exactly after trimming surrounding whitespace.
func NormalizeRoom(room string) (string, error) {
	room = strings.TrimSpace(room)
	if room == "" {
		return "", apperror.ErrInvalidRoom
	}

	return room, nil
}
