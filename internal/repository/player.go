package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

type PlayerRepository interface {
	GetByRoom(ctx context.Context, room string) (*entity.Players, error)
	ClaimSeat(ctx context.Context, room, participantID string) (entity.Seat, error)
}

type dbPlayers struct {
	store DocumentStore
}

func NewPlayerRepository(store DocumentStore) PlayerRepository {
	return &dbPlayers{
		store: store,
	}
}

// GetByRoom - an unknown room has an empty players record.
func (that *dbPlayers) GetByRoom(ctx context.Context, room string) (*entity.Players, error) {
	response, err := that.store.Read(ctx, playersPath(room))
	if errors.Is(err, ErrDocumentNotFound) {
		return &entity.Players{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	var players entity.Players
	if err = json.Unmarshal(response, &players); err != nil {
		return nil, fmt.Errorf("failed to unmarshal players: %w", err)
	}

	return &players, nil
}

// ClaimSeat - reads, assigns and writes the players record as one atomic update.
func (that *dbPlayers) ClaimSeat(ctx context.Context, room, participantID string) (entity.Seat, error) {
	seat := entity.NoSeat

	err := that.store.Update(ctx, playersPath(room), func(current []byte) ([]byte, error) {
		var players entity.Players
		if current != nil {
			if err := json.Unmarshal(current, &players); err != nil {
				return nil, fmt.Errorf("failed to unmarshal players: %w", err)
			}
		}

		assigned, changed, err := players.Assign(participantID)
		if err != nil {
			return nil, err
		}

		seat = assigned
		if !changed {
			return nil, nil
		}

		playersJSON, err := json.Marshal(players)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal players: %w", err)
		}

		return playersJSON, nil
	})
	if err != nil {
		return entity.NoSeat, fmt.Errorf("failed to claim seat: %w", err)
	}

	return seat, nil
}
