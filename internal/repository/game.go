package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	GetByRoom(ctx context.Context, room string) (*entity.Game, error)
	Save(ctx context.Context, room string, game *entity.Game) error
	CreateIfAbsent(ctx context.Context, room string, game *entity.Game) (*entity.Game, error)
	Restart(ctx context.Context, room string, finished *entity.Game) (*entity.Game, error)
	Watch(ctx context.Context, room string) (<-chan *entity.Game, error)
}

type dbGame struct {
	logger *slog.Logger
	store  DocumentStore
}

func NewGameRepository(logger *slog.Logger, store DocumentStore) GameRepository {
	return &dbGame{
		logger: logger.With("component", "game-repository"),
		store:  store,
	}
}

func (that *dbGame) GetByRoom(ctx context.Context, room string) (*entity.Game, error) {
	response, err := that.store.Read(ctx, roomPath(room))
	if errors.Is(err, ErrDocumentNotFound) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return decodeGame(response)
}

func (that *dbGame) Save(ctx context.Context, room string, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.store.Write(ctx, roomPath(room), gameJSON); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

// CreateIfAbsent - stores game unless the room already has one; returns the stored record.
func (that *dbGame) CreateIfAbsent(ctx context.Context, room string, game *entity.Game) (*entity.Game, error) {
	stored := game

	err := that.store.Update(ctx, roomPath(room), func(current []byte) ([]byte, error) {
		if current != nil {
			existing, err := decodeGame(current)
			if err != nil {
				return nil, err
			}

			stored = existing
			return nil, nil
		}

		return json.Marshal(game)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return stored, nil
}

// Restart - replaces the finished record with a fresh board for the next round.
// When the stored record is no longer the finished one, nothing is written and it is returned as is.
func (that *dbGame) Restart(ctx context.Context, room string, finished *entity.Game) (*entity.Game, error) {
	var stored *entity.Game

	err := that.store.Update(ctx, roomPath(room), func(current []byte) ([]byte, error) {
		if current == nil {
			return nil, ErrGameNotFound
		}

		existing, err := decodeGame(current)
		if err != nil {
			return nil, err
		}

		if existing.Round != finished.Round || !existing.Outcome().IsTerminal() {
			stored = existing
			return nil, nil
		}

		stored = entity.NewGame(existing.Round + 1)

		return json.Marshal(stored)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to restart game: %w", err)
	}

	return stored, nil
}

// Watch - decoded game records of the room; the channel closes with ctx or the subscription.
func (that *dbGame) Watch(ctx context.Context, room string) (<-chan *entity.Game, error) {
	documents, err := that.store.Subscribe(ctx, roomPath(room))
	if err != nil {
		return nil, fmt.Errorf("failed to watch game: %w", err)
	}

	games := make(chan *entity.Game)

	go func() {
		defer close(games)

		for document := range documents {
			game, err := decodeGame(document)
			if err != nil {
				that.logger.Warn("malformed game record skipped", "room", room, "error", err)
				continue
			}

			select {
			case games <- game:
			case <-ctx.Done():
				return
			}
		}
	}()

	return games, nil
}

func decodeGame(data []byte) (*entity.Game, error) {
	var game entity.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	if !game.ActiveSeat.IsValid() {
		return nil, fmt.Errorf("failed to unmarshal game: unknown active seat %q", game.ActiveSeat)
	}

	return &game, nil
}
