package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvGame(t *testing.T, ch <-chan *entity.Game) *entity.Game {
	t.Helper()

	select {
	case game, ok := <-ch:
		if !ok {
			t.Fatalf("game watch closed unexpectedly")
		}
		return game
	case <-time.After(deliveryTimeout):
		t.Fatalf("timed out waiting for game")
		return nil
	}
}

func finishedGame(t *testing.T) *entity.Game {
	t.Helper()

	game := entity.NewGame(0)
	for col := 0; col < 4; col++ {
		_, err := game.Board.ApplyMove(col, entity.RedMark)
		require.NoError(t, err)
	}
	game.ActiveSeat = entity.Seat2

	return game
}

func TestGameRepository_SaveAndGet(t *testing.T) {
	t.Run("GetByRoom_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Logger, NewRedisDocumentStore(st.Storage))

		// Given: a saved game with one move
		game := entity.NewGame(0)
		_, err := game.Board.ApplyMove(3, entity.RedMark)
		require.NoError(t, err)
		game.PassTurn()

		require.NoError(t, gameRepo.Save(ctx, "room-1", game))

		// When: GetByRoom is called
		stored, err := gameRepo.GetByRoom(ctx, "room-1")

		// Then: the stored record matches the saved one
		require.NoError(t, err)
		assert.Equal(t, game, stored)
	})

	t.Run("GetByRoom_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Logger, NewRedisDocumentStore(st.Storage))

		stored, err := gameRepo.GetByRoom(ctx, "9999999")

		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Nil(t, stored)
	})

	t.Run("GetByRoom_Malformed", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Logger, NewRedisDocumentStore(st.Storage))
		require.NoError(t, st.Storage.Set(ctx, "rooms/bad", `{"activeSeat":"seat9"}`, 0).Err())

		_, err := gameRepo.GetByRoom(ctx, "bad")

		require.Error(t, err)
	})
}

func TestGameRepository_CreateIfAbsent(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Logger, NewRedisDocumentStore(st.Storage))

	// Given: a room that already has a game in progress
	existing := entity.NewGame(0)
	_, err := existing.Board.ApplyMove(0, entity.RedMark)
	require.NoError(t, err)
	existing.PassTurn()
	require.NoError(t, gameRepo.Save(ctx, "room-1", existing))

	// When: seat1 rejoins and tries to create a fresh game
	stored, err := gameRepo.CreateIfAbsent(ctx, "room-1", entity.NewGame(0))

	// Then: the existing game is kept and returned
	require.NoError(t, err)
	assert.Equal(t, existing, stored)

	// When: a game is created in an empty room
	created, err := gameRepo.CreateIfAbsent(ctx, "room-2", entity.NewGame(0))

	// Then: the new game is stored
	require.NoError(t, err)
	assert.Equal(t, entity.NewGame(0), created)

	fromStore, err := gameRepo.GetByRoom(ctx, "room-2")
	require.NoError(t, err)
	assert.Equal(t, created, fromStore)
}

func TestGameRepository_Restart(t *testing.T) {
	t.Run("Restart_Finished", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Logger, NewRedisDocumentStore(st.Storage))

		// Given: a finished game
		finished := finishedGame(t)
		require.NoError(t, gameRepo.Save(ctx, "room-1", finished))

		// When: it is restarted
		restarted, err := gameRepo.Restart(ctx, "room-1", finished)

		// Then: an empty board of the next round is stored
		require.NoError(t, err)
		assert.Equal(t, entity.NewGame(1), restarted)

		stored, err := gameRepo.GetByRoom(ctx, "room-1")
		require.NoError(t, err)
		assert.Equal(t, restarted, stored)
	})

	t.Run("Restart_AlreadyRestarted", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Logger, NewRedisDocumentStore(st.Storage))

		// Given: the opponent already restarted and made the first move
		finished := finishedGame(t)
		next := entity.NewGame(1)
		_, err := next.Board.ApplyMove(2, entity.RedMark)
		require.NoError(t, err)
		next.PassTurn()
		require.NoError(t, gameRepo.Save(ctx, "room-1", next))

		// When: a late restart arrives for the old round
		stored, err := gameRepo.Restart(ctx, "room-1", finished)

		// Then: nothing is overwritten
		require.NoError(t, err)
		assert.Equal(t, next, stored)
	})
}

func TestGameRepository_Watch(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Logger, NewRedisDocumentStore(st.Storage))

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Given: a watch on an empty room
	games, err := gameRepo.Watch(watchCtx, "room-1")
	require.NoError(t, err)

	// When: the game is created and a move is saved
	game := entity.NewGame(0)
	require.NoError(t, gameRepo.Save(ctx, "room-1", game))
	assert.Equal(t, game, recvGame(t, games))

	moved := game.Clone()
	_, err = moved.Board.ApplyMove(1, entity.RedMark)
	require.NoError(t, err)
	moved.PassTurn()
	require.NoError(t, gameRepo.Save(ctx, "room-1", moved))

	// Then: every full record is delivered
	assert.Equal(t, moved, recvGame(t, games))

	// When: the watch is cancelled
	cancel()

	// Then: the channel closes
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-games:
			return !ok
		default:
			return false
		}
	}, deliveryTimeout, 10*time.Millisecond)
}
