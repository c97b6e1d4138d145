package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// Given: a new game for the first round
	game := NewGame(0)

	// Then: the board is empty and seat1 moves first
	assert.Equal(t, Seat1, game.ActiveSeat)
	assert.Zero(t, game.Board.Pieces())
	assert.False(t, game.Outcome().IsTerminal())
}

func TestGame_JSON(t *testing.T) {
	// Given: a game record with one red disc
	game := NewGame(0)
	_, err := game.Board.ApplyMove(0, RedMark)
	require.NoError(t, err)
	game.PassTurn()

	// When: encoding it
	data, err := json.Marshal(game)
	require.NoError(t, err)

	// Then: the document carries a 6x7 board of integers and the active seat
	var doc struct {
		Board      [][]int `json:"board"`
		ActiveSeat string  `json:"activeSeat"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Board, Rows)
	require.Len(t, doc.Board[0], Columns)
	assert.Equal(t, 1, doc.Board[Rows-1][0])
	assert.Equal(t, "seat2", doc.ActiveSeat)
}

func TestGame_IsOlderThan(t *testing.T) {
	t.Run("Fewer pieces in the same round is older", func(t *testing.T) {
		older := NewGame(0)
		newer := older.Clone()
		_, err := newer.Board.ApplyMove(3, RedMark)
		require.NoError(t, err)

		assert.True(t, older.IsOlderThan(newer))
		assert.False(t, newer.IsOlderThan(older))
	})

	t.Run("Lower round is older regardless of pieces", func(t *testing.T) {
		finished := NewGame(0)
		finished.Board = drawBoard()
		restarted := NewGame(1)

		assert.True(t, finished.IsOlderThan(restarted))
		assert.False(t, restarted.IsOlderThan(finished))
	})

	t.Run("Nothing is older than a missing record", func(t *testing.T) {
		assert.False(t, NewGame(0).IsOlderThan(nil))
	})
}

func TestGame_Equal(t *testing.T) {
	game := NewGame(0)
	clone := game.Clone()

	assert.True(t, game.Equal(clone))

	clone.PassTurn()
	assert.False(t, game.Equal(clone))

	var missing *Game
	assert.True(t, missing.Equal(nil))
	assert.False(t, missing.Equal(game))
}

func TestSeat(t *testing.T) {
	assert.Equal(t, RedMark, Seat1.Mark())
	assert.Equal(t, YellowMark, Seat2.Mark())
	assert.Equal(t, Seat2, Seat1.Opponent())
	assert.Equal(t, Seat1, Seat2.Opponent())
	assert.Equal(t, Seat2, SeatOf(YellowMark))
	assert.Equal(t, NoSeat, SeatOf(EmptyCell))
	assert.False(t, NoSeat.IsValid())
}

func TestView_Board(t *testing.T) {
	// Given: a view handed out by value, as sessions do
	game := NewGame(0)
	_, err := game.Board.ApplyMove(0, RedMark)
	require.NoError(t, err)

	viewOf := func() View {
		return View{Board: game.Board, Started: true}
	}

	// Then: the board of the returned value can be inspected directly
	assert.Equal(t, 1, viewOf().Board.Pieces())
	assert.False(t, viewOf().Board.IsFull())
	assert.False(t, viewOf().Board.CheckWin(Rows-1, 0))
	assert.Equal(t, Outcome{}, viewOf().Board.OutcomeAfter(viewOf().Board.PlacedSince(nil)...))
}
