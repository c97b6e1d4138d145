package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

const (
	Rows    = 6
	Columns = 7

	// WinLength - number of contiguous marks that wins the game.
	WinLength = 4
)

// Board - rows are indexed top to bottom, columns left to right.
type Board [Rows][Columns]Cell

// Position - a single cell address on the board.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// axes - the four lines through a cell, each as a pair of opposite directions.
var axes = [4][2][2]int{
	{{0, 1}, {0, -1}},  // horizontal
	{{1, 0}, {-1, 0}},  // vertical
	{{1, 1}, {-1, -1}}, // diagonal
	{{1, -1}, {-1, 1}}, // anti-diagonal
}

// ApplyMove - drops mark into column and returns the row it landed in.
// The board is left untouched when the move fails.
func (that *Board) ApplyMove(column int, mark Cell) (int, error) {
	if column < 0 || column >= Columns {
		return 0, fmt.Errorf("%w: column %d", apperror.ErrInvalidColumn, column)
	}

	for row := Rows - 1; row >= 0; row-- {
		if that[row][column] == EmptyCell {
			that[row][column] = mark
			return row, nil
		}
	}

	return 0, fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
}

// CheckWin - reports whether the mark at (row, col) is part of a run of WinLength or more.
func (that Board) CheckWin(row, col int) bool {
	if !inside(row, col) {
		return false
	}

	mark := that[row][col]
	if mark == EmptyCell {
		return false
	}

	for _, axis := range axes {
		count := 1
		for _, dir := range axis {
			r, c := row+dir[0], col+dir[1]
			for inside(r, c) && that[r][c] == mark {
				count++
				r, c = r+dir[0], c+dir[1]
			}
		}

		if count >= WinLength {
			return true
		}
	}

	return false
}

func (that Board) IsFull() bool {
	return that.Pieces() == Rows*Columns
}

// Pieces - number of occupied cells.
func (that Board) Pieces() int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != EmptyCell {
				count++
			}
		}
	}

	return count
}

// PlacedSince - cells occupied on the board that were empty on prev.
// A nil prev treats every occupied cell as newly placed.
func (that Board) PlacedSince(prev *Board) []Position {
	var placed []Position

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if that[row][col] == EmptyCell {
				continue
			}

			if prev == nil || prev[row][col] == EmptyCell {
				placed = append(placed, Position{Row: row, Column: col})
			}
		}
	}

	return placed
}

// OutcomeAfter - evaluates the game only through the cells that just changed.
func (that Board) OutcomeAfter(placed ...Position) Outcome {
	for _, pos := range placed {
		if that.CheckWin(pos.Row, pos.Column) {
			return Outcome{Result: ResultWin, Winner: SeatOf(that[pos.Row][pos.Column])}
		}
	}

	if that.IsFull() {
		return Outcome{Result: ResultDraw}
	}

	return Outcome{}
}

func inside(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}
