package entity

// Result - terminal state of a game.
type Result string

const (
	ResultNone Result = ""
	ResultWin  Result = "win"
	ResultDraw Result = "draw"
)

type Outcome struct {
	Result Result `json:"result,omitempty"`
	Winner Seat   `json:"winner,omitempty"`
}

func (that Outcome) IsTerminal() bool {
	return that.Result != ResultNone
}

// Game - the shared game record of a room.
// Only the participant holding ActiveSeat may write it.
type Game struct {
	Board      Board `json:"board"`
	ActiveSeat Seat  `json:"activeSeat"`
	Round      int   `json:"round"`
}

// NewGame - an empty board with seat1 to move.
func NewGame(round int) *Game {
	return &Game{
		ActiveSeat: Seat1,
		Round:      round,
	}
}

func (that *Game) Clone() *Game {
	if that == nil {
		return nil
	}

	clone := *that
	return &clone
}

// Equal - same board, same active seat, same round.
func (that *Game) Equal(other *Game) bool {
	if that == nil || other == nil {
		return that == other
	}

	return *that == *other
}

// IsOlderThan - true when the record precedes other in the game history.
// Rounds only grow, and within a round the board only gains pieces.
func (that *Game) IsOlderThan(other *Game) bool {
	if other == nil {
		return false
	}

	if that.Round != other.Round {
		return that.Round < other.Round
	}

	return that.Board.Pieces() < other.Board.Pieces()
}

// Outcome - full evaluation of the record, used when no previous board is known.
func (that *Game) Outcome() Outcome {
	return that.Board.OutcomeAfter(that.Board.PlacedSince(nil)...)
}

// PassTurn - hands the move to the other seat.
func (that *Game) PassTurn() {
	that.ActiveSeat = that.ActiveSeat.Opponent()
}

// View - what the presentation layer renders for one participant.
type View struct {
	Room       string  `json:"room"`
	Seat       Seat    `json:"seat"`
	Board      Board   `json:"board"`
	ActiveSeat Seat    `json:"activeSeat"`
	MyTurn     bool    `json:"myTurn"`
	Started    bool    `json:"started"`
	Outcome    Outcome `json:"outcome"`
}
