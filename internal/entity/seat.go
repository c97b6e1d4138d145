package entity

// Seat is a participant's place in a room.
type Seat string

const (
	Seat1 Seat = "seat1"
	Seat2 Seat = "seat2"

	NoSeat Seat = ""
)

// Cell is the content of one board position.
type Cell int

const (
	EmptyCell Cell = iota
	RedMark
	YellowMark
)

func (that Seat) IsValid() bool {
	return that == Seat1 || that == Seat2
}

// Mark - the disc a seat drops on the board.
func (that Seat) Mark() Cell {
	switch that {
	case Seat1:
		return RedMark
	case Seat2:
		return YellowMark
	default:
		return EmptyCell
	}
}

func (that Seat) Opponent() Seat {
	switch that {
	case Seat1:
		return Seat2
	case Seat2:
		return Seat1
	default:
		return NoSeat
	}
}

// SeatOf - the seat owning the given mark.
func SeatOf(mark Cell) Seat {
	switch mark {
	case RedMark:
		return Seat1
	case YellowMark:
		return Seat2
	default:
		return NoSeat
	}
}

func (that Cell) String() string {
	switch that {
	case RedMark:
		return "Red"
	case YellowMark:
		return "Yellow"
	default:
		return "Empty"
	}
}
