package entity

import (
	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

// Players - the seat assignments of a room.
type Players struct {
	Seat1 string `json:"seat1,omitempty"`
	Seat2 string `json:"seat2,omitempty"`
}

// SeatOf - the seat held by participantID, or NoSeat.
func (that *Players) SeatOf(participantID string) Seat {
	switch {
	case participantID == "":
		return NoSeat
	case that.Seat1 == participantID:
		return Seat1
	case that.Seat2 == participantID:
		return Seat2
	default:
		return NoSeat
	}
}

// Assign - seats participantID: an existing seat is returned unchanged,
// otherwise the first free seat is claimed. The bool reports whether the record changed.
func (that *Players) Assign(participantID string) (Seat, bool, error) {
	if participantID == "" {
		return NoSeat, false, apperror.ErrInvalidParticipant
	}

	if seat := that.SeatOf(participantID); seat != NoSeat {
		return seat, false, nil
	}

	switch {
	case that.Seat1 == "":
		that.Seat1 = participantID
		return Seat1, true, nil
	case that.Seat2 == "":
		that.Seat2 = participantID
		return Seat2, true, nil
	default:
		return NoSeat, false, apperror.ErrRoomFull
	}
}

func (that *Players) IsFull() bool {
	return that.Seat1 != "" && that.Seat2 != ""
}
