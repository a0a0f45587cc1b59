package domain

import (
	"fmt"
	"time"
)

type Order struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
	Tickets   []Ticket
}

type Ticket struct {
	ID       int64
	Row      int
	Seat     int
	FlightID int64
	OrderID  int64
}

type TicketView struct {
	Ticket
	Flight FlightView
}

type OrderView struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
	Tickets   []TicketView
}

// ValidateTicket checks a (seat, row) pair against the airplane grid. Seat
// uniqueness per flight is left to storage.
func ValidateTicket(seat, row int, bounds SeatBounds) error {
	verr := &ValidationError{}
	checks := []struct {
		value    int
		field    string
		boundary string
		max      int
	}{
		{seat, "seat", "seats_in_row", bounds.SeatsInRow},
		{row, "row", "rows", bounds.Rows},
	}
	for _, c := range checks {
		if c.value < 1 || c.value > c.max {
			verr.Add(c.field, fmt.Sprintf("%s number must be in available range: (1, %s): (1, %d)", c.field, c.boundary, c.max))
		}
	}
	return verr.OrNil()
}
