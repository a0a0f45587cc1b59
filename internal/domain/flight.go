package domain

import "time"

type Flight struct {
	ID            int64
	RouteID       int64
	AirplaneID    int64
	DepartureTime time.Time
	ArrivalTime   time.Time
	CrewIDs       []int64
}

// SeatBounds is the seating grid of the airplane assigned to a flight.
type SeatBounds struct {
	Rows       int
	SeatsInRow int
}

func (b SeatBounds) Capacity() int {
	return b.Rows * b.SeatsInRow
}

// Seat is a physical (row, seat) position on a flight.
type Seat struct {
	Row  int
	Seat int
}

// FlightView is the list projection. TicketsAvailable is derived at read time.
type FlightView struct {
	ID               int64
	Route            RouteView
	Airplane         AirplaneView
	DepartureTime    time.Time
	ArrivalTime      time.Time
	TicketsAvailable int
}

func (f FlightView) Capacity() int {
	return f.Airplane.Capacity()
}

type FlightDetail struct {
	FlightView
	Crew         []CrewView
	TicketsTaken []Seat
}

const (
	MsgDepartureAfterArrival = "departure time must be earlier than arrival time"
	MsgAirplaneTooSmall      = "airplane seating does not fit tickets already sold for this flight"
)

// ValidateFlightTimes accepts departure == arrival.
func ValidateFlightTimes(departure, arrival time.Time) error {
	verr := &ValidationError{}
	if departure.IsZero() {
		verr.Add("departure_time", "this field is required")
	}
	if arrival.IsZero() {
		verr.Add("arrival_time", "this field is required")
	}
	if !verr.Empty() {
		return verr
	}
	if departure.After(arrival) {
		return NewValidationError(NonFieldErrors, MsgDepartureAfterArrival)
	}
	return nil
}
