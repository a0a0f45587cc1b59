package api

import (
	"time"

	"github.com/Domenick1991/airports/internal/domain"
)

// List and detail projections. Write operations echo the request shape with
// ids in place of nested objects.

type countryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type cityListView struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type cityWriteView struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country int64  `json:"country"`
}

type crewPositionView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type crewListView struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	FullName  string  `json:"full_name"`
	Position  *string `json:"position"`
}

type crewWriteView struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  *int64 `json:"position"`
}

type crewMemberView struct {
	ID       int64   `json:"id"`
	FullName string  `json:"full_name"`
	Position *string `json:"position"`
}

type airplaneTypeView struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

type airplaneListView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	Capacity     int    `json:"capacity"`
	AirplaneType string `json:"airplane_type"`
}

type airplaneWriteView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AirplaneType int64  `json:"airplane_type"`
}

type airportListView struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	ClosestBigCity string  `json:"closest_big_city"`
	Country        string  `json:"country"`
	Image          *string `json:"image"`
}

type airportWriteView struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	ClosestBigCity int64   `json:"closest_big_city"`
	Image          *string `json:"image"`
}

type routeListView struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Source      airportListView `json:"source"`
	Destination airportListView `json:"destination"`
	Distance    int             `json:"distance"`
}

type routeWriteView struct {
	ID          int64 `json:"id"`
	Source      int64 `json:"source"`
	Destination int64 `json:"destination"`
	Distance    int   `json:"distance"`
}

type flightListView struct {
	ID               int64     `json:"id"`
	Route            string    `json:"route"`
	Airplane         string    `json:"airplane"`
	AirplaneCapacity int       `json:"airplane_capacity"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	TicketsAvailable int       `json:"tickets_available"`
}

type seatView struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type flightDetailView struct {
	ID               int64            `json:"id"`
	Route            routeListView    `json:"route"`
	Airplane         airplaneListView `json:"airplane"`
	DepartureTime    time.Time        `json:"departure_time"`
	ArrivalTime      time.Time        `json:"arrival_time"`
	CrewMembers      []crewMemberView `json:"crew_members"`
	TicketsAvailable int              `json:"tickets_available"`
	TicketsTaken     []seatView       `json:"tickets_taken"`
}

type flightWriteView struct {
	ID            int64     `json:"id"`
	Route         int64     `json:"route"`
	Airplane      int64     `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	CrewMembers   []int64   `json:"crew_members"`
}

type ticketListView struct {
	ID     int64          `json:"id"`
	Row    int            `json:"row"`
	Seat   int            `json:"seat"`
	Flight flightListView `json:"flight"`
}

type orderListView struct {
	ID        int64            `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []ticketListView `json:"tickets"`
}

type ticketWriteView struct {
	ID     int64 `json:"id"`
	Row    int   `json:"row"`
	Seat   int   `json:"seat"`
	Flight int64 `json:"flight"`
}

type orderWriteView struct {
	ID        int64             `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Tickets   []ticketWriteView `json:"tickets"`
}

// imageURL resolves a stored media path to its public URL.
type imageURL func(path string) string

func (u imageURL) of(path *string) *string {
	if path == nil || u == nil {
		return path
	}
	s := u(*path)
	return &s
}

func newCityListView(c domain.CityView) cityListView {
	return cityListView{ID: c.ID, Name: c.Name, Country: c.CountryName}
}

func newCrewListView(c domain.CrewView) crewListView {
	v := crewListView{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, FullName: c.FullName()}
	if c.Position != nil {
		v.Position = &c.Position.Name
	}
	return v
}

func newCrewMemberView(c domain.CrewView) crewMemberView {
	v := crewMemberView{ID: c.ID, FullName: c.FullName()}
	if c.Position != nil {
		v.Position = &c.Position.Name
	}
	return v
}

func newAirplaneListView(a domain.AirplaneView) airplaneListView {
	return airplaneListView{
		ID:           a.ID,
		Name:         a.Name,
		Rows:         a.Rows,
		SeatsInRow:   a.SeatsInRow,
		Capacity:     a.Capacity(),
		AirplaneType: a.AirplaneTypeName,
	}
}

func newAirportListView(a domain.AirportView, url imageURL) airportListView {
	return airportListView{
		ID:             a.ID,
		Name:           a.Name,
		ClosestBigCity: a.CityName,
		Country:        a.CountryName,
		Image:          url.of(a.Image),
	}
}

func newRouteListView(r domain.RouteView, url imageURL) routeListView {
	return routeListView{
		ID:          r.ID,
		Name:        r.Name(),
		Source:      newAirportListView(r.Source, url),
		Destination: newAirportListView(r.Destination, url),
		Distance:    r.Distance,
	}
}

func newFlightListView(f domain.FlightView) flightListView {
	return flightListView{
		ID:               f.ID,
		Route:            f.Route.Name(),
		Airplane:         f.Airplane.Name,
		AirplaneCapacity: f.Capacity(),
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		TicketsAvailable: f.TicketsAvailable,
	}
}

func newFlightDetailView(f domain.FlightDetail, url imageURL) flightDetailView {
	v := flightDetailView{
		ID:               f.ID,
		Route:            newRouteListView(f.Route, url),
		Airplane:         newAirplaneListView(f.Airplane),
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		CrewMembers:      make([]crewMemberView, 0, len(f.Crew)),
		TicketsAvailable: f.TicketsAvailable,
		TicketsTaken:     make([]seatView, 0, len(f.TicketsTaken)),
	}
	for _, c := range f.Crew {
		v.CrewMembers = append(v.CrewMembers, newCrewMemberView(c))
	}
	for _, s := range f.TicketsTaken {
		v.TicketsTaken = append(v.TicketsTaken, seatView{Row: s.Row, Seat: s.Seat})
	}
	return v
}

func newFlightWriteView(f domain.Flight) flightWriteView {
	crew := f.CrewIDs
	if crew == nil {
		crew = []int64{}
	}
	return flightWriteView{
		ID:            f.ID,
		Route:         f.RouteID,
		Airplane:      f.AirplaneID,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		CrewMembers:   crew,
	}
}

func newOrderListView(o domain.OrderView) orderListView {
	v := orderListView{ID: o.ID, CreatedAt: o.CreatedAt, Tickets: make([]ticketListView, 0, len(o.Tickets))}
	for _, t := range o.Tickets {
		v.Tickets = append(v.Tickets, ticketListView{ID: t.ID, Row: t.Row, Seat: t.Seat, Flight: newFlightListView(t.Flight)})
	}
	return v
}

func newOrderWriteView(o domain.Order) orderWriteView {
	v := orderWriteView{ID: o.ID, CreatedAt: o.CreatedAt, Tickets: make([]ticketWriteView, 0, len(o.Tickets))}
	for _, t := range o.Tickets {
		v.Tickets = append(v.Tickets, ticketWriteView{ID: t.ID, Row: t.Row, Seat: t.Seat, Flight: t.FlightID})
	}
	return v
}

func mapSlice[T, V any](items []T, fn func(T) V) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
