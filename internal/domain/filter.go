package domain

import "time"

// Page is an offset window over a list result.
type Page struct {
	Limit  int
	Offset int
}

type CityFilter struct {
	CountryID *int64
}

type CrewFilter struct {
	PositionID *int64
}

type AirportFilter struct {
	Name      string
	CountryID *int64
	CityID    *int64
}

type RouteFilter struct {
	SourceID      *int64
	DestinationID *int64
	FromCountryID *int64
	ToCountryID   *int64
}

// FlightFilter dates match on the calendar day (UTC) of the timestamp.
type FlightFilter struct {
	DepartureDate *time.Time
	ArrivalDate   *time.Time
	RouteID       *int64
}
