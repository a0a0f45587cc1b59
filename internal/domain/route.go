package domain

import "fmt"

type Route struct {
	ID            int64
	SourceID      int64
	DestinationID int64
	Distance      int
}

type RouteView struct {
	ID          int64
	Distance    int
	Source      AirportView
	Destination AirportView
}

// Name renders the route as "Source(Country) -> Destination(Country)".
func (r RouteView) Name() string {
	return fmt.Sprintf("%s(%s) -> %s(%s)",
		r.Source.Name, r.Source.CountryName,
		r.Destination.Name, r.Destination.CountryName)
}

const (
	MsgDistancePositive = "distance must be positive"
	MsgAirportsDiffer   = "source and destination must differ"
)

// ValidateRoute only inspects its arguments, so it is safe to run at both
// request and service level.
func ValidateRoute(sourceID, destinationID int64, distance int) error {
	if distance <= 0 {
		return NewValidationError("distance", MsgDistancePositive)
	}
	if sourceID == destinationID {
		return NewValidationError("destination", MsgAirportsDiffer)
	}
	return nil
}
