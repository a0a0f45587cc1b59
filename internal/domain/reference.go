package domain

import "strings"

type Country struct {
	ID   int64
	Name string
}

type City struct {
	ID        int64
	Name      string
	CountryID int64
}

type CityView struct {
	City
	CountryName string
}

type CrewPosition struct {
	ID   int64
	Name string
}

type Crew struct {
	ID         int64
	FirstName  string
	LastName   string
	PositionID *int64
}

func (c Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}

type CrewView struct {
	Crew
	Position *CrewPosition
}

type AirplaneType struct {
	ID    int64
	Name  string
	Image *string
}

type Airplane struct {
	ID             int64
	Name           string
	Rows           int
	SeatsInRow     int
	AirplaneTypeID int64
}

func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}

func (a Airplane) Bounds() SeatBounds {
	return SeatBounds{Rows: a.Rows, SeatsInRow: a.SeatsInRow}
}

type AirplaneView struct {
	Airplane
	AirplaneTypeName string
}

const (
	MsgRowsPositive       = "rows must be positive"
	MsgSeatsInRowPositive = "seats in row must be positive"
)

// ValidateAirplane checks the seating grid of an airplane.
func ValidateAirplane(a Airplane) error {
	verr := &ValidationError{}
	if strings.TrimSpace(a.Name) == "" {
		verr.Add("name", "this field may not be blank")
	}
	if a.Rows <= 0 {
		verr.Add("rows", MsgRowsPositive)
	}
	if a.SeatsInRow <= 0 {
		verr.Add("seats_in_row", MsgSeatsInRowPositive)
	}
	return verr.OrNil()
}

type Airport struct {
	ID            int64
	Name          string
	ClosestCityID int64
	Image         *string
}

type AirportView struct {
	Airport
	CityName    string
	CountryID   int64
	CountryName string
}

// RequireName is the shared check for entities that only carry a name.
func RequireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name", "this field may not be blank")
	}
	return nil
}
