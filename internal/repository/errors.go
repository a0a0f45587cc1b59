package repository

import (
	"errors"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// uniqueFields maps unique constraints to the request field they guard.
var uniqueFields = map[string]struct{ field, message string }{
	"countries_name_key":       {"name", "country with this name already exists"},
	"cities_name_country_key":  {domain.NonFieldErrors, "the fields name, country must make a unique set"},
	"crew_positions_name_key":  {"name", "crew position with this name already exists"},
	"flight_crew_members_pkey": {"crew_members", "duplicate crew member"},
}

// checkFields maps CHECK constraints to the messages the domain validators
// report for the same rule.
var checkFields = map[string]struct{ field, message string }{
	"routes_distance_check":        {"distance", domain.MsgDistancePositive},
	"routes_distinct_airports":     {"destination", domain.MsgAirportsDiffer},
	"flights_time_order":           {domain.NonFieldErrors, domain.MsgDepartureAfterArrival},
	"airplanes_rows_check":         {"rows", domain.MsgRowsPositive},
	"airplanes_seats_in_row_check": {"seats_in_row", domain.MsgSeatsInRowPositive},
}

// foreignKeyFields maps a referencing column to its request field.
var foreignKeyFields = map[string]string{
	"country_id":          "country",
	"position_id":         "position",
	"airplane_type_id":    "airplane_type",
	"closest_big_city_id": "closest_big_city",
	"source_id":           "source",
	"destination_id":      "destination",
	"route_id":            "route",
	"airplane_id":         "airplane",
	"crew_id":             "crew_members",
	"flight_id":           "flight",
}

// translate converts driver errors into domain errors. Ticket seat conflicts
// are handled by the order repository, which knows the offending ticket.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		if f, ok := uniqueFields[pgErr.ConstraintName]; ok {
			return domain.NewValidationError(f.field, f.message)
		}
	case codeForeignKeyViolation:
		if field, ok := foreignKeyColumn(pgErr); ok {
			return domain.NewValidationError(field, "invalid pk - object does not exist")
		}
	case codeCheckViolation:
		if f, ok := checkFields[pgErr.ConstraintName]; ok {
			return domain.NewValidationError(f.field, f.message)
		}
		return domain.NewValidationError(domain.NonFieldErrors, "invalid value")
	}
	return err
}

func isSeatConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == codeUniqueViolation &&
		pgErr.ConstraintName == "tickets_row_seat_flight_key"
}

// foreignKeyColumn reads the column out of the constraint name, which
// Postgres generates as <table>_<column>_fkey.
func foreignKeyColumn(pgErr *pgconn.PgError) (string, bool) {
	for column, field := range foreignKeyFields {
		suffix := "_" + column + "_fkey"
		name := pgErr.ConstraintName
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			return field, true
		}
	}
	return "", false
}
