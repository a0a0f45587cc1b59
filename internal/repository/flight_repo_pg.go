package repository

import (
	"context"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	List(ctx context.Context, filter domain.FlightFilter, page domain.Page) ([]domain.FlightView, int, error)
	GetDetail(ctx context.Context, id int64) (*domain.FlightDetail, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) error
	SeatBounds(ctx context.Context, flightIDs []int64) (map[int64]domain.SeatBounds, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const dateLayout = "2006-01-02"

const flightViewJoins = `
	JOIN routes r ON r.id = f.route_id` + routeViewJoins + `
	JOIN airplanes a ON a.id = f.airplane_id
	JOIN airplane_types apt ON apt.id = a.airplane_type_id`

// The availability is a correlated aggregate, so it is always consistent with
// the ticket table at read time.
const flightViewColumns = routeViewColumns + `,
	a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id, apt.name,
	f.id, f.departure_time, f.arrival_time,
	a.rows * a.seats_in_row - (SELECT COUNT(*) FROM tickets t WHERE t.flight_id = f.id)`

func flightViewFields(v *domain.FlightView) []any {
	fields := routeViewFields(&v.Route)
	return append(fields,
		&v.Airplane.ID, &v.Airplane.Name, &v.Airplane.Rows, &v.Airplane.SeatsInRow, &v.Airplane.AirplaneTypeID, &v.Airplane.AirplaneTypeName,
		&v.ID, &v.DepartureTime, &v.ArrivalTime,
		&v.TicketsAvailable,
	)
}

func (r *PGFlightRepository) List(ctx context.Context, filter domain.FlightFilter, page domain.Page) ([]domain.FlightView, int, error) {
	var w where
	if filter.DepartureDate != nil {
		w.add("(f.departure_time AT TIME ZONE 'UTC')::date = ?::date", filter.DepartureDate.Format(dateLayout))
	}
	if filter.ArrivalDate != nil {
		w.add("(f.arrival_time AT TIME ZONE 'UTC')::date = ?::date", filter.ArrivalDate.Format(dateLayout))
	}
	if filter.RouteID != nil {
		w.add("f.route_id = ?", *filter.RouteID)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM flights f`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := r.db.Query(ctx, `SELECT `+flightViewColumns+` FROM flights f`+flightViewJoins+w.sql()+` ORDER BY f.departure_time, f.id`+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	flights := make([]domain.FlightView, 0)
	for rows.Next() {
		var v domain.FlightView
		if err := rows.Scan(flightViewFields(&v)...); err != nil {
			return nil, 0, err
		}
		flights = append(flights, v)
	}
	return flights, total, rows.Err()
}

func (r *PGFlightRepository) GetDetail(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	var d domain.FlightDetail
	if err := r.db.QueryRow(ctx, `SELECT `+flightViewColumns+` FROM flights f`+flightViewJoins+` WHERE f.id=$1`, id).
		Scan(flightViewFields(&d.FlightView)...); err != nil {
		return nil, translate(err)
	}

	crewRows, err := r.db.Query(ctx, `SELECT c.id, c.first_name, c.last_name, c.position_id, p.name
		FROM flight_crew_members fc
		JOIN crews c ON c.id = fc.crew_id
		LEFT JOIN crew_positions p ON p.id = c.position_id
		WHERE fc.flight_id=$1 ORDER BY c.id`, id)
	if err != nil {
		return nil, err
	}
	defer crewRows.Close()

	d.Crew = make([]domain.CrewView, 0)
	for crewRows.Next() {
		var (
			c            domain.CrewView
			positionName *string
		)
		if err := crewRows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.PositionID, &positionName); err != nil {
			return nil, err
		}
		c.Position = crewPosition(c.PositionID, positionName)
		d.Crew = append(d.Crew, c)
	}
	if err := crewRows.Err(); err != nil {
		return nil, err
	}

	seatRows, err := r.db.Query(ctx, `SELECT "row", seat FROM tickets WHERE flight_id=$1 ORDER BY "row", seat`, id)
	if err != nil {
		return nil, err
	}
	defer seatRows.Close()

	d.TicketsTaken = make([]domain.Seat, 0)
	for seatRows.Next() {
		var s domain.Seat
		if err := seatRows.Scan(&s.Row, &s.Seat); err != nil {
			return nil, err
		}
		d.TicketsTaken = append(d.TicketsTaken, s)
	}
	return &d, seatRows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	var f domain.Flight
	err := r.db.QueryRow(ctx, `SELECT id, route_id, airplane_id, departure_time, arrival_time,
		ARRAY(SELECT crew_id FROM flight_crew_members WHERE flight_id = f.id ORDER BY crew_id)
		FROM flights f WHERE id=$1`, id).
		Scan(&f.ID, &f.RouteID, &f.AirplaneID, &f.DepartureTime, &f.ArrivalTime, &f.CrewIDs)
	if err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime).Scan(&flight.ID); err != nil {
		return translate(err)
	}
	if err := setCrew(ctx, tx, flight.ID, flight.CrewIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE flights SET route_id=$2, airplane_id=$3, departure_time=$4, arrival_time=$5 WHERE id=$1`,
		flight.ID, flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	// Sold tickets must still fit the grid of the (possibly new) airplane.
	var stranded bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (
			SELECT 1 FROM tickets t
			JOIN flights f ON f.id = t.flight_id
			JOIN airplanes a ON a.id = f.airplane_id
			WHERE t.flight_id = $1 AND (t."row" > a.rows OR t.seat > a.seats_in_row))`,
		flight.ID).Scan(&stranded); err != nil {
		return err
	}
	if stranded {
		return domain.NewValidationError("airplane", domain.MsgAirplaneTooSmall)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM flight_crew_members WHERE flight_id=$1`, flight.ID); err != nil {
		return err
	}
	if err := setCrew(ctx, tx, flight.ID, flight.CrewIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SeatBounds returns the seating grid per flight; unknown ids are absent
// from the result.
func (r *PGFlightRepository) SeatBounds(ctx context.Context, flightIDs []int64) (map[int64]domain.SeatBounds, error) {
	rows, err := r.db.Query(ctx, `SELECT f.id, a.rows, a.seats_in_row
		FROM flights f JOIN airplanes a ON a.id = f.airplane_id
		WHERE f.id = ANY($1)`, flightIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bounds := make(map[int64]domain.SeatBounds, len(flightIDs))
	for rows.Next() {
		var (
			id int64
			b  domain.SeatBounds
		)
		if err := rows.Scan(&id, &b.Rows, &b.SeatsInRow); err != nil {
			return nil, err
		}
		bounds[id] = b
	}
	return bounds, rows.Err()
}

func setCrew(ctx context.Context, tx pgx.Tx, flightID int64, crewIDs []int64) error {
	if len(crewIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `INSERT INTO flight_crew_members (flight_id, crew_id)
		SELECT $1, crew_id FROM unnest($2::bigint[]) AS crew_id`, flightID, crewIDs)
	return translate(err)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
