package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepository reads and writes orders of a single owner. Every method
// takes the owner explicitly; orders of other users behave as missing.
type OrderRepository interface {
	ListByUser(ctx context.Context, userID int64, page domain.Page) ([]domain.OrderView, int, error)
	GetByUser(ctx context.Context, userID, id int64) (*domain.OrderView, error)
	Create(ctx context.Context, order *domain.Order) error
	ReplaceTickets(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, userID, id int64) error
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

func (r *PGOrderRepository) ListByUser(ctx context.Context, userID int64, page domain.Page) ([]domain.OrderView, int, error) {
	var w where
	w.add("user_id = ?", userID)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := r.db.Query(ctx, `SELECT id, user_id, created_at FROM orders`+w.sql()+` ORDER BY created_at DESC, id DESC`+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]domain.OrderView, 0)
	for rows.Next() {
		var o domain.OrderView
		if err := rows.Scan(&o.ID, &o.UserID, &o.CreatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachTickets(ctx, orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *PGOrderRepository) GetByUser(ctx context.Context, userID, id int64) (*domain.OrderView, error) {
	var o domain.OrderView
	err := r.db.QueryRow(ctx, `SELECT id, user_id, created_at FROM orders WHERE id=$1 AND user_id=$2`, id, userID).
		Scan(&o.ID, &o.UserID, &o.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}

	orders := []domain.OrderView{o}
	if err := r.attachTickets(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// attachTickets loads the tickets of all given orders with one query.
func (r *PGOrderRepository) attachTickets(ctx context.Context, orders []domain.OrderView) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = i
		orders[i].Tickets = make([]domain.TicketView, 0)
	}

	rows, err := r.db.Query(ctx, `SELECT tk.id, tk."row", tk.seat, tk.flight_id, tk.order_id, `+flightViewColumns+`
		FROM tickets tk
		JOIN flights f ON f.id = tk.flight_id`+flightViewJoins+`
		WHERE tk.order_id = ANY($1)
		ORDER BY tk.id`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.TicketView
		fields := []any{&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID}
		if err := rows.Scan(append(fields, flightViewFields(&t.Flight)...)...); err != nil {
			return err
		}
		i := index[t.OrderID]
		orders[i].Tickets = append(orders[i].Tickets, t)
	}
	return rows.Err()
}

// Create stores the order and all of its tickets atomically. A ticket that
// hits an occupied seat aborts the whole order with a *domain.ConflictError.
func (r *PGOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO orders (user_id) VALUES ($1) RETURNING id, created_at`, order.UserID).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return translate(err)
	}
	if err := insertTickets(ctx, tx, order); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// ReplaceTickets swaps the ticket set of an existing order in one transaction.
// The order row is locked so concurrent updates of the same order serialize.
func (r *PGOrderRepository) ReplaceTickets(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `SELECT created_at FROM orders WHERE id=$1 AND user_id=$2 FOR UPDATE`, order.ID, order.UserID).
		Scan(&order.CreatedAt); err != nil {
		return translate(err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM tickets WHERE order_id=$1`, order.ID); err != nil {
		return err
	}
	if err := insertTickets(ctx, tx, order); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGOrderRepository) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// insertTickets checks every ticket against the seating grid read under a
// share lock on its flight, so a concurrent airplane change cannot slip an
// out of range seat in, then inserts the tickets.
func insertTickets(ctx context.Context, tx pgx.Tx, order *domain.Order) error {
	if err := checkSeatBounds(ctx, tx, order.Tickets); err != nil {
		return err
	}
	for i := range order.Tickets {
		t := &order.Tickets[i]
		t.OrderID = order.ID
		err := tx.QueryRow(ctx, `INSERT INTO tickets ("row", seat, flight_id, order_id) VALUES ($1, $2, $3, $4) RETURNING id`,
			t.Row, t.Seat, t.FlightID, t.OrderID).Scan(&t.ID)
		if isSeatConflict(err) {
			return &domain.ConflictError{FlightID: t.FlightID, Row: t.Row, Seat: t.Seat}
		}
		if err != nil {
			return translate(err)
		}
	}
	return nil
}

func checkSeatBounds(ctx context.Context, tx pgx.Tx, tickets []domain.Ticket) error {
	ids := make([]int64, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.FlightID)
	}

	rows, err := tx.Query(ctx, `SELECT f.id, a.rows, a.seats_in_row
		FROM flights f JOIN airplanes a ON a.id = f.airplane_id
		WHERE f.id = ANY($1)
		ORDER BY f.id
		FOR SHARE OF f`, ids)
	if err != nil {
		return err
	}
	bounds := make(map[int64]domain.SeatBounds, len(ids))
	for rows.Next() {
		var (
			id int64
			b  domain.SeatBounds
		)
		if err := rows.Scan(&id, &b.Rows, &b.SeatsInRow); err != nil {
			rows.Close()
			return err
		}
		bounds[id] = b
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	verr := &domain.ValidationError{}
	for i, t := range tickets {
		prefix := fmt.Sprintf("tickets[%d].", i)
		b, ok := bounds[t.FlightID]
		if !ok {
			verr.Add(prefix+"flight", "invalid pk - object does not exist")
			continue
		}
		var ticketErr *domain.ValidationError
		if errors.As(domain.ValidateTicket(t.Seat, t.Row, b), &ticketErr) {
			verr.Merge(prefix, ticketErr)
		}
	}
	return verr.OrNil()
}

var _ OrderRepository = (*PGOrderRepository)(nil)
