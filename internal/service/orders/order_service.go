package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/Domenick1991/airports/internal/kafka"
	"github.com/Domenick1991/airports/internal/pkg/logger"
	"github.com/Domenick1991/airports/internal/repository"
)

type OrderUseCase interface {
	List(ctx context.Context, userID int64, page domain.Page) ([]domain.OrderView, int, error)
	Get(ctx context.Context, userID, id int64) (*domain.OrderView, error)
	Create(ctx context.Context, userID int64, tickets []domain.Ticket) (*domain.Order, error)
	Update(ctx context.Context, userID, id int64, tickets []domain.Ticket) (*domain.Order, error)
	Delete(ctx context.Context, userID, id int64) error
}

// SeatBoundsReader resolves the seating grid of the flights named by tickets.
type SeatBoundsReader interface {
	SeatBounds(ctx context.Context, flightIDs []int64) (map[int64]domain.SeatBounds, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type OrderService struct {
	orders             repository.OrderRepository
	flights            SeatBoundsReader
	producer           Producer
	ordersTopic        string
	notificationsTopic string
	log                logger.Logger
}

type OrderServiceOption func(*OrderService)

func WithNotificationsTopic(topic string) OrderServiceOption {
	return func(s *OrderService) {
		s.notificationsTopic = topic
	}
}

func WithLogger(l logger.Logger) OrderServiceOption {
	return func(s *OrderService) {
		s.log = l
	}
}

// NewOrderService builds the service. producer may be nil, in which case no
// events are published.
func NewOrderService(
	orders repository.OrderRepository,
	flights SeatBoundsReader,
	producer Producer,
	ordersTopic string,
	opts ...OrderServiceOption,
) *OrderService {
	service := &OrderService{
		orders:      orders,
		flights:     flights,
		producer:    producer,
		ordersTopic: ordersTopic,
		log:         logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *OrderService) List(ctx context.Context, userID int64, page domain.Page) ([]domain.OrderView, int, error) {
	return s.orders.ListByUser(ctx, userID, page)
}

func (s *OrderService) Get(ctx context.Context, userID, id int64) (*domain.OrderView, error) {
	return s.orders.GetByUser(ctx, userID, id)
}

// Create validates every ticket against its flight's seating grid and then
// stores the order with all tickets in one transaction.
func (s *OrderService) Create(ctx context.Context, userID int64, tickets []domain.Ticket) (*domain.Order, error) {
	if err := s.validateTickets(ctx, tickets); err != nil {
		return nil, err
	}

	order := &domain.Order{UserID: userID, Tickets: tickets}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, kafka.OrderCreated, order); err != nil {
		s.log.Warn(fmt.Sprintf("failed to publish %s event for order %d: %v", kafka.OrderCreated, order.ID, err))
	}
	return order, nil
}

// Update replaces the tickets of an order owned by userID.
func (s *OrderService) Update(ctx context.Context, userID, id int64, tickets []domain.Ticket) (*domain.Order, error) {
	if err := s.validateTickets(ctx, tickets); err != nil {
		return nil, err
	}

	order := &domain.Order{ID: id, UserID: userID, Tickets: tickets}
	if err := s.orders.ReplaceTickets(ctx, order); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, kafka.OrderUpdated, order); err != nil {
		s.log.Warn(fmt.Sprintf("failed to publish %s event for order %d: %v", kafka.OrderUpdated, order.ID, err))
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.orders.Delete(ctx, userID, id); err != nil {
		return err
	}
	order := &domain.Order{ID: id, UserID: userID}
	if err := s.publish(ctx, kafka.OrderDeleted, order); err != nil {
		s.log.Warn(fmt.Sprintf("failed to publish %s event for order %d: %v", kafka.OrderDeleted, id, err))
	}
	return nil
}

// validateTickets collects every problem of the ticket list so the caller
// sees all of them at once. Field names are prefixed with tickets[i].
func (s *OrderService) validateTickets(ctx context.Context, tickets []domain.Ticket) error {
	if len(tickets) == 0 {
		return domain.NewValidationError("tickets", "an order needs at least one ticket")
	}

	ids := make([]int64, 0, len(tickets))
	seen := make(map[int64]bool, len(tickets))
	for _, t := range tickets {
		if t.FlightID > 0 && !seen[t.FlightID] {
			seen[t.FlightID] = true
			ids = append(ids, t.FlightID)
		}
	}

	bounds := map[int64]domain.SeatBounds{}
	if len(ids) > 0 {
		var err error
		if bounds, err = s.flights.SeatBounds(ctx, ids); err != nil {
			return err
		}
	}

	verr := &domain.ValidationError{}
	for i, t := range tickets {
		prefix := fmt.Sprintf("tickets[%d].", i)
		b, ok := bounds[t.FlightID]
		switch {
		case t.FlightID <= 0:
			verr.Add(prefix+"flight", "this field is required")
		case !ok:
			verr.Add(prefix+"flight", "invalid pk - object does not exist")
		default:
			var ticketErr *domain.ValidationError
			if errors.As(domain.ValidateTicket(t.Seat, t.Row, b), &ticketErr) {
				verr.Merge(prefix, ticketErr)
			}
		}
	}
	return verr.OrNil()
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) error {
	if s.producer == nil || s.ordersTopic == "" {
		return nil
	}
	event := kafka.NewOrderEvent(eventType, order)
	if err := s.producer.Publish(ctx, s.ordersTopic, event.Key(), event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, event.Key(), event)
	}
	return nil
}

var _ OrderUseCase = (*OrderService)(nil)
