package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/Domenick1991/airports/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID int64, page domain.Page) ([]domain.OrderView, int, error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).([]domain.OrderView), args.Int(1), args.Error(2)
}

func (m *MockOrderRepository) GetByUser(ctx context.Context, userID, id int64) (*domain.OrderView, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderView), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) ReplaceTickets(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

type MockSeatBounds struct {
	mock.Mock
}

func (m *MockSeatBounds) SeatBounds(ctx context.Context, flightIDs []int64) (map[int64]domain.SeatBounds, error) {
	args := m.Called(ctx, flightIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.SeatBounds), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

const ordersTopic = "airports.orders"

var grid = map[int64]domain.SeatBounds{1: {Rows: 20, SeatsInRow: 10}}

func TestOrderService_Create(t *testing.T) {
	repo := &MockOrderRepository{}
	flights := &MockSeatBounds{}
	producer := &MockProducer{}
	service := NewOrderService(repo, flights, producer, ordersTopic)
	ctx := context.Background()

	tickets := []domain.Ticket{
		{Row: 1, Seat: 1, FlightID: 1},
		{Row: 1, Seat: 2, FlightID: 1},
		{Row: 2, Seat: 1, FlightID: 1},
	}

	flights.On("SeatBounds", ctx, []int64{1}).Return(grid, nil).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(o *domain.Order) bool {
		return o.UserID == 9 && len(o.Tickets) == 3
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Order).ID = 100
	}).Return(nil).Once()
	producer.On("Publish", ctx, ordersTopic, "order-100", mock.MatchedBy(func(e kafka.OrderEvent) bool {
		return e.Type == kafka.OrderCreated && e.OrderID == 100 && e.UserID == 9 && len(e.Tickets) == 3
	})).Return(nil).Once()

	order, err := service.Create(ctx, 9, tickets)
	require.NoError(t, err)
	assert.Equal(t, int64(100), order.ID)
	repo.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestOrderService_CreateEmpty(t *testing.T) {
	repo := &MockOrderRepository{}
	service := NewOrderService(repo, &MockSeatBounds{}, nil, ordersTopic)

	_, err := service.Create(context.Background(), 1, nil)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "tickets")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOutOfRange(t *testing.T) {
	repo := &MockOrderRepository{}
	flights := &MockSeatBounds{}
	service := NewOrderService(repo, flights, nil, ordersTopic)
	ctx := context.Background()

	flights.On("SeatBounds", ctx, []int64{1}).Return(map[int64]domain.SeatBounds{1: {Rows: 10, SeatsInRow: 5}}, nil).Once()

	_, err := service.Create(ctx, 1, []domain.Ticket{
		{Row: 1, Seat: 1, FlightID: 1},
		{Row: 1, Seat: 7, FlightID: 1},
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"seat number must be in available range: (1, seats_in_row): (1, 5)"}, verr.Fields["tickets[1].seat"])
	assert.NotContains(t, verr.Fields, "tickets[0].seat")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateUnknownFlight(t *testing.T) {
	repo := &MockOrderRepository{}
	flights := &MockSeatBounds{}
	service := NewOrderService(repo, flights, nil, ordersTopic)
	ctx := context.Background()

	flights.On("SeatBounds", ctx, []int64{1, 42}).Return(grid, nil).Once()

	_, err := service.Create(ctx, 1, []domain.Ticket{
		{Row: 1, Seat: 1, FlightID: 1},
		{Row: 1, Seat: 1, FlightID: 42},
		{Row: 1, Seat: 1},
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "tickets[1].flight")
	assert.Contains(t, verr.Fields, "tickets[2].flight")
}

func TestOrderService_CreateSeatTaken(t *testing.T) {
	repo := &MockOrderRepository{}
	flights := &MockSeatBounds{}
	producer := &MockProducer{}
	service := NewOrderService(repo, flights, producer, ordersTopic)
	ctx := context.Background()

	conflict := &domain.ConflictError{FlightID: 1, Row: 3, Seat: 3}
	flights.On("SeatBounds", ctx, []int64{1}).Return(grid, nil).Once()
	repo.On("Create", ctx, mock.Anything).Return(conflict).Once()

	_, err := service.Create(ctx, 1, []domain.Ticket{{Row: 3, Seat: 3, FlightID: 1}})
	assert.ErrorIs(t, err, domain.ErrSeatTaken)
	producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_PublishFailureDoesNotFailOrder(t *testing.T) {
	repo := &MockOrderRepository{}
	flights := &MockSeatBounds{}
	producer := &MockProducer{}
	service := NewOrderService(repo, flights, producer, ordersTopic, WithNotificationsTopic("airports.notifications"))
	ctx := context.Background()

	flights.On("SeatBounds", ctx, []int64{1}).Return(grid, nil).Once()
	repo.On("Create", ctx, mock.Anything).Return(nil).Once()
	producer.On("Publish", ctx, ordersTopic, mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	order, err := service.Create(ctx, 1, []domain.Ticket{{Row: 1, Seat: 1, FlightID: 1}})
	require.NoError(t, err)
	assert.NotNil(t, order)
	producer.AssertNumberOfCalls(t, "Publish", 1)
}

func TestOrderService_NotificationsTopic(t *testing.T) {
	repo := &MockOrderRepository{}
	producer := &MockProducer{}
	service := NewOrderService(repo, &MockSeatBounds{}, producer, ordersTopic, WithNotificationsTopic("airports.notifications"))
	ctx := context.Background()

	repo.On("Delete", ctx, int64(1), int64(5)).Return(nil).Once()
	producer.On("Publish", ctx, ordersTopic, "order-5", mock.Anything).Return(nil).Once()
	producer.On("Publish", ctx, "airports.notifications", "order-5", mock.Anything).Return(nil).Once()

	require.NoError(t, service.Delete(ctx, 1, 5))
	producer.AssertExpectations(t)
}

func TestOrderService_UpdateForeignOrder(t *testing.T) {
	repo := &MockOrderRepository{}
	flights := &MockSeatBounds{}
	service := NewOrderService(repo, flights, nil, ordersTopic)
	ctx := context.Background()

	flights.On("SeatBounds", ctx, []int64{1}).Return(grid, nil).Once()
	repo.On("ReplaceTickets", ctx, mock.MatchedBy(func(o *domain.Order) bool {
		return o.ID == 5 && o.UserID == 2
	})).Return(domain.ErrNotFound).Once()

	_, err := service.Update(ctx, 2, 5, []domain.Ticket{{Row: 1, Seat: 1, FlightID: 1}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderService_ListAndGetScopedToUser(t *testing.T) {
	repo := &MockOrderRepository{}
	service := NewOrderService(repo, &MockSeatBounds{}, nil, ordersTopic)
	ctx := context.Background()
	page := domain.Page{Limit: 10}

	repo.On("ListByUser", ctx, int64(3), page).Return([]domain.OrderView{{ID: 1, UserID: 3}}, 1, nil).Once()
	repo.On("GetByUser", ctx, int64(3), int64(8)).Return(nil, domain.ErrNotFound).Once()

	orders, total, err := service.List(ctx, 3, page)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, orders, 1)

	_, err = service.Get(ctx, 3, 8)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
