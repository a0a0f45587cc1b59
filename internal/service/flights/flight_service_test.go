package flights

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context, filter domain.FlightFilter, page domain.Page) ([]domain.FlightView, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.FlightView), args.Int(1), args.Error(2)
}

func (m *MockFlightRepository) GetDetail(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightDetail), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlightRepository) SeatBounds(ctx context.Context, flightIDs []int64) (map[int64]domain.SeatBounds, error) {
	args := m.Called(ctx, flightIDs)
	return args.Get(0).(map[int64]domain.SeatBounds), args.Error(1)
}

var departure = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func validFlight() *domain.Flight {
	return &domain.Flight{
		RouteID:       1,
		AirplaneID:    2,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(2 * time.Hour),
		CrewIDs:       []int64{1, 2},
	}
}

func TestFlightService_Create(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo)
	ctx := context.Background()
	flight := validFlight()

	repo.On("Create", ctx, flight).Return(nil).Once()

	require.NoError(t, service.Create(ctx, flight))
	repo.AssertExpectations(t)
}

func TestFlightService_CreateZeroDuration(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo)
	ctx := context.Background()
	flight := validFlight()
	flight.ArrivalTime = flight.DepartureTime

	repo.On("Create", ctx, flight).Return(nil).Once()
	assert.NoError(t, service.Create(ctx, flight))
}

func TestFlightService_CreateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *domain.Flight)
		field  string
	}{
		{"arrival before departure", func(f *domain.Flight) { f.ArrivalTime = f.DepartureTime.Add(-time.Minute) }, domain.NonFieldErrors},
		{"missing departure", func(f *domain.Flight) { f.DepartureTime = time.Time{} }, "departure_time"},
		{"missing route", func(f *domain.Flight) { f.RouteID = 0 }, "route"},
		{"missing airplane", func(f *domain.Flight) { f.AirplaneID = 0 }, "airplane"},
		{"duplicate crew", func(f *domain.Flight) { f.CrewIDs = []int64{3, 3} }, "crew_members"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockFlightRepository{}
			service := NewFlightService(repo)
			flight := validFlight()
			tt.mutate(flight)

			err := service.Create(context.Background(), flight)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestFlightService_Patch(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo)
	ctx := context.Background()

	stored := validFlight()
	stored.ID = 5
	repo.On("GetByID", ctx, int64(5)).Return(stored, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(f *domain.Flight) bool {
		return f.ID == 5 && f.AirplaneID == 7 && f.RouteID == 1
	})).Return(nil).Once()

	airplane := int64(7)
	updated, err := service.Patch(ctx, 5, Patch{AirplaneID: &airplane})
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.AirplaneID)
	assert.Equal(t, []int64{1, 2}, updated.CrewIDs)
	repo.AssertExpectations(t)
}

func TestFlightService_PatchValidatesMergedTimes(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo)
	ctx := context.Background()

	stored := validFlight()
	stored.ID = 5
	repo.On("GetByID", ctx, int64(5)).Return(stored, nil).Once()

	late := stored.ArrivalTime.Add(time.Hour)
	_, err := service.Patch(ctx, 5, Patch{DepartureTime: &late})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, domain.NonFieldErrors)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFlightService_PatchNotFound(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrNotFound).Once()

	_, err := service.Patch(ctx, 404, Patch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFlightService_GetAndDelete(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo)
	ctx := context.Background()

	detail := &domain.FlightDetail{FlightView: domain.FlightView{ID: 1, TicketsAvailable: 197}}
	repo.On("GetDetail", ctx, int64(1)).Return(detail, nil).Once()
	repo.On("Delete", ctx, int64(1)).Return(domain.ErrNotFound).Once()

	got, err := service.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 197, got.TicketsAvailable)
	assert.ErrorIs(t, service.Delete(ctx, 1), domain.ErrNotFound)
}
