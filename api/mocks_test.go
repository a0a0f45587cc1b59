package api

import (
	"context"
	"io"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/Domenick1991/airports/internal/service/flights"
	"github.com/stretchr/testify/mock"
)

type MockReferenceUseCase struct {
	mock.Mock
}

func (m *MockReferenceUseCase) ListCountries(ctx context.Context, page domain.Page) ([]domain.Country, int, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Country), args.Int(1), args.Error(2)
}

func (m *MockReferenceUseCase) CreateCountry(ctx context.Context, country *domain.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

func (m *MockReferenceUseCase) ListCities(ctx context.Context, filter domain.CityFilter, page domain.Page) ([]domain.CityView, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.CityView), args.Int(1), args.Error(2)
}

func (m *MockReferenceUseCase) CreateCity(ctx context.Context, city *domain.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockReferenceUseCase) ListCrewPositions(ctx context.Context, page domain.Page) ([]domain.CrewPosition, int, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.CrewPosition), args.Int(1), args.Error(2)
}

func (m *MockReferenceUseCase) CreateCrewPosition(ctx context.Context, position *domain.CrewPosition) error {
	args := m.Called(ctx, position)
	return args.Error(0)
}

func (m *MockReferenceUseCase) ListCrews(ctx context.Context, filter domain.CrewFilter, page domain.Page) ([]domain.CrewView, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.CrewView), args.Int(1), args.Error(2)
}

func (m *MockReferenceUseCase) CreateCrew(ctx context.Context, crew *domain.Crew) error {
	args := m.Called(ctx, crew)
	return args.Error(0)
}

func (m *MockReferenceUseCase) ListAirplaneTypes(ctx context.Context, page domain.Page) ([]domain.AirplaneType, int, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.AirplaneType), args.Int(1), args.Error(2)
}

func (m *MockReferenceUseCase) CreateAirplaneType(ctx context.Context, airplaneType *domain.AirplaneType) error {
	args := m.Called(ctx, airplaneType)
	return args.Error(0)
}

func (m *MockReferenceUseCase) UploadAirplaneTypeImage(ctx context.Context, id int64, image io.Reader) (*domain.AirplaneType, error) {
	args := m.Called(ctx, id, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirplaneType), args.Error(1)
}

func (m *MockReferenceUseCase) ListAirplanes(ctx context.Context, page domain.Page) ([]domain.AirplaneView, int, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.AirplaneView), args.Int(1), args.Error(2)
}

func (m *MockReferenceUseCase) CreateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	args := m.Called(ctx, airplane)
	return args.Error(0)
}

func (m *MockReferenceUseCase) ListAirports(ctx context.Context, filter domain.AirportFilter, page domain.Page) ([]domain.AirportView, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.AirportView), args.Int(1), args.Error(2)
}

func (m *MockReferenceUseCase) CreateAirport(ctx context.Context, airport *domain.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockReferenceUseCase) UploadAirportImage(ctx context.Context, id int64, image io.Reader) (*domain.AirportView, error) {
	args := m.Called(ctx, id, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirportView), args.Error(1)
}

func (m *MockReferenceUseCase) ListRoutes(ctx context.Context, filter domain.RouteFilter, page domain.Page) ([]domain.RouteView, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.RouteView), args.Int(1), args.Error(2)
}

func (m *MockReferenceUseCase) CreateRoute(ctx context.Context, route *domain.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context, filter domain.FlightFilter, page domain.Page) ([]domain.FlightView, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.FlightView), args.Int(1), args.Error(2)
}

func (m *MockFlightUseCase) Get(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightDetail), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightUseCase) Update(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightUseCase) Patch(ctx context.Context, id int64, patch flights.Patch) (*domain.Flight, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderUseCase struct {
	mock.Mock
}

func (m *MockOrderUseCase) List(ctx context.Context, userID int64, page domain.Page) ([]domain.OrderView, int, error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).([]domain.OrderView), args.Int(1), args.Error(2)
}

func (m *MockOrderUseCase) Get(ctx context.Context, userID, id int64) (*domain.OrderView, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderView), args.Error(1)
}

func (m *MockOrderUseCase) Create(ctx context.Context, userID int64, tickets []domain.Ticket) (*domain.Order, error) {
	args := m.Called(ctx, userID, tickets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) Update(ctx context.Context, userID, id int64, tickets []domain.Ticket) (*domain.Order, error) {
	args := m.Called(ctx, userID, id, tickets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
