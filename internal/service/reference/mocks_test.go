package reference

import (
	"context"
	"io"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) List(ctx context.Context, page domain.Page) ([]domain.Country, int, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Country), args.Int(1), args.Error(2)
}

func (m *MockCountryRepository) Create(ctx context.Context, country *domain.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) List(ctx context.Context, filter domain.CityFilter, page domain.Page) ([]domain.CityView, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.CityView), args.Int(1), args.Error(2)
}

func (m *MockCityRepository) Create(ctx context.Context, city *domain.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

type MockCrewRepository struct {
	mock.Mock
}

func (m *MockCrewRepository) ListPositions(ctx context.Context, page domain.Page) ([]domain.CrewPosition, int, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.CrewPosition), args.Int(1), args.Error(2)
}

func (m *MockCrewRepository) CreatePosition(ctx context.Context, position *domain.CrewPosition) error {
	args := m.Called(ctx, position)
	return args.Error(0)
}

func (m *MockCrewRepository) List(ctx context.Context, filter domain.CrewFilter, page domain.Page) ([]domain.CrewView, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.CrewView), args.Int(1), args.Error(2)
}

func (m *MockCrewRepository) Create(ctx context.Context, crew *domain.Crew) error {
	args := m.Called(ctx, crew)
	return args.Error(0)
}

type MockFleetRepository struct {
	mock.Mock
}

func (m *MockFleetRepository) ListTypes(ctx context.Context, page domain.Page) ([]domain.AirplaneType, int, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.AirplaneType), args.Int(1), args.Error(2)
}

func (m *MockFleetRepository) CreateType(ctx context.Context, airplaneType *domain.AirplaneType) error {
	args := m.Called(ctx, airplaneType)
	return args.Error(0)
}

func (m *MockFleetRepository) GetType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirplaneType), args.Error(1)
}

func (m *MockFleetRepository) SetTypeImage(ctx context.Context, id int64, image string) (*domain.AirplaneType, error) {
	args := m.Called(ctx, id, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirplaneType), args.Error(1)
}

func (m *MockFleetRepository) ListAirplanes(ctx context.Context, page domain.Page) ([]domain.AirplaneView, int, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.AirplaneView), args.Int(1), args.Error(2)
}

func (m *MockFleetRepository) CreateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	args := m.Called(ctx, airplane)
	return args.Error(0)
}

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) List(ctx context.Context, filter domain.AirportFilter, page domain.Page) ([]domain.AirportView, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.AirportView), args.Int(1), args.Error(2)
}

func (m *MockAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockAirportRepository) GetByID(ctx context.Context, id int64) (*domain.AirportView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirportView), args.Error(1)
}

func (m *MockAirportRepository) SetImage(ctx context.Context, id int64, image string) (*domain.AirportView, error) {
	args := m.Called(ctx, id, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirportView), args.Error(1)
}

type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) List(ctx context.Context, filter domain.RouteFilter, page domain.Page) ([]domain.RouteView, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.RouteView), args.Int(1), args.Error(2)
}

func (m *MockRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetList(ctx context.Context, resource string, page domain.Page, dst any) (bool, error) {
	args := m.Called(ctx, resource, page, dst)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) SetList(ctx context.Context, resource string, page domain.Page, value any) error {
	args := m.Called(ctx, resource, page, value)
	return args.Error(0)
}

func (m *MockCache) Invalidate(ctx context.Context, resource string) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) SaveImage(ctx context.Context, dir, name string, r io.Reader) (string, error) {
	args := m.Called(ctx, dir, name, r)
	return args.String(0), args.Error(1)
}
