package reference

import (
	"context"
	"io"
	"strings"

	"github.com/Domenick1991/airports/internal/cache"
	"github.com/Domenick1991/airports/internal/domain"
	"github.com/Domenick1991/airports/internal/pkg/logger"
	"github.com/Domenick1991/airports/internal/repository"
)

// Cached resources.
const (
	resourceCountries     = "countries"
	resourceCrewPositions = "crew_positions"
	resourceAirplaneTypes = "airplane_types"
)

type ReferenceUseCase interface {
	ListCountries(ctx context.Context, page domain.Page) ([]domain.Country, int, error)
	CreateCountry(ctx context.Context, country *domain.Country) error
	ListCities(ctx context.Context, filter domain.CityFilter, page domain.Page) ([]domain.CityView, int, error)
	CreateCity(ctx context.Context, city *domain.City) error

	ListCrewPositions(ctx context.Context, page domain.Page) ([]domain.CrewPosition, int, error)
	CreateCrewPosition(ctx context.Context, position *domain.CrewPosition) error
	ListCrews(ctx context.Context, filter domain.CrewFilter, page domain.Page) ([]domain.CrewView, int, error)
	CreateCrew(ctx context.Context, crew *domain.Crew) error

	ListAirplaneTypes(ctx context.Context, page domain.Page) ([]domain.AirplaneType, int, error)
	CreateAirplaneType(ctx context.Context, airplaneType *domain.AirplaneType) error
	UploadAirplaneTypeImage(ctx context.Context, id int64, image io.Reader) (*domain.AirplaneType, error)
	ListAirplanes(ctx context.Context, page domain.Page) ([]domain.AirplaneView, int, error)
	CreateAirplane(ctx context.Context, airplane *domain.Airplane) error

	ListAirports(ctx context.Context, filter domain.AirportFilter, page domain.Page) ([]domain.AirportView, int, error)
	CreateAirport(ctx context.Context, airport *domain.Airport) error
	UploadAirportImage(ctx context.Context, id int64, image io.Reader) (*domain.AirportView, error)

	ListRoutes(ctx context.Context, filter domain.RouteFilter, page domain.Page) ([]domain.RouteView, int, error)
	CreateRoute(ctx context.Context, route *domain.Route) error
}

// ListCache stores list pages of reference data that changes rarely.
type ListCache interface {
	GetList(ctx context.Context, resource string, page domain.Page, dst any) (bool, error)
	SetList(ctx context.Context, resource string, page domain.Page, value any) error
	Invalidate(ctx context.Context, resource string) error
}

type MediaStore interface {
	SaveImage(ctx context.Context, dir, name string, r io.Reader) (string, error)
}

type Repositories struct {
	Countries repository.CountryRepository
	Cities    repository.CityRepository
	Crews     repository.CrewRepository
	Fleet     repository.FleetRepository
	Airports  repository.AirportRepository
	Routes    repository.RouteRepository
}

type ReferenceService struct {
	repos Repositories
	media MediaStore
	cache ListCache
	log   logger.Logger
}

type ReferenceServiceOption func(*ReferenceService)

func WithCache(c ListCache) ReferenceServiceOption {
	return func(s *ReferenceService) {
		s.cache = c
	}
}

func WithLogger(l logger.Logger) ReferenceServiceOption {
	return func(s *ReferenceService) {
		s.log = l
	}
}

func NewReferenceService(repos Repositories, media MediaStore, opts ...ReferenceServiceOption) *ReferenceService {
	service := &ReferenceService{
		repos: repos,
		media: media,
		log:   logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *ReferenceService) ListCountries(ctx context.Context, page domain.Page) ([]domain.Country, int, error) {
	return cachedList(ctx, s, resourceCountries, page, func() ([]domain.Country, int, error) {
		return s.repos.Countries.List(ctx, page)
	})
}

func (s *ReferenceService) CreateCountry(ctx context.Context, country *domain.Country) error {
	country.Name = strings.TrimSpace(country.Name)
	if err := domain.RequireName(country.Name); err != nil {
		return err
	}
	if err := s.repos.Countries.Create(ctx, country); err != nil {
		return err
	}
	s.invalidate(ctx, resourceCountries)
	return nil
}

func (s *ReferenceService) ListCities(ctx context.Context, filter domain.CityFilter, page domain.Page) ([]domain.CityView, int, error) {
	return s.repos.Cities.List(ctx, filter, page)
}

func (s *ReferenceService) CreateCity(ctx context.Context, city *domain.City) error {
	city.Name = strings.TrimSpace(city.Name)
	verr := &domain.ValidationError{}
	if err := domain.RequireName(city.Name); err != nil {
		verr.Add("name", "this field may not be blank")
	}
	if city.CountryID <= 0 {
		verr.Add("country", "this field is required")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}
	return s.repos.Cities.Create(ctx, city)
}

func (s *ReferenceService) ListCrewPositions(ctx context.Context, page domain.Page) ([]domain.CrewPosition, int, error) {
	return cachedList(ctx, s, resourceCrewPositions, page, func() ([]domain.CrewPosition, int, error) {
		return s.repos.Crews.ListPositions(ctx, page)
	})
}

func (s *ReferenceService) CreateCrewPosition(ctx context.Context, position *domain.CrewPosition) error {
	position.Name = strings.TrimSpace(position.Name)
	if err := domain.RequireName(position.Name); err != nil {
		return err
	}
	if err := s.repos.Crews.CreatePosition(ctx, position); err != nil {
		return err
	}
	s.invalidate(ctx, resourceCrewPositions)
	return nil
}

func (s *ReferenceService) ListCrews(ctx context.Context, filter domain.CrewFilter, page domain.Page) ([]domain.CrewView, int, error) {
	return s.repos.Crews.List(ctx, filter, page)
}

func (s *ReferenceService) CreateCrew(ctx context.Context, crew *domain.Crew) error {
	crew.FirstName = strings.TrimSpace(crew.FirstName)
	crew.LastName = strings.TrimSpace(crew.LastName)
	verr := &domain.ValidationError{}
	if crew.FirstName == "" {
		verr.Add("first_name", "this field may not be blank")
	}
	if crew.LastName == "" {
		verr.Add("last_name", "this field may not be blank")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}
	return s.repos.Crews.Create(ctx, crew)
}

func (s *ReferenceService) ListAirplaneTypes(ctx context.Context, page domain.Page) ([]domain.AirplaneType, int, error) {
	return cachedList(ctx, s, resourceAirplaneTypes, page, func() ([]domain.AirplaneType, int, error) {
		return s.repos.Fleet.ListTypes(ctx, page)
	})
}

func (s *ReferenceService) CreateAirplaneType(ctx context.Context, airplaneType *domain.AirplaneType) error {
	airplaneType.Name = strings.TrimSpace(airplaneType.Name)
	if err := domain.RequireName(airplaneType.Name); err != nil {
		return err
	}
	if err := s.repos.Fleet.CreateType(ctx, airplaneType); err != nil {
		return err
	}
	s.invalidate(ctx, resourceAirplaneTypes)
	return nil
}

func (s *ReferenceService) UploadAirplaneTypeImage(ctx context.Context, id int64, image io.Reader) (*domain.AirplaneType, error) {
	current, err := s.repos.Fleet.GetType(ctx, id)
	if err != nil {
		return nil, err
	}
	path, err := s.media.SaveImage(ctx, "uploads/airplane_types", current.Name, image)
	if err != nil {
		return nil, err
	}
	updated, err := s.repos.Fleet.SetTypeImage(ctx, id, path)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, resourceAirplaneTypes)
	return updated, nil
}

func (s *ReferenceService) ListAirplanes(ctx context.Context, page domain.Page) ([]domain.AirplaneView, int, error) {
	return s.repos.Fleet.ListAirplanes(ctx, page)
}

func (s *ReferenceService) CreateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	airplane.Name = strings.TrimSpace(airplane.Name)
	if err := domain.ValidateAirplane(*airplane); err != nil {
		return err
	}
	return s.repos.Fleet.CreateAirplane(ctx, airplane)
}

func (s *ReferenceService) ListAirports(ctx context.Context, filter domain.AirportFilter, page domain.Page) ([]domain.AirportView, int, error) {
	return s.repos.Airports.List(ctx, filter, page)
}

func (s *ReferenceService) CreateAirport(ctx context.Context, airport *domain.Airport) error {
	airport.Name = strings.TrimSpace(airport.Name)
	verr := &domain.ValidationError{}
	if airport.Name == "" {
		verr.Add("name", "this field may not be blank")
	}
	if airport.ClosestCityID <= 0 {
		verr.Add("closest_big_city", "this field is required")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}
	return s.repos.Airports.Create(ctx, airport)
}

func (s *ReferenceService) UploadAirportImage(ctx context.Context, id int64, image io.Reader) (*domain.AirportView, error) {
	current, err := s.repos.Airports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	path, err := s.media.SaveImage(ctx, "uploads/airports", current.Name, image)
	if err != nil {
		return nil, err
	}
	return s.repos.Airports.SetImage(ctx, id, path)
}

func (s *ReferenceService) ListRoutes(ctx context.Context, filter domain.RouteFilter, page domain.Page) ([]domain.RouteView, int, error) {
	return s.repos.Routes.List(ctx, filter, page)
}

func (s *ReferenceService) CreateRoute(ctx context.Context, route *domain.Route) error {
	if err := domain.ValidateRoute(route.SourceID, route.DestinationID, route.Distance); err != nil {
		return err
	}
	return s.repos.Routes.Create(ctx, route)
}

// cachedList serves a page from the cache and falls back to load on a miss
// or a cache failure. Cache errors never fail the request.
func cachedList[T any](ctx context.Context, s *ReferenceService, resource string, page domain.Page, load func() ([]T, int, error)) ([]T, int, error) {
	if s.cache != nil {
		var cached cache.Page[T]
		hit, err := s.cache.GetList(ctx, resource, page, &cached)
		if err != nil {
			s.log.Warn("cache read failed for ", resource, ": ", err)
		}
		if hit {
			return cached.Items, cached.Total, nil
		}
	}

	items, total, err := load()
	if err != nil {
		return nil, 0, err
	}
	if s.cache != nil {
		if err := s.cache.SetList(ctx, resource, page, cache.Page[T]{Items: items, Total: total}); err != nil {
			s.log.Warn("cache write failed for ", resource, ": ", err)
		}
	}
	return items, total, nil
}

func (s *ReferenceService) invalidate(ctx context.Context, resource string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, resource); err != nil {
		s.log.Warn("cache invalidation failed for ", resource, ": ", err)
	}
}

var _ ReferenceUseCase = (*ReferenceService)(nil)
