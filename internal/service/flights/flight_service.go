package flights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/Domenick1991/airports/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context, filter domain.FlightFilter, page domain.Page) ([]domain.FlightView, int, error)
	Get(ctx context.Context, id int64) (*domain.FlightDetail, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Patch(ctx context.Context, id int64, patch Patch) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

// Patch holds the fields of a partial update; nil fields keep their value.
type Patch struct {
	RouteID       *int64
	AirplaneID    *int64
	DepartureTime *time.Time
	ArrivalTime   *time.Time
	CrewIDs       *[]int64
}

func (p Patch) apply(f *domain.Flight) {
	if p.RouteID != nil {
		f.RouteID = *p.RouteID
	}
	if p.AirplaneID != nil {
		f.AirplaneID = *p.AirplaneID
	}
	if p.DepartureTime != nil {
		f.DepartureTime = *p.DepartureTime
	}
	if p.ArrivalTime != nil {
		f.ArrivalTime = *p.ArrivalTime
	}
	if p.CrewIDs != nil {
		f.CrewIDs = *p.CrewIDs
	}
}

type FlightService struct {
	repo repository.FlightRepository
}

func NewFlightService(repo repository.FlightRepository) *FlightService {
	return &FlightService{repo: repo}
}

func (s *FlightService) List(ctx context.Context, filter domain.FlightFilter, page domain.Page) ([]domain.FlightView, int, error) {
	return s.repo.List(ctx, filter, page)
}

func (s *FlightService) Get(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, flight *domain.Flight) error {
	if err := validate(flight); err != nil {
		return err
	}
	return s.repo.Create(ctx, flight)
}

func (s *FlightService) Update(ctx context.Context, flight *domain.Flight) error {
	if err := validate(flight); err != nil {
		return err
	}
	return s.repo.Update(ctx, flight)
}

// Patch merges the patch into the stored flight and validates the result as
// a whole, so a new departure is still checked against the old arrival.
func (s *FlightService) Patch(ctx context.Context, id int64, patch Patch) (*domain.Flight, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.apply(flight)
	if err := validate(flight); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validate(f *domain.Flight) error {
	verr := &domain.ValidationError{}
	if f.RouteID <= 0 {
		verr.Add("route", "this field is required")
	}
	if f.AirplaneID <= 0 {
		verr.Add("airplane", "this field is required")
	}
	seen := make(map[int64]bool, len(f.CrewIDs))
	for _, id := range f.CrewIDs {
		if seen[id] {
			verr.Add("crew_members", fmt.Sprintf("duplicate crew member %d", id))
		}
		seen[id] = true
	}
	var times *domain.ValidationError
	if errors.As(domain.ValidateFlightTimes(f.DepartureTime, f.ArrivalTime), &times) {
		verr.Merge("", times)
	}
	return verr.OrNil()
}

var _ FlightUseCase = (*FlightService)(nil)
