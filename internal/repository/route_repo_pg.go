package repository

import (
	"context"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouteRepository interface {
	List(ctx context.Context, filter domain.RouteFilter, page domain.Page) ([]domain.RouteView, int, error)
	Create(ctx context.Context, route *domain.Route) error
}

type PGRouteRepository struct {
	db *pgxpool.Pool
}

func NewRouteRepository(db *pgxpool.Pool) RouteRepository {
	return &PGRouteRepository{db: db}
}

const routeViewJoins = `
	JOIN airports s ON s.id = r.source_id
	JOIN cities sc ON sc.id = s.closest_big_city_id
	JOIN countries sco ON sco.id = sc.country_id
	JOIN airports d ON d.id = r.destination_id
	JOIN cities dc ON dc.id = d.closest_big_city_id
	JOIN countries dco ON dco.id = dc.country_id`

const routeViewColumns = `r.id, r.distance,
	s.id, s.name, s.closest_big_city_id, s.image, sc.name, sco.id, sco.name,
	d.id, d.name, d.closest_big_city_id, d.image, dc.name, dco.id, dco.name`

func routeViewFields(v *domain.RouteView) []any {
	fields := []any{&v.ID, &v.Distance}
	fields = append(fields, airportViewFields(&v.Source)...)
	return append(fields, airportViewFields(&v.Destination)...)
}

func (r *PGRouteRepository) List(ctx context.Context, filter domain.RouteFilter, page domain.Page) ([]domain.RouteView, int, error) {
	var w where
	if filter.SourceID != nil {
		w.add("r.source_id = ?", *filter.SourceID)
	}
	if filter.DestinationID != nil {
		w.add("r.destination_id = ?", *filter.DestinationID)
	}
	if filter.FromCountryID != nil {
		w.add("sc.country_id = ?", *filter.FromCountryID)
	}
	if filter.ToCountryID != nil {
		w.add("dc.country_id = ?", *filter.ToCountryID)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM routes r`+routeViewJoins+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := r.db.Query(ctx, `SELECT `+routeViewColumns+` FROM routes r`+routeViewJoins+w.sql()+` ORDER BY r.id`+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	routes := make([]domain.RouteView, 0)
	for rows.Next() {
		var v domain.RouteView
		if err := rows.Scan(routeViewFields(&v)...); err != nil {
			return nil, 0, err
		}
		routes = append(routes, v)
	}
	return routes, total, rows.Err()
}

func (r *PGRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	err := r.db.QueryRow(ctx, `INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
		route.SourceID, route.DestinationID, route.Distance).Scan(&route.ID)
	return translate(err)
}

var _ RouteRepository = (*PGRouteRepository)(nil)
