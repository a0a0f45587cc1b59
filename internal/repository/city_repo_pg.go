package repository

import (
	"context"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CityRepository interface {
	List(ctx context.Context, filter domain.CityFilter, page domain.Page) ([]domain.CityView, int, error)
	Create(ctx context.Context, city *domain.City) error
}

type PGCityRepository struct {
	db *pgxpool.Pool
}

func NewCityRepository(db *pgxpool.Pool) CityRepository {
	return &PGCityRepository{db: db}
}

func (r *PGCityRepository) List(ctx context.Context, filter domain.CityFilter, page domain.Page) ([]domain.CityView, int, error) {
	var w where
	if filter.CountryID != nil {
		w.add("c.country_id = ?", *filter.CountryID)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cities c`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := r.db.Query(ctx, `SELECT c.id, c.name, c.country_id, co.name
		FROM cities c JOIN countries co ON co.id = c.country_id`+w.sql()+` ORDER BY c.id`+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	cities := make([]domain.CityView, 0)
	for rows.Next() {
		var c domain.CityView
		if err := rows.Scan(&c.ID, &c.Name, &c.CountryID, &c.CountryName); err != nil {
			return nil, 0, err
		}
		cities = append(cities, c)
	}
	return cities, total, rows.Err()
}

func (r *PGCityRepository) Create(ctx context.Context, city *domain.City) error {
	err := r.db.QueryRow(ctx, `INSERT INTO cities (name, country_id) VALUES ($1, $2) RETURNING id`, city.Name, city.CountryID).Scan(&city.ID)
	return translate(err)
}

var _ CityRepository = (*PGCityRepository)(nil)
