package repository

import (
	"context"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CountryRepository interface {
	List(ctx context.Context, page domain.Page) ([]domain.Country, int, error)
	Create(ctx context.Context, country *domain.Country) error
}

type PGCountryRepository struct {
	db *pgxpool.Pool
}

func NewCountryRepository(db *pgxpool.Pool) CountryRepository {
	return &PGCountryRepository{db: db}
}

func (r *PGCountryRepository) List(ctx context.Context, page domain.Page) ([]domain.Country, int, error) {
	var w where
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM countries`).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := r.db.Query(ctx, `SELECT id, name FROM countries ORDER BY id`+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	countries := make([]domain.Country, 0)
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, 0, err
		}
		countries = append(countries, c)
	}
	return countries, total, rows.Err()
}

func (r *PGCountryRepository) Create(ctx context.Context, country *domain.Country) error {
	err := r.db.QueryRow(ctx, `INSERT INTO countries (name) VALUES ($1) RETURNING id`, country.Name).Scan(&country.ID)
	return translate(err)
}

var _ CountryRepository = (*PGCountryRepository)(nil)
