package repository

import (
	"context"
	"strings"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirportRepository interface {
	List(ctx context.Context, filter domain.AirportFilter, page domain.Page) ([]domain.AirportView, int, error)
	Create(ctx context.Context, airport *domain.Airport) error
	GetByID(ctx context.Context, id int64) (*domain.AirportView, error)
	SetImage(ctx context.Context, id int64, image string) (*domain.AirportView, error)
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

const airportViewFrom = ` FROM airports ap
	JOIN cities apc ON apc.id = ap.closest_big_city_id
	JOIN countries apco ON apco.id = apc.country_id`

const airportViewColumns = `ap.id, ap.name, ap.closest_big_city_id, ap.image, apc.name, apco.id, apco.name`

func airportViewFields(v *domain.AirportView) []any {
	return []any{&v.ID, &v.Name, &v.ClosestCityID, &v.Image, &v.CityName, &v.CountryID, &v.CountryName}
}

func (r *PGAirportRepository) List(ctx context.Context, filter domain.AirportFilter, page domain.Page) ([]domain.AirportView, int, error) {
	var w where
	if filter.Name != "" {
		w.add(`ap.name ILIKE ? ESCAPE '\'`, "%"+escapeLike(filter.Name)+"%")
	}
	if filter.CountryID != nil {
		w.add("apc.country_id = ?", *filter.CountryID)
	}
	if filter.CityID != nil {
		w.add("ap.closest_big_city_id = ?", *filter.CityID)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+airportViewFrom+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := r.db.Query(ctx, `SELECT `+airportViewColumns+airportViewFrom+w.sql()+` ORDER BY ap.id`+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	airports := make([]domain.AirportView, 0)
	for rows.Next() {
		var a domain.AirportView
		if err := rows.Scan(airportViewFields(&a)...); err != nil {
			return nil, 0, err
		}
		airports = append(airports, a)
	}
	return airports, total, rows.Err()
}

func (r *PGAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airports (name, closest_big_city_id) VALUES ($1, $2) RETURNING id`,
		airport.Name, airport.ClosestCityID).Scan(&airport.ID)
	return translate(err)
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.AirportView, error) {
	var a domain.AirportView
	if err := r.db.QueryRow(ctx, `SELECT `+airportViewColumns+airportViewFrom+` WHERE ap.id=$1`, id).Scan(airportViewFields(&a)...); err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *PGAirportRepository) SetImage(ctx context.Context, id int64, image string) (*domain.AirportView, error) {
	tag, err := r.db.Exec(ctx, `UPDATE airports SET image=$2 WHERE id=$1`, id, image)
	if err != nil {
		return nil, translate(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

var _ AirportRepository = (*PGAirportRepository)(nil)
