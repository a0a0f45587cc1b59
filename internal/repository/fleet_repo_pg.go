package repository

import (
	"context"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FleetRepository stores airplane types and airplanes.
type FleetRepository interface {
	ListTypes(ctx context.Context, page domain.Page) ([]domain.AirplaneType, int, error)
	CreateType(ctx context.Context, airplaneType *domain.AirplaneType) error
	GetType(ctx context.Context, id int64) (*domain.AirplaneType, error)
	SetTypeImage(ctx context.Context, id int64, image string) (*domain.AirplaneType, error)
	ListAirplanes(ctx context.Context, page domain.Page) ([]domain.AirplaneView, int, error)
	CreateAirplane(ctx context.Context, airplane *domain.Airplane) error
}

type PGFleetRepository struct {
	db *pgxpool.Pool
}

func NewFleetRepository(db *pgxpool.Pool) FleetRepository {
	return &PGFleetRepository{db: db}
}

func (r *PGFleetRepository) ListTypes(ctx context.Context, page domain.Page) ([]domain.AirplaneType, int, error) {
	var w where
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM airplane_types`).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := r.db.Query(ctx, `SELECT id, name, image FROM airplane_types ORDER BY id`+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	types := make([]domain.AirplaneType, 0)
	for rows.Next() {
		var t domain.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name, &t.Image); err != nil {
			return nil, 0, err
		}
		types = append(types, t)
	}
	return types, total, rows.Err()
}

func (r *PGFleetRepository) CreateType(ctx context.Context, airplaneType *domain.AirplaneType) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`, airplaneType.Name).Scan(&airplaneType.ID)
	return translate(err)
}

func (r *PGFleetRepository) GetType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	var t domain.AirplaneType
	if err := r.db.QueryRow(ctx, `SELECT id, name, image FROM airplane_types WHERE id=$1`, id).Scan(&t.ID, &t.Name, &t.Image); err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *PGFleetRepository) SetTypeImage(ctx context.Context, id int64, image string) (*domain.AirplaneType, error) {
	var t domain.AirplaneType
	if err := r.db.QueryRow(ctx, `UPDATE airplane_types SET image=$2 WHERE id=$1 RETURNING id, name, image`, id, image).
		Scan(&t.ID, &t.Name, &t.Image); err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *PGFleetRepository) ListAirplanes(ctx context.Context, page domain.Page) ([]domain.AirplaneView, int, error) {
	var w where
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM airplanes`).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := r.db.Query(ctx, `SELECT a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id, apt.name
		FROM airplanes a JOIN airplane_types apt ON apt.id = a.airplane_type_id ORDER BY a.id`+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	airplanes := make([]domain.AirplaneView, 0)
	for rows.Next() {
		var a domain.AirplaneView
		if err := rows.Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.AirplaneTypeID, &a.AirplaneTypeName); err != nil {
			return nil, 0, err
		}
		airplanes = append(airplanes, a)
	}
	return airplanes, total, rows.Err()
}

func (r *PGFleetRepository) CreateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airplanes (name, rows, seats_in_row, airplane_type_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		airplane.Name, airplane.Rows, airplane.SeatsInRow, airplane.AirplaneTypeID).Scan(&airplane.ID)
	return translate(err)
}

var _ FleetRepository = (*PGFleetRepository)(nil)
