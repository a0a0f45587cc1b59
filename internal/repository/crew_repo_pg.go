package repository

import (
	"context"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CrewRepository interface {
	ListPositions(ctx context.Context, page domain.Page) ([]domain.CrewPosition, int, error)
	CreatePosition(ctx context.Context, position *domain.CrewPosition) error
	List(ctx context.Context, filter domain.CrewFilter, page domain.Page) ([]domain.CrewView, int, error)
	Create(ctx context.Context, crew *domain.Crew) error
}

type PGCrewRepository struct {
	db *pgxpool.Pool
}

func NewCrewRepository(db *pgxpool.Pool) CrewRepository {
	return &PGCrewRepository{db: db}
}

func (r *PGCrewRepository) ListPositions(ctx context.Context, page domain.Page) ([]domain.CrewPosition, int, error) {
	var w where
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM crew_positions`).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := r.db.Query(ctx, `SELECT id, name FROM crew_positions ORDER BY id`+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	positions := make([]domain.CrewPosition, 0)
	for rows.Next() {
		var p domain.CrewPosition
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, 0, err
		}
		positions = append(positions, p)
	}
	return positions, total, rows.Err()
}

func (r *PGCrewRepository) CreatePosition(ctx context.Context, position *domain.CrewPosition) error {
	err := r.db.QueryRow(ctx, `INSERT INTO crew_positions (name) VALUES ($1) RETURNING id`, position.Name).Scan(&position.ID)
	return translate(err)
}

func (r *PGCrewRepository) List(ctx context.Context, filter domain.CrewFilter, page domain.Page) ([]domain.CrewView, int, error) {
	var w where
	if filter.PositionID != nil {
		w.add("c.position_id = ?", *filter.PositionID)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM crews c`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, args := w.paginate(page)
	rows, err := r.db.Query(ctx, `SELECT c.id, c.first_name, c.last_name, c.position_id, p.name
		FROM crews c LEFT JOIN crew_positions p ON p.id = c.position_id`+w.sql()+` ORDER BY c.id`+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	crews := make([]domain.CrewView, 0)
	for rows.Next() {
		var (
			c            domain.CrewView
			positionName *string
		)
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.PositionID, &positionName); err != nil {
			return nil, 0, err
		}
		c.Position = crewPosition(c.PositionID, positionName)
		crews = append(crews, c)
	}
	return crews, total, rows.Err()
}

func (r *PGCrewRepository) Create(ctx context.Context, crew *domain.Crew) error {
	err := r.db.QueryRow(ctx, `INSERT INTO crews (first_name, last_name, position_id) VALUES ($1, $2, $3) RETURNING id`,
		crew.FirstName, crew.LastName, crew.PositionID).Scan(&crew.ID)
	return translate(err)
}

func crewPosition(id *int64, name *string) *domain.CrewPosition {
	if id == nil || name == nil {
		return nil
	}
	return &domain.CrewPosition{ID: *id, Name: *name}
}

var _ CrewRepository = (*PGCrewRepository)(nil)
