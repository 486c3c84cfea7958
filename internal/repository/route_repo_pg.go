package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smelyanko/airport-service/internal/domain"
)

type RouteRepository interface {
	List(ctx context.Context, limit, offset int) ([]domain.Route, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	Create(ctx context.Context, route *domain.Route) error
	Update(ctx context.Context, route *domain.Route) error
	Delete(ctx context.Context, id int64) error
}

type PGRouteRepository struct {
	db *pgxpool.Pool
}

func NewRouteRepository(db *pgxpool.Pool) RouteRepository {
	return &PGRouteRepository{db: db}
}

const routeSelect = `
	SELECT r.id, r.source_id, r.destination_id, r.distance,
	       src.name, src_city.name, dst.name, dst_city.name
	FROM routes r
	JOIN airports src ON src.id = r.source_id
	JOIN cities src_city ON src_city.id = src.closest_city_id
	JOIN airports dst ON dst.id = r.destination_id
	JOIN cities dst_city ON dst_city.id = dst.closest_city_id`

func (r *PGRouteRepository) List(ctx context.Context, limit, offset int) ([]domain.Route, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM routes`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, routeSelect+` ORDER BY r.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		var rt domain.Route
		if err := rows.Scan(&rt.ID, &rt.SourceID, &rt.DestinationID, &rt.Distance,
			&rt.SourceName, &rt.SourceCity, &rt.DestinationName, &rt.DestinationCity); err != nil {
			return nil, 0, err
		}
		routes = append(routes, rt)
	}
	return routes, total, rows.Err()
}

func (r *PGRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	var rt domain.Route
	err := r.db.QueryRow(ctx, routeSelect+` WHERE r.id=$1`, id).
		Scan(&rt.ID, &rt.SourceID, &rt.DestinationID, &rt.Distance,
			&rt.SourceName, &rt.SourceCity, &rt.DestinationName, &rt.DestinationCity)
	if err != nil {
		return nil, mapPGError(err)
	}
	return &rt, nil
}

func (r *PGRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	err := r.db.QueryRow(ctx, `INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
		route.SourceID, route.DestinationID, route.Distance).Scan(&route.ID)
	return mapPGError(err)
}

func (r *PGRouteRepository) Update(ctx context.Context, route *domain.Route) error {
	res, err := r.db.Exec(ctx, `UPDATE routes SET source_id=$1, destination_id=$2, distance=$3 WHERE id=$4`,
		route.SourceID, route.DestinationID, route.Distance, route.ID)
	if err != nil {
		return mapPGError(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGRouteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM routes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ RouteRepository = (*PGRouteRepository)(nil)
