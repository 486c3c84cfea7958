package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smelyanko/airport-service/internal/domain"
)

type CountryRepository interface {
	List(ctx context.Context, limit, offset int) ([]domain.Country, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Country, error)
	Create(ctx context.Context, country *domain.Country) error
	Update(ctx context.Context, country *domain.Country) error
	Delete(ctx context.Context, id int64) error
}

type CityRepository interface {
	List(ctx context.Context, limit, offset int) ([]domain.City, int, error)
	GetByID(ctx context.Context, id int64) (*domain.City, error)
	Create(ctx context.Context, city *domain.City) error
	Update(ctx context.Context, city *domain.City) error
	Delete(ctx context.Context, id int64) error
}

type AirportRepository interface {
	List(ctx context.Context, limit, offset int) ([]domain.Airport, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	Create(ctx context.Context, airport *domain.Airport) error
	Update(ctx context.Context, airport *domain.Airport) error
	Delete(ctx context.Context, id int64) error
}

type PGCountryRepository struct {
	db *pgxpool.Pool
}

func NewCountryRepository(db *pgxpool.Pool) CountryRepository {
	return &PGCountryRepository{db: db}
}

func (r *PGCountryRepository) List(ctx context.Context, limit, offset int) ([]domain.Country, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM countries`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT id, name FROM countries ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
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

func (r *PGCountryRepository) GetByID(ctx context.Context, id int64) (*domain.Country, error) {
	var c domain.Country
	err := r.db.QueryRow(ctx, `SELECT id, name FROM countries WHERE id=$1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, mapPGError(err)
	}
	return &c, nil
}

func (r *PGCountryRepository) Create(ctx context.Context, country *domain.Country) error {
	err := r.db.QueryRow(ctx, `INSERT INTO countries (name) VALUES ($1) RETURNING id`, country.Name).Scan(&country.ID)
	return mapPGError(err)
}

func (r *PGCountryRepository) Update(ctx context.Context, country *domain.Country) error {
	res, err := r.db.Exec(ctx, `UPDATE countries SET name=$1 WHERE id=$2`, country.Name, country.ID)
	if err != nil {
		return mapPGError(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGCountryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM countries WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type PGCityRepository struct {
	db *pgxpool.Pool
}

func NewCityRepository(db *pgxpool.Pool) CityRepository {
	return &PGCityRepository{db: db}
}

func (r *PGCityRepository) List(ctx context.Context, limit, offset int) ([]domain.City, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM cities`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.name, c.country_id, co.name
		FROM cities c
		JOIN countries co ON co.id = c.country_id
		ORDER BY c.name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	cities := make([]domain.City, 0)
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name, &c.CountryID, &c.CountryName); err != nil {
			return nil, 0, err
		}
		cities = append(cities, c)
	}
	return cities, total, rows.Err()
}

func (r *PGCityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	var c domain.City
	err := r.db.QueryRow(ctx, `
		SELECT c.id, c.name, c.country_id, co.name
		FROM cities c
		JOIN countries co ON co.id = c.country_id
		WHERE c.id=$1`, id).Scan(&c.ID, &c.Name, &c.CountryID, &c.CountryName)
	if err != nil {
		return nil, mapPGError(err)
	}
	return &c, nil
}

func (r *PGCityRepository) Create(ctx context.Context, city *domain.City) error {
	err := r.db.QueryRow(ctx, `INSERT INTO cities (name, country_id) VALUES ($1, $2) RETURNING id`,
		city.Name, city.CountryID).Scan(&city.ID)
	return mapPGError(err)
}

func (r *PGCityRepository) Update(ctx context.Context, city *domain.City) error {
	res, err := r.db.Exec(ctx, `UPDATE cities SET name=$1, country_id=$2 WHERE id=$3`,
		city.Name, city.CountryID, city.ID)
	if err != nil {
		return mapPGError(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGCityRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM cities WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context, limit, offset int) ([]domain.Airport, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM airports`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.name, a.closest_city_id, c.name, co.name
		FROM airports a
		JOIN cities c ON c.id = a.closest_city_id
		JOIN countries co ON co.id = c.country_id
		ORDER BY a.name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.ClosestCityID, &a.CityName, &a.CountryName); err != nil {
			return nil, 0, err
		}
		airports = append(airports, a)
	}
	return airports, total, rows.Err()
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	var a domain.Airport
	err := r.db.QueryRow(ctx, `
		SELECT a.id, a.name, a.closest_city_id, c.name, co.name
		FROM airports a
		JOIN cities c ON c.id = a.closest_city_id
		JOIN countries co ON co.id = c.country_id
		WHERE a.id=$1`, id).Scan(&a.ID, &a.Name, &a.ClosestCityID, &a.CityName, &a.CountryName)
	if err != nil {
		return nil, mapPGError(err)
	}
	return &a, nil
}

func (r *PGAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airports (name, closest_city_id) VALUES ($1, $2) RETURNING id`,
		airport.Name, airport.ClosestCityID).Scan(&airport.ID)
	return mapPGError(err)
}

func (r *PGAirportRepository) Update(ctx context.Context, airport *domain.Airport) error {
	res, err := r.db.Exec(ctx, `UPDATE airports SET name=$1, closest_city_id=$2 WHERE id=$3`,
		airport.Name, airport.ClosestCityID, airport.ID)
	if err != nil {
		return mapPGError(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGAirportRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM airports WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ CountryRepository = (*PGCountryRepository)(nil)
var _ CityRepository = (*PGCityRepository)(nil)
var _ AirportRepository = (*PGAirportRepository)(nil)
