package catalogrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/diesel-reports/internal/domain/catalog"
)

// PostgresRepository reads the city and tank tables.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListCities returns every city ordered by description.
func (r *PostgresRepository) ListCities(ctx context.Context) ([]catalog.City, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT "IDCiudad"::bigint, "CveCiudad", "Descripcion"
		FROM "Ciudad"
		ORDER BY "Descripcion"
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]catalog.City, 0)
	for rows.Next() {
		var c catalog.City
		if err := rows.Scan(&c.ID, &c.Code, &c.Description); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

// ListTanksByCity returns the tanks of one city ordered by name.
func (r *PostgresRepository) ListTanksByCity(ctx context.Context, cityCode string) ([]catalog.Tank, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT "IDTanque"::bigint, "Nombre", "CveCiudad"
		FROM "Tanque"
		WHERE "CveCiudad" = $1
		ORDER BY "Nombre"
	`, cityCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tanks := make([]catalog.Tank, 0)
	for rows.Next() {
		var t catalog.Tank
		if err := rows.Scan(&t.ID, &t.Name, &t.CityCode); err != nil {
			return nil, err
		}
		tanks = append(tanks, t)
	}
	return tanks, rows.Err()
}

var _ catalog.Repository = (*PostgresRepository)(nil)
