package reportrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/diesel-reports/internal/domain/report"
)

// PostgresClient implements report.QueryClient by calling the reporting functions
// installed in the hosted Postgres database.
type PostgresClient struct {
	pool *pgxpool.Pool
}

// NewPostgresClient constructs the client.
func NewPostgresClient(pool *pgxpool.Pool) *PostgresClient {
	return &PostgresClient{pool: pool}
}

// QueryConsumption calls get_reporte_consumos.
func (c *PostgresClient) QueryConsumption(ctx context.Context, filter report.Filter) ([]report.MovementRow, error) {
	rows, err := c.pool.Query(ctx, `
		SELECT fecha::text, ciudad, tanque, "idTanque"::bigint,
		       COALESCE("totalEntradas", 0)::numeric, COALESCE("totalSalidas", 0)::numeric
		FROM get_reporte_consumos($1::date, $2::date, $3, $4)
	`, filterArgs(filter)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]report.MovementRow, 0)
	for rows.Next() {
		var row report.MovementRow
		if err := rows.Scan(&row.Date, &row.CityCode, &row.Tank, &row.TankID, &row.TotalIntake, &row.TotalDispensed); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", report.FunctionConsumption, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// QueryEfficiency calls reporte_rendimientos.
func (c *PostgresClient) QueryEfficiency(ctx context.Context, filter report.Filter) ([]report.EfficiencyRow, error) {
	rows, err := c.pool.Query(ctx, `
		SELECT "Tanque", "Unidad", "IDUnidad"::bigint,
		       COALESCE("Carga Total", 0)::numeric,
		       COALESCE("Kms Recorridos", 0)::numeric,
		       COALESCE("Hrs Recorridos", 0)::numeric,
		       "Kms/Lts"::numeric, "Hrs/Lts"::numeric
		FROM reporte_rendimientos($1::date, $2::date, $3, $4)
	`, filterArgs(filter)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]report.EfficiencyRow, 0)
	for rows.Next() {
		var row report.EfficiencyRow
		if err := rows.Scan(
			&row.Tank, &row.Unit, &row.UnitID,
			&row.LoadTotal, &row.KmTraveled, &row.HoursTraveled,
			&row.KmPerLiter, &row.HoursPerLiter,
		); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", report.FunctionEfficiency, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// QueryProductivity calls reporte_productividad.
func (c *PostgresClient) QueryProductivity(ctx context.Context, filter report.Filter) ([]report.ProductivityRow, error) {
	rows, err := c.pool.Query(ctx, `
		SELECT "EstadoRegistro", "Unidad", "Tanque",
		       COALESCE("Litros Consumidos", 0)::numeric,
		       COALESCE("Kms Totales", 0)::numeric,
		       COALESCE("Hrs Totales", 0)::numeric,
		       COALESCE("MetrosCubicos", 0)::numeric,
		       COALESCE("Viajes", 0)::bigint,
		       "Lts/M3"::numeric, "M3/Viaje"::numeric, "Km/Lts"::numeric
		FROM reporte_productividad($1::date, $2::date, $3, $4)
	`, filterArgs(filter)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]report.ProductivityRow, 0)
	for rows.Next() {
		var row report.ProductivityRow
		if err := rows.Scan(
			&row.Status, &row.Unit, &row.Tank,
			&row.LitersConsumed, &row.KmTotal, &row.HoursTotal,
			&row.CubicMeters, &row.Trips,
			&row.LitersPerCubicMeter, &row.CubicMetersPerTrip, &row.KmPerLiter,
		); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", report.FunctionProductivity, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// QueryEfficiencyDetail calls get_rendimientos_detalle for one unit.
func (c *PostgresClient) QueryEfficiencyDetail(ctx context.Context, filter report.DetailFilter) ([]report.EfficiencyMovement, error) {
	args := append(filterArgs(filter.Filter), filter.UnitID)
	rows, err := c.pool.Query(ctx, `
		SELECT id_tanque_movimiento::bigint, fecha::text, COALESCE(hora::text, ''),
		       COALESCE(litros, 0)::numeric,
		       cuenta_litros::numeric, horometro::numeric, odometro::numeric
		FROM get_rendimientos_detalle($1::date, $2::date, $3, $4, $5)
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]report.EfficiencyMovement, 0)
	for rows.Next() {
		var m report.EfficiencyMovement
		if err := rows.Scan(
			&m.MovementID, &m.Date, &m.Time, &m.Liters,
			&m.LiterCounter, &m.HourMeter, &m.Odometer,
		); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", report.FunctionEfficiencyDetail, err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// filterArgs maps a filter onto the p_fecha_inicio, p_fecha_fin, p_cve_ciudad and
// p_id_tanque parameters. Nil pointers are sent as NULL.
func filterArgs(filter report.Filter) []any {
	return []any{filter.DateFrom, filter.DateTo, filter.CityCode, filter.TankID}
}

var _ report.QueryClient = (*PostgresClient)(nil)
