package report

import "context"

// Names of the remote stored functions backing each query.
const (
	FunctionConsumption      = "get_reporte_consumos"
	FunctionEfficiency       = "reporte_rendimientos"
	FunctionProductivity     = "reporte_productividad"
	FunctionEfficiencyDetail = "get_rendimientos_detalle"
)

// QueryClient abstracts the hosted store's read-only report functions.
// Implementations return an empty slice, not an error, when nothing matches.
type QueryClient interface {
	QueryConsumption(ctx context.Context, filter Filter) ([]MovementRow, error)
	QueryEfficiency(ctx context.Context, filter Filter) ([]EfficiencyRow, error)
	QueryProductivity(ctx context.Context, filter Filter) ([]ProductivityRow, error)
	QueryEfficiencyDetail(ctx context.Context, filter DetailFilter) ([]EfficiencyMovement, error)
}
