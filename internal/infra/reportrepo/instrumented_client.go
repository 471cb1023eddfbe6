package reportrepo

import (
	"context"
	"time"

	"github.com/yanqian/diesel-reports/internal/domain/report"
	"github.com/yanqian/diesel-reports/pkg/metrics"
)

// InstrumentedClient records call counts, latency and row counts for every remote query.
type InstrumentedClient struct {
	next report.QueryClient
}

// NewInstrumentedClient wraps next.
func NewInstrumentedClient(next report.QueryClient) *InstrumentedClient {
	return &InstrumentedClient{next: next}
}

func (c *InstrumentedClient) QueryConsumption(ctx context.Context, filter report.Filter) ([]report.MovementRow, error) {
	start := time.Now()
	rows, err := c.next.QueryConsumption(ctx, filter)
	observe(report.FunctionConsumption, start, len(rows), err)
	return rows, err
}

func (c *InstrumentedClient) QueryEfficiency(ctx context.Context, filter report.Filter) ([]report.EfficiencyRow, error) {
	start := time.Now()
	rows, err := c.next.QueryEfficiency(ctx, filter)
	observe(report.FunctionEfficiency, start, len(rows), err)
	return rows, err
}

func (c *InstrumentedClient) QueryProductivity(ctx context.Context, filter report.Filter) ([]report.ProductivityRow, error) {
	start := time.Now()
	rows, err := c.next.QueryProductivity(ctx, filter)
	observe(report.FunctionProductivity, start, len(rows), err)
	return rows, err
}

func (c *InstrumentedClient) QueryEfficiencyDetail(ctx context.Context, filter report.DetailFilter) ([]report.EfficiencyMovement, error) {
	start := time.Now()
	rows, err := c.next.QueryEfficiencyDetail(ctx, filter)
	observe(report.FunctionEfficiencyDetail, start, len(rows), err)
	return rows, err
}

func observe(function string, start time.Time, rows int, err error) {
	metrics.RemoteQueryLatency.WithLabelValues(function).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RemoteQueriesTotal.WithLabelValues(function, "error").Inc()
		return
	}
	metrics.RemoteQueriesTotal.WithLabelValues(function, "ok").Inc()
	metrics.RemoteRowsReturned.WithLabelValues(function).Add(float64(rows))
}

var _ report.QueryClient = (*InstrumentedClient)(nil)
