package report

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/yanqian/diesel-reports/pkg/errors"
)

// Fetcher runs the consumption and efficiency queries side by side.
type Fetcher struct {
	client  QueryClient
	timeout time.Duration
	logger  *slog.Logger
}

// NewFetcher builds a Fetcher. A non-positive timeout leaves the caller's deadline alone.
func NewFetcher(client QueryClient, timeout time.Duration, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client:  client,
		timeout: timeout,
		logger:  logger.With("component", "report.fetcher"),
	}
}

// Fetch waits for both queries and fails as a whole if either one fails; rows from the
// query that succeeded are dropped in that case.
func (f *Fetcher) Fetch(ctx context.Context, filter Filter) (FetchResult, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	var (
		consumption []MovementRow
		efficiency  []EfficiencyRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := f.client.QueryConsumption(gctx, filter)
		if err != nil {
			return apperrors.RemoteQuery(FunctionConsumption, err)
		}
		consumption = rows
		return nil
	})
	g.Go(func() error {
		rows, err := f.client.QueryEfficiency(gctx, filter)
		if err != nil {
			return apperrors.RemoteQuery(FunctionEfficiency, err)
		}
		efficiency = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		f.logger.Warn("dashboard fetch failed", "filter", filter.Key(), "error", err)
		return FetchResult{}, err
	}

	if consumption == nil {
		consumption = []MovementRow{}
	}
	if efficiency == nil {
		efficiency = []EfficiencyRow{}
	}
	f.logger.Debug("dashboard fetch completed", "filter", filter.Key(), "consumption_rows", len(consumption), "efficiency_rows", len(efficiency))
	return FetchResult{ConsumptionRows: consumption, EfficiencyRows: efficiency}, nil
}
