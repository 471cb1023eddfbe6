package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	apperrors "github.com/yanqian/diesel-reports/pkg/errors"
	"github.com/yanqian/diesel-reports/pkg/metrics"
	"github.com/yanqian/diesel-reports/pkg/util"
)

const (
	defaultViewTTL = 30 * time.Minute
	noDataNotice   = "no data found for the selected filters"
)

// Service exposes the dashboard pipeline and the row-level reports.
type Service interface {
	Dashboard(ctx context.Context, req Request) (Dashboard, error)
	DashboardStatus(req Request) (ViewStatus, error)
	Consumption(ctx context.Context, req Request) (ConsumptionReport, error)
	Efficiency(ctx context.Context, req Request) (EfficiencyReport, error)
	EfficiencyDetail(ctx context.Context, req DetailRequest) (EfficiencyDetail, error)
	Productivity(ctx context.Context, req Request) (ProductivityReport, error)
}

type service struct {
	cfg     Config
	client  QueryClient
	fetcher *Fetcher
	views   *cache.Cache
	logger  *slog.Logger
	now     func() time.Time
}

// NewService wires up the report domain.
func NewService(cfg Config, client QueryClient, logger *slog.Logger) Service {
	if cfg.TopUnits <= 0 || cfg.TopUnits > MaxTopUnits {
		cfg.TopUnits = MaxTopUnits
	}
	ttl := cfg.ViewTTL
	if ttl <= 0 {
		ttl = defaultViewTTL
	}
	return &service{
		cfg:     cfg,
		client:  client,
		fetcher: NewFetcher(client, cfg.QueryTimeout, logger),
		views:   cache.New(ttl, 2*ttl),
		logger:  logger.With("component", "report.service"),
		now:     util.NowUTC,
	}
}

func (s *service) Dashboard(ctx context.Context, req Request) (Dashboard, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return Dashboard{}, err
	}

	view := s.view(filter.Key())
	if err := view.Begin(); err != nil {
		metrics.PipelineRunsTotal.WithLabelValues("busy").Inc()
		return Dashboard{}, err
	}

	result, err := s.fetcher.Fetch(ctx, filter)
	if err != nil {
		view.Fail(err)
		metrics.PipelineRunsTotal.WithLabelValues("failed").Inc()
		s.logger.Error("dashboard pipeline failed", "filter", filter.Key(), "error", err)
		return Dashboard{}, err
	}

	dash := BuildDashboard(result, s.cfg.TopUnits, s.now())
	view.Succeed(dash)
	outcome := "success"
	if !dash.HasData {
		outcome = "empty"
	}
	metrics.PipelineRunsTotal.WithLabelValues(outcome).Inc()
	s.logger.Info("dashboard pipeline completed", "filter", filter.Key(), "days", len(dash.Daily), "tanks", len(dash.Tanks), "top_units", len(dash.TopUnits))
	return dash, nil
}

func (s *service) DashboardStatus(req Request) (ViewStatus, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return ViewStatus{}, err
	}
	if v, ok := s.views.Get(filter.Key()); ok {
		return v.(*View).Status(), nil
	}
	return ViewStatus{State: StateIdle}, nil
}

func (s *service) Consumption(ctx context.Context, req Request) (ConsumptionReport, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return ConsumptionReport{}, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.client.QueryConsumption(ctx, filter)
	if err != nil {
		return ConsumptionReport{}, apperrors.RemoteQuery(FunctionConsumption, err)
	}
	if rows == nil {
		rows = []MovementRow{}
	}
	intake, dispensed := sumMovements(rows)
	return ConsumptionReport{Rows: rows, TotalIntake: intake, TotalDispensed: dispensed}, nil
}

func (s *service) Efficiency(ctx context.Context, req Request) (EfficiencyReport, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return EfficiencyReport{}, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.client.QueryEfficiency(ctx, filter)
	if err != nil {
		return EfficiencyReport{}, apperrors.RemoteQuery(FunctionEfficiency, err)
	}
	if rows == nil {
		rows = []EfficiencyRow{}
	}
	return EfficiencyReport{Rows: rows}, nil
}

func (s *service) EfficiencyDetail(ctx context.Context, req DetailRequest) (EfficiencyDetail, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return EfficiencyDetail{}, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	movements, err := s.client.QueryEfficiencyDetail(ctx, filter)
	if err != nil {
		return EfficiencyDetail{}, apperrors.RemoteQuery(FunctionEfficiencyDetail, err)
	}
	if movements == nil {
		movements = []EfficiencyMovement{}
	}
	total := decimal.Zero
	for _, m := range movements {
		total = total.Add(m.Liters)
	}
	return EfficiencyDetail{UnitID: filter.UnitID, Movements: movements, TotalLiters: total}, nil
}

func (s *service) Productivity(ctx context.Context, req Request) (ProductivityReport, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return ProductivityReport{}, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.client.QueryProductivity(ctx, filter)
	if err != nil {
		return ProductivityReport{}, apperrors.RemoteQuery(FunctionProductivity, err)
	}
	return ProductivityReport{Rows: AnnotateProductivity(rows)}, nil
}

// BuildDashboard derives every dashboard view from the fetched rows. topN is capped at
// MaxTopUnits.
func BuildDashboard(result FetchResult, topN int, now time.Time) Dashboard {
	if topN <= 0 || topN > MaxTopUnits {
		topN = MaxTopUnits
	}
	dash := Dashboard{
		KPIs:        ComputeKPIs(result.ConsumptionRows, result.EfficiencyRows),
		Daily:       ByDate(result.ConsumptionRows),
		Tanks:       ByTank(result.ConsumptionRows),
		TopUnits:    topUnits(result.EfficiencyRows, topN),
		HasData:     len(result.ConsumptionRows) > 0 || len(result.EfficiencyRows) > 0,
		GeneratedAt: now.UTC(),
	}
	if !dash.HasData {
		dash.Notice = noDataNotice
	}
	return dash
}

// AnnotateProductivity attaches severity bands to each row. Unregistered units have
// their ratios blanked and are left unclassified.
func AnnotateProductivity(rows []ProductivityRow) []ProductivityLine {
	out := make([]ProductivityLine, 0, len(rows))
	for _, row := range rows {
		if row.Unregistered() {
			row.LitersPerCubicMeter = decimal.NullDecimal{}
			row.KmPerLiter = decimal.NullDecimal{}
		}
		out = append(out, ProductivityLine{
			ProductivityRow: row,
			CostBand:        Classify(row.LitersPerCubicMeter, CostRatio),
			MechanicalBand:  Classify(row.KmPerLiter, MechanicalEfficiency),
		})
	}
	return out
}

func (s *service) view(key string) *View {
	if v, ok := s.views.Get(key); ok {
		return v.(*View)
	}
	v := NewView()
	if err := s.views.Add(key, v, cache.DefaultExpiration); err != nil {
		// lost the race to another request for the same filters
		if existing, ok := s.views.Get(key); ok {
			return existing.(*View)
		}
	}
	return v
}

func (s *service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.QueryTimeout)
}
