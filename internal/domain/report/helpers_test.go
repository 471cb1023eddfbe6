package report

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func ndec(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(v))
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s got %s", want, got.String())
}

func movement(date, tank, intake, dispensed string) MovementRow {
	return MovementRow{Date: date, CityCode: "MTY", Tank: tank, TankID: 1, TotalIntake: dec(intake), TotalDispensed: dec(dispensed)}
}

func efficiency(unit string, kmPerLiter decimal.NullDecimal) EfficiencyRow {
	return EfficiencyRow{Tank: "T1", Unit: unit, UnitID: 1, KmPerLiter: kmPerLiter}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubClient struct {
	mu sync.Mutex

	consumption     []MovementRow
	efficiency      []EfficiencyRow
	productivity    []ProductivityRow
	detail          []EfficiencyMovement
	consumptionErr  error
	efficiencyErr   error
	productivityErr error
	detailErr       error

	// block, when set, holds QueryConsumption until it is closed.
	block chan struct{}

	lastFilter       Filter
	lastDetailFilter DetailFilter
	calls            int
}

func (s *stubClient) record(filter Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastFilter = filter
	s.calls++
}

func (s *stubClient) QueryConsumption(ctx context.Context, filter Filter) ([]MovementRow, error) {
	s.record(filter)
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.consumption, s.consumptionErr
}

func (s *stubClient) QueryEfficiency(_ context.Context, filter Filter) ([]EfficiencyRow, error) {
	s.record(filter)
	return s.efficiency, s.efficiencyErr
}

func (s *stubClient) QueryProductivity(_ context.Context, filter Filter) ([]ProductivityRow, error) {
	s.record(filter)
	return s.productivity, s.productivityErr
}

func (s *stubClient) QueryEfficiencyDetail(_ context.Context, filter DetailFilter) ([]EfficiencyMovement, error) {
	s.mu.Lock()
	s.lastDetailFilter = filter
	s.mu.Unlock()
	return s.detail, s.detailErr
}
