package reportrepo

import (
	"context"
	"sync"

	"github.com/yanqian/diesel-reports/internal/domain/report"
)

// Scope places a pre-aggregated row under a city and tank so the filters can select it.
type Scope struct {
	CityCode string
	TankID   int64
}

func (s Scope) matches(filter report.Filter) bool {
	if filter.CityCode != nil && *filter.CityCode != s.CityCode {
		return false
	}
	if filter.TankID != nil && *filter.TankID != s.TankID {
		return false
	}
	return true
}

type scopedEfficiency struct {
	scope Scope
	row   report.EfficiencyRow
}

type scopedProductivity struct {
	scope Scope
	row   report.ProductivityRow
}

type scopedMovement struct {
	scope  Scope
	unitID int64
	row    report.EfficiencyMovement
}

// MemoryClient is an in-memory report.QueryClient used for tests/dev.
// Consumption rows and movements are filtered by date; efficiency and productivity
// rows are already aggregated and only filtered by scope.
type MemoryClient struct {
	mu           sync.RWMutex
	consumption  []report.MovementRow
	efficiency   []scopedEfficiency
	productivity []scopedProductivity
	movements    []scopedMovement
}

// NewMemoryClient constructs an empty client.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{}
}

// AddConsumption seeds consumption rows.
func (c *MemoryClient) AddConsumption(rows ...report.MovementRow) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.consumption = append(c.consumption, rows...)
}

// AddEfficiency seeds efficiency rows under a scope.
func (c *MemoryClient) AddEfficiency(scope Scope, rows ...report.EfficiencyRow) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, row := range rows {
		c.efficiency = append(c.efficiency, scopedEfficiency{scope: scope, row: row})
	}
}

// AddProductivity seeds productivity rows under a scope.
func (c *MemoryClient) AddProductivity(scope Scope, rows ...report.ProductivityRow) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, row := range rows {
		c.productivity = append(c.productivity, scopedProductivity{scope: scope, row: row})
	}
}

// AddMovements seeds the dispensing events of one unit.
func (c *MemoryClient) AddMovements(scope Scope, unitID int64, rows ...report.EfficiencyMovement) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, row := range rows {
		c.movements = append(c.movements, scopedMovement{scope: scope, unitID: unitID, row: row})
	}
}

// QueryConsumption implements report.QueryClient.
func (c *MemoryClient) QueryConsumption(ctx context.Context, filter report.Filter) ([]report.MovementRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]report.MovementRow, 0)
	for _, row := range c.consumption {
		scope := Scope{CityCode: row.CityCode, TankID: row.TankID}
		if inWindow(row.Date, filter) && scope.matches(filter) {
			out = append(out, row)
		}
	}
	return out, nil
}

// QueryEfficiency implements report.QueryClient.
func (c *MemoryClient) QueryEfficiency(ctx context.Context, filter report.Filter) ([]report.EfficiencyRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]report.EfficiencyRow, 0)
	for _, rec := range c.efficiency {
		if rec.scope.matches(filter) {
			out = append(out, rec.row)
		}
	}
	return out, nil
}

// QueryProductivity implements report.QueryClient.
func (c *MemoryClient) QueryProductivity(ctx context.Context, filter report.Filter) ([]report.ProductivityRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]report.ProductivityRow, 0)
	for _, rec := range c.productivity {
		if rec.scope.matches(filter) {
			out = append(out, rec.row)
		}
	}
	return out, nil
}

// QueryEfficiencyDetail implements report.QueryClient.
func (c *MemoryClient) QueryEfficiencyDetail(ctx context.Context, filter report.DetailFilter) ([]report.EfficiencyMovement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]report.EfficiencyMovement, 0)
	for _, rec := range c.movements {
		if rec.unitID == filter.UnitID && inWindow(rec.row.Date, filter.Filter) && rec.scope.matches(filter.Filter) {
			out = append(out, rec.row)
		}
	}
	return out, nil
}

// inWindow compares YYYY-MM-DD strings, which order the same as the dates they name.
func inWindow(date string, filter report.Filter) bool {
	return date >= filter.DateFrom && date <= filter.DateTo
}

var _ report.QueryClient = (*MemoryClient)(nil)
