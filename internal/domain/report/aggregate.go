package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MaxTopUnits caps the efficiency ranking.
const MaxTopUnits = 10

// ByDate groups consumption rows per date, ascending by date string.
func ByDate(rows []MovementRow) []DailySeries {
	acc := newAccumulator(len(rows))
	for _, row := range rows {
		acc.add(row.Date, row.TotalIntake, row.TotalDispensed)
	}
	out := make([]DailySeries, 0, acc.len())
	acc.each(func(date string, t totals) {
		out = append(out, DailySeries{Date: date, IntakeSum: t.intake, DispensedSum: t.dispensed})
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// ByTank groups consumption rows per tank name, largest dispensed total first.
func ByTank(rows []MovementRow) []TankSeries {
	acc := newAccumulator(len(rows))
	for _, row := range rows {
		acc.add(row.Tank, row.TotalIntake, row.TotalDispensed)
	}
	out := make([]TankSeries, 0, acc.len())
	acc.each(func(tank string, t totals) {
		out = append(out, TankSeries{Tank: tank, IntakeSum: t.intake, DispensedSum: t.dispensed})
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DispensedSum.GreaterThan(out[j].DispensedSum)
	})
	return out
}

// TopEfficiencyUnits ranks units with a positive km/L, best first, keeping MaxTopUnits.
func TopEfficiencyUnits(rows []EfficiencyRow) []TopUnit {
	return topUnits(rows, MaxTopUnits)
}

func topUnits(rows []EfficiencyRow, limit int) []TopUnit {
	out := make([]TopUnit, 0, len(rows))
	for _, row := range rows {
		if !hasPositive(row.KmPerLiter) {
			continue
		}
		out = append(out, TopUnit{Unit: row.Unit, KmPerLiter: row.KmPerLiter.Decimal})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].KmPerLiter.GreaterThan(out[j].KmPerLiter)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func hasPositive(v decimal.NullDecimal) bool {
	return v.Valid && v.Decimal.IsPositive()
}
