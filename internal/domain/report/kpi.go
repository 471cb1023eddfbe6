package report

import "github.com/shopspring/decimal"

// ComputeKPIs reduces the raw rows into the dashboard summary. AverageEfficiency is zero,
// not undefined, when no row carries a positive km/L.
func ComputeKPIs(consumption []MovementRow, efficiency []EfficiencyRow) KpiSummary {
	intake, dispensed := sumMovements(consumption)

	sum := decimal.Zero
	count := int64(0)
	for _, row := range efficiency {
		if !hasPositive(row.KmPerLiter) {
			continue
		}
		sum = sum.Add(row.KmPerLiter.Decimal)
		count++
	}
	average := decimal.Zero
	if count > 0 {
		average = sum.Div(decimal.NewFromInt(count))
	}

	return KpiSummary{
		TotalIntake:       intake,
		TotalDispensed:    dispensed,
		Balance:           intake.Sub(dispensed),
		AverageEfficiency: average,
	}
}

func sumMovements(rows []MovementRow) (decimal.Decimal, decimal.Decimal) {
	intake, dispensed := decimal.Zero, decimal.Zero
	for _, row := range rows {
		intake = intake.Add(row.TotalIntake)
		dispensed = dispensed.Add(row.TotalDispensed)
	}
	return intake, dispensed
}
