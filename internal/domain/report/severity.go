package report

import "github.com/shopspring/decimal"

// Metric selects the threshold table used by the classifier.
type Metric int

const (
	// CostRatio is liters consumed per cubic meter delivered.
	CostRatio Metric = iota
	// MechanicalEfficiency is kilometers per liter.
	MechanicalEfficiency
)

// SeverityBand is the traffic-light classification of a metric value.
type SeverityBand string

const (
	Unclassified SeverityBand = "unclassified"
	Good         SeverityBand = "good"
	Warning      SeverityBand = "warning"
	Critical     SeverityBand = "critical"
)

// Fixed classification thresholds.
const (
	CostRatioCritical      = 5.0
	CostRatioWarning       = 3.5
	MechEfficiencyCritical = 1.0
)

// Thresholds carries the band limits so they can be supplied from outside later on.
type Thresholds struct {
	CostRatioCritical      decimal.Decimal
	CostRatioWarning       decimal.Decimal
	MechEfficiencyCritical decimal.Decimal
}

// DefaultThresholds returns the fixed limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CostRatioCritical:      decimal.NewFromFloat(CostRatioCritical),
		CostRatioWarning:       decimal.NewFromFloat(CostRatioWarning),
		MechEfficiencyCritical: decimal.NewFromFloat(MechEfficiencyCritical),
	}
}

var defaultThresholds = DefaultThresholds()

// Classify maps a value to its band using the default thresholds.
func Classify(value decimal.NullDecimal, metric Metric) SeverityBand {
	return defaultThresholds.Classify(value, metric)
}

// Classify maps a value to its band. Absent or zero values are never classified.
// Mechanical efficiency only flags the critical case.
func (t Thresholds) Classify(value decimal.NullDecimal, metric Metric) SeverityBand {
	if !value.Valid || value.Decimal.IsZero() {
		return Unclassified
	}
	v := value.Decimal
	switch metric {
	case CostRatio:
		switch {
		case v.GreaterThan(t.CostRatioCritical):
			return Critical
		case v.GreaterThan(t.CostRatioWarning):
			return Warning
		default:
			return Good
		}
	case MechanicalEfficiency:
		if v.LessThan(t.MechEfficiencyCritical) {
			return Critical
		}
		return Unclassified
	default:
		return Unclassified
	}
}
