package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		value  decimal.NullDecimal
		metric Metric
		want   SeverityBand
	}{
		{"cost critical", ndec("5.5"), CostRatio, Critical},
		{"cost at critical limit", ndec("5"), CostRatio, Warning},
		{"cost warning", ndec("4.0"), CostRatio, Warning},
		{"cost at warning limit", ndec("3.5"), CostRatio, Good},
		{"cost good", ndec("2.0"), CostRatio, Good},
		{"cost zero", ndec("0"), CostRatio, Unclassified},
		{"cost absent", decimal.NullDecimal{}, CostRatio, Unclassified},
		{"mech critical", ndec("0.9"), MechanicalEfficiency, Critical},
		{"mech at limit", ndec("1.0"), MechanicalEfficiency, Unclassified},
		{"mech high", ndec("7.2"), MechanicalEfficiency, Unclassified},
		{"mech zero", ndec("0"), MechanicalEfficiency, Unclassified},
		{"mech absent", decimal.NullDecimal{}, MechanicalEfficiency, Unclassified},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.value, tc.metric))
		})
	}
}

func TestThresholdsOverride(t *testing.T) {
	th := DefaultThresholds()
	th.CostRatioCritical = dec("3")
	th.CostRatioWarning = dec("2")
	require.Equal(t, Critical, th.Classify(ndec("4.0"), CostRatio))
	require.Equal(t, Warning, th.Classify(ndec("2.5"), CostRatio))
	// the package level classifier keeps the fixed limits
	require.Equal(t, Warning, Classify(ndec("4.0"), CostRatio))
}
