package reportrepo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/diesel-reports/internal/domain/report"
)

func TestFilterArgs(t *testing.T) {
	city := "MTY"
	tank := int64(3)
	cases := []struct {
		name     string
		filter   report.Filter
		wantCity *string
		wantTank *int64
	}{
		{"all cities and tanks", report.Filter{DateFrom: "2024-06-01", DateTo: "2024-06-30"}, nil, nil},
		{"city only", report.Filter{DateFrom: "2024-06-01", DateTo: "2024-06-30", CityCode: &city}, &city, nil},
		{"tank only", report.Filter{DateFrom: "2024-06-01", DateTo: "2024-06-30", TankID: &tank}, nil, &tank},
		{"city and tank", report.Filter{DateFrom: "2024-06-01", DateTo: "2024-06-30", CityCode: &city, TankID: &tank}, &city, &tank},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := filterArgs(tc.filter)
			require.Len(t, args, 4)
			require.Equal(t, "2024-06-01", args[0])
			require.Equal(t, "2024-06-30", args[1])

			gotCity, ok := args[2].(*string)
			require.True(t, ok)
			gotTank, ok := args[3].(*int64)
			require.True(t, ok)
			if tc.wantCity == nil {
				require.Nil(t, gotCity)
			} else {
				require.Equal(t, *tc.wantCity, *gotCity)
			}
			if tc.wantTank == nil {
				require.Nil(t, gotTank)
			} else {
				require.Equal(t, *tc.wantTank, *gotTank)
			}
		})
	}
}
