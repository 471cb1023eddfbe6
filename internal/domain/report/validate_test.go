package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/diesel-reports/pkg/errors"
)

func TestRequestToFilter(t *testing.T) {
	tank := int64(7)
	filter, err := Request{DateFrom: "2024-06-01", DateTo: " 2024-06-30 ", CityCode: " MTY ", TankID: &tank}.ToFilter()
	require.NoError(t, err)
	require.Equal(t, "2024-06-01", filter.DateFrom)
	require.Equal(t, "2024-06-30", filter.DateTo)
	require.Equal(t, "MTY", *filter.CityCode)
	require.Equal(t, int64(7), *filter.TankID)
	require.Equal(t, "2024-06-01|2024-06-30|MTY|7", filter.Key())

	filter, err = Request{DateFrom: "2024-06-01", DateTo: "2024-06-01"}.ToFilter()
	require.NoError(t, err)
	require.Nil(t, filter.CityCode)
	require.Nil(t, filter.TankID)
	require.Equal(t, "2024-06-01|2024-06-01|*|*", filter.Key())
}

func TestRequestToFilterRejectsInvalidInput(t *testing.T) {
	zero := int64(0)
	cases := map[string]Request{
		"missing from":  {DateTo: "2024-06-01"},
		"missing to":    {DateFrom: "2024-06-01"},
		"bad format":    {DateFrom: "01/06/2024", DateTo: "2024-06-02"},
		"reverse range": {DateFrom: "2024-06-02", DateTo: "2024-06-01"},
		"zero tank":     {DateFrom: "2024-06-01", DateTo: "2024-06-02", TankID: &zero},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := req.ToFilter()
			require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
		})
	}

	_, err := DetailRequest{Request: Request{DateFrom: "2024-06-01", DateTo: "2024-06-02"}}.ToFilter()
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}
