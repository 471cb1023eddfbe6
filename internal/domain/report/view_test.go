package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/diesel-reports/pkg/errors"
)

func TestViewLifecycle(t *testing.T) {
	v := NewView()
	require.Equal(t, StateIdle, v.Status().State)

	require.NoError(t, v.Begin())
	err := v.Begin()
	require.True(t, apperrors.IsCode(err, apperrors.CodeReportBusy))

	first := Dashboard{HasData: true, Daily: []DailySeries{{Date: "2024-06-01"}}}
	v.Succeed(first)
	status := v.Status()
	require.Equal(t, StateSuccess, status.State)
	require.Equal(t, "2024-06-01", status.Data.Daily[0].Date)

	require.NoError(t, v.Begin())
	v.Fail(errors.New("backend unavailable"))
	status = v.Status()
	require.Equal(t, StateFailed, status.State)
	require.Equal(t, "backend unavailable", status.Error)
	require.NotNil(t, status.Data, "previous dashboard is kept after a failure")
	require.Equal(t, "2024-06-01", status.Data.Daily[0].Date)

	// busy flag is released after the failure
	require.NoError(t, v.Begin())
}
