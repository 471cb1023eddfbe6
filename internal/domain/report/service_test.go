package report

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/diesel-reports/pkg/errors"
)

func newServiceUnderTest(client QueryClient) *service {
	svc := NewService(Config{QueryTimeout: 5 * time.Second, TopUnits: 10}, client, newTestLogger()).(*service)
	svc.now = func() time.Time { return time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

var juneRequest = Request{DateFrom: "2024-06-01", DateTo: "2024-06-30"}

func TestDashboardBuildsAllViews(t *testing.T) {
	client := &stubClient{
		consumption: []MovementRow{
			movement("2024-06-02", "T1", "50", "10"),
			movement("2024-06-01", "T1", "100", "40"),
			movement("2024-06-01", "T2", "0", "60"),
		},
		efficiency: []EfficiencyRow{
			efficiency("U1", ndec("2.5")),
			efficiency("U2", decimal.NullDecimal{}),
			efficiency("U3", ndec("3.5")),
		},
	}
	svc := newServiceUnderTest(client)

	dash, err := svc.Dashboard(context.Background(), juneRequest)
	require.NoError(t, err)
	require.True(t, dash.HasData)
	require.Empty(t, dash.Notice)
	requireDecimal(t, "150", dash.KPIs.TotalIntake)
	requireDecimal(t, "110", dash.KPIs.TotalDispensed)
	requireDecimal(t, "40", dash.KPIs.Balance)
	requireDecimal(t, "3", dash.KPIs.AverageEfficiency)
	require.Equal(t, "2024-06-01", dash.Daily[0].Date)
	require.Equal(t, "2024-06-02", dash.Daily[1].Date)
	require.Equal(t, []string{"T2", "T1"}, tankNames(dash.Tanks))
	require.Len(t, dash.TopUnits, 2)
	require.Equal(t, "U3", dash.TopUnits[0].Unit)
	require.Equal(t, time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC), dash.GeneratedAt)

	status, err := svc.DashboardStatus(juneRequest)
	require.NoError(t, err)
	require.Equal(t, StateSuccess, status.State)
	require.NotNil(t, status.Data)
}

func TestDashboardNoDataIsSuccess(t *testing.T) {
	svc := newServiceUnderTest(&stubClient{})

	dash, err := svc.Dashboard(context.Background(), juneRequest)
	require.NoError(t, err)
	require.False(t, dash.HasData)
	require.Equal(t, noDataNotice, dash.Notice)
	requireDecimal(t, "0", dash.KPIs.AverageEfficiency)
	require.Empty(t, dash.Daily)
}

func TestDashboardFailureKeepsPreviousSnapshot(t *testing.T) {
	client := &stubClient{consumption: []MovementRow{movement("2024-06-01", "T1", "1", "1")}}
	svc := newServiceUnderTest(client)

	_, err := svc.Dashboard(context.Background(), juneRequest)
	require.NoError(t, err)

	client.efficiencyErr = errors.New("upstream timeout")
	_, err = svc.Dashboard(context.Background(), juneRequest)
	require.True(t, apperrors.IsCode(err, apperrors.CodeRemoteQuery))

	status, err := svc.DashboardStatus(juneRequest)
	require.NoError(t, err)
	require.Equal(t, StateFailed, status.State)
	require.Contains(t, status.Error, "upstream timeout")
	require.NotNil(t, status.Data)
	require.Len(t, status.Data.Daily, 1)
}

func TestDashboardRejectsConcurrentRunForSameFilters(t *testing.T) {
	client := &stubClient{block: make(chan struct{})}
	svc := newServiceUnderTest(client)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Dashboard(context.Background(), juneRequest)
		done <- err
	}()

	require.Eventually(t, func() bool {
		status, _ := svc.DashboardStatus(juneRequest)
		return status.State == StateLoading
	}, time.Second, 5*time.Millisecond)

	_, err := svc.Dashboard(context.Background(), juneRequest)
	require.True(t, apperrors.IsCode(err, apperrors.CodeReportBusy))

	close(client.block)
	require.NoError(t, <-done)
}

func TestDashboardStatusUnknownFiltersIsIdle(t *testing.T) {
	svc := newServiceUnderTest(&stubClient{})
	status, err := svc.DashboardStatus(juneRequest)
	require.NoError(t, err)
	require.Equal(t, StateIdle, status.State)
	require.Nil(t, status.Data)
}

func TestDashboardInvalidInputSkipsQueries(t *testing.T) {
	client := &stubClient{}
	svc := newServiceUnderTest(client)
	_, err := svc.Dashboard(context.Background(), Request{DateFrom: "2024-06-02", DateTo: "2024-06-01"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	require.Zero(t, client.calls)
}

func TestConsumptionReportTotals(t *testing.T) {
	client := &stubClient{consumption: []MovementRow{
		movement("2024-06-01", "T1", "10.25", "4"),
		movement("2024-06-02", "T1", "5", "6.5"),
	}}
	report, err := newServiceUnderTest(client).Consumption(context.Background(), juneRequest)
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	requireDecimal(t, "15.25", report.TotalIntake)
	requireDecimal(t, "10.5", report.TotalDispensed)

	client.consumptionErr = errors.New("boom")
	_, err = newServiceUnderTest(client).Consumption(context.Background(), juneRequest)
	require.True(t, apperrors.IsCode(err, apperrors.CodeRemoteQuery))
}

func TestEfficiencyReportEmpty(t *testing.T) {
	report, err := newServiceUnderTest(&stubClient{}).Efficiency(context.Background(), juneRequest)
	require.NoError(t, err)
	require.NotNil(t, report.Rows)
	require.Empty(t, report.Rows)
}

func TestEfficiencyDetail(t *testing.T) {
	client := &stubClient{detail: []EfficiencyMovement{
		{MovementID: 1, Date: "2024-06-01", Time: "08:00:00", Liters: dec("120.5")},
		{MovementID: 2, Date: "2024-06-03", Time: "09:30:00", Liters: dec("80")},
	}}
	req := DetailRequest{Request: juneRequest, UnitID: 42}

	detail, err := newServiceUnderTest(client).EfficiencyDetail(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, int64(42), detail.UnitID)
	require.Len(t, detail.Movements, 2)
	requireDecimal(t, "200.5", detail.TotalLiters)
	require.Equal(t, int64(42), client.lastDetailFilter.UnitID)
}

func TestProductivityAnnotatesBands(t *testing.T) {
	client := &stubClient{productivity: []ProductivityRow{
		{Status: "Registrada", Unit: "U1", LitersPerCubicMeter: ndec("5.5"), KmPerLiter: ndec("0.9")},
		{Status: "Registrada", Unit: "U2", LitersPerCubicMeter: ndec("4"), KmPerLiter: ndec("2.1")},
		{Status: "Registrada", Unit: "U3", LitersPerCubicMeter: ndec("2"), KmPerLiter: decimal.NullDecimal{}},
		{Status: StatusUnregistered, Unit: "U4", LitersPerCubicMeter: ndec("9"), KmPerLiter: ndec("0.2")},
	}}

	report, err := newServiceUnderTest(client).Productivity(context.Background(), juneRequest)
	require.NoError(t, err)
	require.Len(t, report.Rows, 4)

	require.Equal(t, Critical, report.Rows[0].CostBand)
	require.Equal(t, Critical, report.Rows[0].MechanicalBand)
	require.Equal(t, Warning, report.Rows[1].CostBand)
	require.Equal(t, Unclassified, report.Rows[1].MechanicalBand)
	require.Equal(t, Good, report.Rows[2].CostBand)
	require.Equal(t, Unclassified, report.Rows[2].MechanicalBand)

	unregistered := report.Rows[3]
	require.Equal(t, Unclassified, unregistered.CostBand)
	require.Equal(t, Unclassified, unregistered.MechanicalBand)
	require.False(t, unregistered.LitersPerCubicMeter.Valid)
	require.False(t, unregistered.KmPerLiter.Valid)
}

func TestDashboardTopUnitsNeverExceedTen(t *testing.T) {
	rows := make([]EfficiencyRow, 0, 15)
	for i := 1; i <= 15; i++ {
		rows = append(rows, efficiency(fmt.Sprintf("U%02d", i), decimal.NewNullDecimal(decimal.NewFromInt(int64(i)))))
	}
	client := &stubClient{efficiency: rows}
	svc := NewService(Config{QueryTimeout: 5 * time.Second, TopUnits: 12}, client, newTestLogger())

	dash, err := svc.Dashboard(context.Background(), juneRequest)
	require.NoError(t, err)
	require.Len(t, dash.TopUnits, MaxTopUnits)
	require.Equal(t, "U15", dash.TopUnits[0].Unit)
	require.Equal(t, "U06", dash.TopUnits[MaxTopUnits-1].Unit)
}

func TestBuildDashboardCapsTopN(t *testing.T) {
	rows := make([]EfficiencyRow, 0, 15)
	for i := 1; i <= 15; i++ {
		rows = append(rows, efficiency(fmt.Sprintf("U%02d", i), decimal.NewNullDecimal(decimal.NewFromInt(int64(i)))))
	}
	dash := BuildDashboard(FetchResult{EfficiencyRows: rows}, 50, time.Now())
	require.Len(t, dash.TopUnits, MaxTopUnits)

	smaller := BuildDashboard(FetchResult{EfficiencyRows: rows}, 3, time.Now())
	require.Len(t, smaller.TopUnits, 3)
}
