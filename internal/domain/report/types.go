package report

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Filter narrows every report query to a date window and optionally one city or tank.
// A nil CityCode or TankID means "all".
type Filter struct {
	DateFrom string
	DateTo   string
	CityCode *string
	TankID   *int64
}

// Key identifies the report view a filter belongs to.
func (f Filter) Key() string {
	city := "*"
	if f.CityCode != nil {
		city = *f.CityCode
	}
	tank := "*"
	if f.TankID != nil {
		tank = strconv.FormatInt(*f.TankID, 10)
	}
	return f.DateFrom + "|" + f.DateTo + "|" + city + "|" + tank
}

// DetailFilter selects the movements behind one efficiency row.
type DetailFilter struct {
	Filter
	UnitID int64
}

// MovementRow is one (date, tank) row of the consumption query.
type MovementRow struct {
	Date           string          `json:"date"`
	CityCode       string          `json:"cityCode"`
	Tank           string          `json:"tank"`
	TankID         int64           `json:"tankId"`
	TotalIntake    decimal.Decimal `json:"totalIntake"`
	TotalDispensed decimal.Decimal `json:"totalDispensed"`
}

// EfficiencyRow is one unit row of the efficiency query. KmPerLiter is invalid when the
// unit has no usable distance data in the window.
type EfficiencyRow struct {
	Tank          string              `json:"tank"`
	Unit          string              `json:"unit"`
	UnitID        int64               `json:"unitId"`
	LoadTotal     decimal.Decimal     `json:"loadTotal"`
	KmTraveled    decimal.Decimal     `json:"kmTraveled"`
	HoursTraveled decimal.Decimal     `json:"hoursTraveled"`
	KmPerLiter    decimal.NullDecimal `json:"kmPerLiter"`
	HoursPerLiter decimal.NullDecimal `json:"hoursPerLiter"`
}

// EfficiencyMovement is a single dispensing event behind an efficiency row.
type EfficiencyMovement struct {
	MovementID   int64               `json:"movementId"`
	Date         string              `json:"date"`
	Time         string              `json:"time"`
	Liters       decimal.Decimal     `json:"liters"`
	LiterCounter decimal.NullDecimal `json:"literCounter"`
	HourMeter    decimal.NullDecimal `json:"hourMeter"`
	Odometer     decimal.NullDecimal `json:"odometer"`
}

// StatusUnregistered marks productivity rows for units without captured readings.
const StatusUnregistered = "No Registrada"

// ProductivityRow is one unit row of the productivity query.
type ProductivityRow struct {
	Status              string              `json:"status"`
	Unit                string              `json:"unit"`
	Tank                string              `json:"tank"`
	LitersConsumed      decimal.Decimal     `json:"litersConsumed"`
	KmTotal             decimal.Decimal     `json:"kmTotal"`
	HoursTotal          decimal.Decimal     `json:"hoursTotal"`
	CubicMeters         decimal.Decimal     `json:"cubicMeters"`
	Trips               int64               `json:"trips"`
	LitersPerCubicMeter decimal.NullDecimal `json:"litersPerCubicMeter"`
	CubicMetersPerTrip  decimal.NullDecimal `json:"cubicMetersPerTrip"`
	KmPerLiter          decimal.NullDecimal `json:"kmPerLiter"`
}

// Unregistered reports whether the unit has no captured readings in the window.
func (r ProductivityRow) Unregistered() bool {
	return r.Status == StatusUnregistered
}

// DailySeries is the per-day intake/dispensed total.
type DailySeries struct {
	Date         string          `json:"date"`
	IntakeSum    decimal.Decimal `json:"intakeSum"`
	DispensedSum decimal.Decimal `json:"dispensedSum"`
}

// TankSeries is the per-tank intake/dispensed total.
type TankSeries struct {
	Tank         string          `json:"tank"`
	IntakeSum    decimal.Decimal `json:"intakeSum"`
	DispensedSum decimal.Decimal `json:"dispensedSum"`
}

// TopUnit is a unit ranked by km per liter.
type TopUnit struct {
	Unit       string          `json:"unit"`
	KmPerLiter decimal.Decimal `json:"kmPerLiter"`
}

// KpiSummary holds the four dashboard scalars.
type KpiSummary struct {
	TotalIntake       decimal.Decimal `json:"totalIntake"`
	TotalDispensed    decimal.Decimal `json:"totalDispensed"`
	Balance           decimal.Decimal `json:"balance"`
	AverageEfficiency decimal.Decimal `json:"averageEfficiency"`
}

// FetchResult is the raw output of both dashboard queries.
type FetchResult struct {
	ConsumptionRows []MovementRow
	EfficiencyRows  []EfficiencyRow
}

// Dashboard is the derived view served to clients.
type Dashboard struct {
	KPIs        KpiSummary    `json:"kpis"`
	Daily       []DailySeries `json:"daily"`
	Tanks       []TankSeries  `json:"tanks"`
	TopUnits    []TopUnit     `json:"topUnits"`
	HasData     bool          `json:"hasData"`
	Notice      string        `json:"notice,omitempty"`
	GeneratedAt time.Time     `json:"generatedAt"`
}

// Request is the filter payload accepted by every report endpoint.
type Request struct {
	DateFrom string `json:"dateFrom" form:"dateFrom"`
	DateTo   string `json:"dateTo" form:"dateTo"`
	CityCode string `json:"cityCode,omitempty" form:"cityCode"`
	TankID   *int64 `json:"tankId,omitempty" form:"tankId"`
}

// DetailRequest adds the unit whose movements are requested.
type DetailRequest struct {
	Request
	UnitID int64 `json:"unitId"`
}

// ConsumptionReport lists consumption rows with their totals.
type ConsumptionReport struct {
	Rows           []MovementRow   `json:"rows"`
	TotalIntake    decimal.Decimal `json:"totalIntake"`
	TotalDispensed decimal.Decimal `json:"totalDispensed"`
}

// EfficiencyReport lists efficiency rows.
type EfficiencyReport struct {
	Rows []EfficiencyRow `json:"rows"`
}

// EfficiencyDetail lists the movements of one unit.
type EfficiencyDetail struct {
	UnitID      int64                `json:"unitId"`
	Movements   []EfficiencyMovement `json:"movements"`
	TotalLiters decimal.Decimal      `json:"totalLiters"`
}

// ProductivityLine is a productivity row annotated with its severity bands.
type ProductivityLine struct {
	ProductivityRow
	CostBand       SeverityBand `json:"costBand"`
	MechanicalBand SeverityBand `json:"mechanicalBand"`
}

// ProductivityReport lists annotated productivity rows.
type ProductivityReport struct {
	Rows []ProductivityLine `json:"rows"`
}
