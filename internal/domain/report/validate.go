package report

import (
	"strings"

	apperrors "github.com/yanqian/diesel-reports/pkg/errors"
	"github.com/yanqian/diesel-reports/pkg/util"
)

// ToFilter validates the request and converts it into a query filter.
func (r Request) ToFilter() (Filter, error) {
	from := strings.TrimSpace(r.DateFrom)
	to := strings.TrimSpace(r.DateTo)
	if from == "" {
		return Filter{}, apperrors.Wrap(apperrors.CodeInvalidInput, "dateFrom is required", nil)
	}
	if to == "" {
		return Filter{}, apperrors.Wrap(apperrors.CodeInvalidInput, "dateTo is required", nil)
	}
	start, err := util.ParseDate(from)
	if err != nil {
		return Filter{}, apperrors.Wrap(apperrors.CodeInvalidInput, "dateFrom must be formatted as YYYY-MM-DD", err)
	}
	end, err := util.ParseDate(to)
	if err != nil {
		return Filter{}, apperrors.Wrap(apperrors.CodeInvalidInput, "dateTo must be formatted as YYYY-MM-DD", err)
	}
	if end.Before(start) {
		return Filter{}, apperrors.Wrap(apperrors.CodeInvalidInput, "dateTo cannot be earlier than dateFrom", nil)
	}

	filter := Filter{DateFrom: util.FormatDate(start), DateTo: util.FormatDate(end)}
	if city := strings.TrimSpace(r.CityCode); city != "" {
		filter.CityCode = &city
	}
	if r.TankID != nil {
		if *r.TankID <= 0 {
			return Filter{}, apperrors.Wrap(apperrors.CodeInvalidInput, "tankId must be positive", nil)
		}
		id := *r.TankID
		filter.TankID = &id
	}
	return filter, nil
}

// ToFilter validates the detail request.
func (r DetailRequest) ToFilter() (DetailFilter, error) {
	base, err := r.Request.ToFilter()
	if err != nil {
		return DetailFilter{}, err
	}
	if r.UnitID <= 0 {
		return DetailFilter{}, apperrors.Wrap(apperrors.CodeInvalidInput, "unitId must be positive", nil)
	}
	return DetailFilter{Filter: base, UnitID: r.UnitID}, nil
}
