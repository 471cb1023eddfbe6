package report

import (
	"sync"

	apperrors "github.com/yanqian/diesel-reports/pkg/errors"
)

// ViewState is the lifecycle state of a report view.
type ViewState string

const (
	StateIdle    ViewState = "idle"
	StateLoading ViewState = "loading"
	StateSuccess ViewState = "success"
	StateFailed  ViewState = "failed"
)

// ViewStatus is a point-in-time copy of a view.
type ViewStatus struct {
	State ViewState  `json:"state"`
	Data  *Dashboard `json:"data,omitempty"`
	Error string     `json:"error,omitempty"`
}

// View tracks one report view. Only one pipeline run may be in flight; a failed run keeps
// the last successful dashboard.
type View struct {
	mu      sync.Mutex
	state   ViewState
	last    *Dashboard
	lastErr error
}

// NewView returns an idle view.
func NewView() *View {
	return &View{state: StateIdle}
}

// Begin moves the view to Loading, or returns a report_busy error if a run is pending.
func (v *View) Begin() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == StateLoading {
		return apperrors.Wrap(apperrors.CodeReportBusy, "a report for these filters is already running", nil)
	}
	v.state = StateLoading
	return nil
}

// Succeed stores the new dashboard.
func (v *View) Succeed(d Dashboard) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = StateSuccess
	v.last = &d
	v.lastErr = nil
}

// Fail records the error and leaves the previous dashboard in place.
func (v *View) Fail(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = StateFailed
	v.lastErr = err
}

// Status returns a snapshot of the view.
func (v *View) Status() ViewStatus {
	v.mu.Lock()
	defer v.mu.Unlock()
	status := ViewStatus{State: v.state}
	if v.last != nil {
		d := *v.last
		status.Data = &d
	}
	if v.lastErr != nil {
		status.Error = v.lastErr.Error()
	}
	return status
}
