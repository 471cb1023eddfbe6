package report

import "time"

// Config holds runtime knobs for the report service.
type Config struct {
	QueryTimeout time.Duration
	TopUnits     int
	ViewTTL      time.Duration
}
