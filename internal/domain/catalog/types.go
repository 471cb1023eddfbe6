package catalog

import "time"

// Config holds runtime knobs for the catalog service.
type Config struct {
	CacheTTL time.Duration
}

// City is a location operating diesel tanks.
type City struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Tank is a fuel storage tank.
type Tank struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	CityCode string `json:"cityCode"`
}
