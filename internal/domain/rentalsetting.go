package domain

// RentalSetting is a location-specific override of the rental duration
// bounds, keyed by country and optionally narrowed to a city. Absent a
// matching setting, the engine falls back to the configured defaults.
type RentalSetting struct {
	ID          int32  `json:"id"`
	Country     string `json:"country"`
	City        string `json:"city,omitempty"`
	MinDuration int    `json:"min_duration"`
	MaxDuration int    `json:"max_duration"`
}
