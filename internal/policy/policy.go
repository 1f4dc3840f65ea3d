// Package policy holds the pure validation rules a booking must satisfy.
// It performs no I/O: duration bounds are passed in, resolved by the caller
// from configuration and any location-specific rental setting.
package policy

import (
	"time"

	"betak-backend/internal/domain"
)

// Bounds are inclusive duration limits in whole days.
type Bounds struct {
	MinDays int
	MaxDays int
}

// DurationDays computes the whole-day span between start and end, rounding
// partial days up. 2025-06-01 to 2025-06-05 is 4 days.
func DurationDays(start, end time.Time) int {
	d := end.Sub(start)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// ValidateDuration checks that start precedes end and that the whole-day
// span falls within bounds.
func ValidateDuration(start, end time.Time, b Bounds) error {
	if !start.Before(end) {
		return domain.NewValidationError("start date must be before end date")
	}
	days := DurationDays(start, end)
	if days < b.MinDays || days > b.MaxDays {
		return &domain.DurationError{Days: days, MinDays: b.MinDays, MaxDays: b.MaxDays}
	}
	return nil
}

// ValidateRule checks a location-specific duration rule before it is
// stored. Zero fields inherit the defaults. A rule may narrow the default
// window, never widen it.
func ValidateRule(s *domain.RentalSetting, def Bounds) error {
	if s.MinDuration == 0 {
		s.MinDuration = def.MinDays
	}
	if s.MaxDuration == 0 {
		s.MaxDuration = def.MaxDays
	}
	if s.MinDuration < def.MinDays || s.MaxDuration > def.MaxDays {
		return domain.NewValidationError("duration rule must stay within %d to %d days", def.MinDays, def.MaxDays)
	}
	if s.MinDuration > s.MaxDuration {
		return domain.NewValidationError("minimum duration %d exceeds maximum %d", s.MinDuration, s.MaxDuration)
	}
	return nil
}

// BoundsFor resolves the effective duration bounds for a location. A
// setting may only narrow the default window; values outside it are
// clamped, so a stored rule can never admit a duration the defaults
// forbid. A rule left inverted by clamping is ignored entirely.
func BoundsFor(setting *domain.RentalSetting, def Bounds) Bounds {
	if setting == nil {
		return def
	}
	b := def
	if setting.MinDuration > def.MinDays {
		b.MinDays = setting.MinDuration
	}
	if setting.MaxDuration > 0 && setting.MaxDuration < def.MaxDays {
		b.MaxDays = setting.MaxDuration
	}
	if b.MinDays > b.MaxDays {
		return def
	}
	return b
}
