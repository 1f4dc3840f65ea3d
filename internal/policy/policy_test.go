package policy_test

import (
	"testing"
	"time"

	"betak-backend/internal/domain"
	"betak-backend/internal/policy"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDurationDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"four whole days", "2025-06-01", "2025-06-05", 4},
		{"one day", "2025-06-01", "2025-06-02", 1},
		{"seven days", "2025-06-01", "2025-06-08", 7},
		{"across month boundary", "2025-06-29", "2025-07-03", 4},
		{"across year boundary", "2025-12-30", "2026-01-03", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.DurationDays(date(tt.start), date(tt.end)))
		})
	}
}

func TestDurationDays_PartialDaysRoundUp(t *testing.T) {
	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, policy.DurationDays(start, end))
}

func TestValidateDuration(t *testing.T) {
	bounds := policy.Bounds{MinDays: 3, MaxDays: 7}

	t.Run("within bounds", func(t *testing.T) {
		assert.NoError(t, policy.ValidateDuration(date("2025-06-01"), date("2025-06-05"), bounds))
	})

	t.Run("at minimum", func(t *testing.T) {
		assert.NoError(t, policy.ValidateDuration(date("2025-06-01"), date("2025-06-04"), bounds))
	})

	t.Run("at maximum", func(t *testing.T) {
		assert.NoError(t, policy.ValidateDuration(date("2025-06-01"), date("2025-06-08"), bounds))
	})

	t.Run("too short", func(t *testing.T) {
		err := policy.ValidateDuration(date("2025-06-01"), date("2025-06-03"), bounds)
		var durErr *domain.DurationError
		assert.ErrorAs(t, err, &durErr)
		assert.Equal(t, 2, durErr.Days)
		assert.Equal(t, 3, durErr.MinDays)
		assert.Equal(t, 7, durErr.MaxDays)
	})

	t.Run("too long", func(t *testing.T) {
		err := policy.ValidateDuration(date("2025-06-01"), date("2025-06-09"), bounds)
		var durErr *domain.DurationError
		assert.ErrorAs(t, err, &durErr)
		assert.Equal(t, 8, durErr.Days)
	})

	t.Run("start equals end", func(t *testing.T) {
		err := policy.ValidateDuration(date("2025-06-01"), date("2025-06-01"), bounds)
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("start after end", func(t *testing.T) {
		err := policy.ValidateDuration(date("2025-06-05"), date("2025-06-01"), bounds)
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})
}

func TestBoundsFor(t *testing.T) {
	def := policy.Bounds{MinDays: 3, MaxDays: 7}

	t.Run("nil setting falls back to defaults", func(t *testing.T) {
		assert.Equal(t, def, policy.BoundsFor(nil, def))
	})

	t.Run("setting narrows the window", func(t *testing.T) {
		setting := &domain.RentalSetting{MinDuration: 4, MaxDuration: 6}
		assert.Equal(t, policy.Bounds{MinDays: 4, MaxDays: 6}, policy.BoundsFor(setting, def))
	})

	t.Run("setting cannot widen the window", func(t *testing.T) {
		setting := &domain.RentalSetting{MinDuration: 2, MaxDuration: 14}
		assert.Equal(t, def, policy.BoundsFor(setting, def))
	})

	t.Run("out-of-window values are clamped independently", func(t *testing.T) {
		setting := &domain.RentalSetting{MinDuration: 5, MaxDuration: 14}
		assert.Equal(t, policy.Bounds{MinDays: 5, MaxDays: 7}, policy.BoundsFor(setting, def))
	})

	t.Run("zero fields keep defaults", func(t *testing.T) {
		setting := &domain.RentalSetting{MinDuration: 4}
		assert.Equal(t, policy.Bounds{MinDays: 4, MaxDays: 7}, policy.BoundsFor(setting, def))
	})

	t.Run("inverted rule is ignored", func(t *testing.T) {
		setting := &domain.RentalSetting{MinDuration: 6, MaxDuration: 4}
		assert.Equal(t, def, policy.BoundsFor(setting, def))
	})
}

func TestValidateRule(t *testing.T) {
	def := policy.Bounds{MinDays: 3, MaxDays: 7}

	t.Run("narrowing rule accepted", func(t *testing.T) {
		setting := &domain.RentalSetting{MinDuration: 4, MaxDuration: 6}
		assert.NoError(t, policy.ValidateRule(setting, def))
	})

	t.Run("zero fields inherit defaults", func(t *testing.T) {
		setting := &domain.RentalSetting{MaxDuration: 5}
		assert.NoError(t, policy.ValidateRule(setting, def))
		assert.Equal(t, 3, setting.MinDuration)
		assert.Equal(t, 5, setting.MaxDuration)
	})

	t.Run("widening rule rejected", func(t *testing.T) {
		setting := &domain.RentalSetting{MinDuration: 2, MaxDuration: 14}
		var valErr *domain.ValidationError
		assert.ErrorAs(t, policy.ValidateRule(setting, def), &valErr)
	})

	t.Run("inverted rule rejected", func(t *testing.T) {
		setting := &domain.RentalSetting{MinDuration: 6, MaxDuration: 4}
		var valErr *domain.ValidationError
		assert.ErrorAs(t, policy.ValidateRule(setting, def), &valErr)
	})
}
