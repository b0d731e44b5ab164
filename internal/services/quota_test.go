package services

import (
	"testing"
	"time"

	"contrata_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestWeekNumber(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"january 1st is week 1", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 1},
		{"january 7th is still week 1", time.Date(2026, 1, 7, 23, 0, 0, 0, time.UTC), 1},
		{"january 8th starts week 2", time.Date(2026, 1, 8, 0, 0, 1, 0, time.UTC), 2},
		{"mid february", time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC), 7},
		{"december 31st", time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC), 53},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekNumber(tt.at))
		})
	}
}

func TestWeekNumberResetsAcrossYears(t *testing.T) {
	dec31 := time.Date(2026, 12, 31, 12, 0, 0, 0, time.UTC)
	jan1 := time.Date(2027, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Greater(t, WeekNumber(dec31), 50)
	assert.Equal(t, 1, WeekNumber(jan1))
}

func TestWeekNumberMonotonicWithinYear(t *testing.T) {
	prev := 0
	for day := 1; day <= 365; day += 5 {
		at := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC).AddDate(0, 0, day-1)
		week := WeekNumber(at)
		assert.GreaterOrEqual(t, week, prev, "week must not decrease at day %d", day)
		prev = week
	}
}

func TestQuotaPolicyAllows(t *testing.T) {
	policy := QuotaPolicy{WeeklyLimit: 3}
	regular := &models.User{Role: models.UserRoleContratante}
	premium := &models.User{Role: models.UserRoleContratante, Premium: true}

	tests := []struct {
		name   string
		user   *models.User
		posted int
		want   bool
	}{
		{"first post allowed", regular, 0, true},
		{"under the limit", regular, 2, true},
		{"at the limit", regular, 3, false},
		{"over the limit", regular, 10, false},
		{"premium ignores the limit", premium, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Allows(tt.user, tt.posted))
		})
	}
}
