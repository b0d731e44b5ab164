package services

import (
	"time"

	"contrata_backend/internal/models"
)

const weekDuration = 7 * 24 * time.Hour

// WeekNumber computes the calendar week a point in time falls into:
// elapsed time since January 1 of that year divided by one week,
// rounded up. Days 1-7 of the year are week 1; the counter resets to 1
// when a new year starts.
func WeekNumber(now time.Time) int {
	jan1 := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	elapsed := now.Sub(jan1)

	weeks := int(elapsed / weekDuration)
	if elapsed%weekDuration != 0 || weeks == 0 {
		weeks++
	}
	return weeks
}

// CurrentWeekNumber is WeekNumber of the wall clock.
func CurrentWeekNumber() int {
	return WeekNumber(time.Now())
}

// QuotaPolicy gates job creation for non-premium accounts. It is
// injected into the job service so limits can differ per plan tier
// without touching the service.
type QuotaPolicy struct {
	WeeklyLimit int
}

func DefaultQuotaPolicy() QuotaPolicy {
	return QuotaPolicy{WeeklyLimit: 3}
}

// Allows reports whether the user may post another job given how many
// they have already posted this week. Premium accounts always pass and
// never accumulate quota rows.
func (p QuotaPolicy) Allows(user *models.User, postedThisWeek int) bool {
	if user.Premium {
		return true
	}
	return postedThisWeek < p.WeeklyLimit
}
