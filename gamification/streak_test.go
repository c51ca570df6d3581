package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := today.AddDate(0, 0, -n)
	return &t
}

func TestDayStart(t *testing.T) {
	got := DayStart(today)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), got)

	// Non-UTC input is normalized to the UTC calendar day.
	est := time.FixedZone("EST", -5*3600)
	late := time.Date(2026, 3, 10, 22, 0, 0, 0, est) // 03:00 UTC on the 11th
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), DayStart(late))
}

func TestIsNewActivityDay(t *testing.T) {
	assert.True(t, IsNewActivityDay(nil, today), "no prior activity")
	assert.True(t, IsNewActivityDay(daysAgo(1), today), "yesterday")
	assert.True(t, IsNewActivityDay(daysAgo(5), today), "lapsed")
	assert.False(t, IsNewActivityDay(daysAgo(0), today), "same day")
}

func TestIsConsecutive(t *testing.T) {
	assert.False(t, IsConsecutive(nil, today), "no prior activity")
	assert.True(t, IsConsecutive(daysAgo(0), today), "same day")
	assert.True(t, IsConsecutive(daysAgo(1), today), "yesterday")
	assert.False(t, IsConsecutive(daysAgo(2), today), "two days ago")
	assert.False(t, IsConsecutive(daysAgo(3), today), "three days ago")
}

func TestNextStreak(t *testing.T) {
	tests := []struct {
		name    string
		current int
		last    *time.Time
		want    int
	}{
		{"first ever activity", 0, nil, 1},
		{"continues from yesterday", 5, daysAgo(1), 6},
		{"unchanged on same day", 5, daysAgo(0), 5},
		{"resets after lapse", 5, daysAgo(3), 1},
		{"reset still counts today", 12, daysAgo(30), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextStreak(tc.current, tc.last, today))
		})
	}
}

func TestNextStreak_TimeOfDayIgnored(t *testing.T) {
	// 23:59 yesterday vs 00:01 today is still consecutive days.
	last := time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 4, NextStreak(3, &last, now))
}

func TestStreakMilestoneXP(t *testing.T) {
	tests := []struct {
		name string
		prev int
		next int
		want int
	}{
		{"no milestone", 3, 4, 0},
		{"reaches 7", 6, 7, XPStreak7Days},
		{"past 7", 7, 8, 0},
		{"reaches 14", 13, 14, XPStreak14Days},
		{"reaches 30", 29, 30, XPStreak30Days},
		{"unchanged", 7, 7, 0},
		{"lapse pays nothing", 14, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StreakMilestoneXP(tc.prev, tc.next))
		})
	}
}
