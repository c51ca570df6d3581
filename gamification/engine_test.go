package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_FirstActivity(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	state := Apply(State{Level: 1}, 25, now)

	assert.Equal(t, 25, state.XP)
	assert.Equal(t, 1, state.Level)
	assert.Equal(t, 1, state.CurrentStreak)
	assert.Equal(t, 1, state.LongestStreak)
	require.NotNil(t, state.LastActivityDate)
	assert.Equal(t, DayStart(now), *state.LastActivityDate)
}

func TestApply_LevelRecomputedFromTotal(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	state := Apply(State{XP: 90, Level: 1}, 200, now)

	assert.Equal(t, 290, state.XP)
	assert.Equal(t, 3, state.Level) // threshold(3) = 282
}

func TestApply_SameDayKeepsStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	earlier := now.Add(-2 * time.Hour)

	state := Apply(State{CurrentStreak: 4, LongestStreak: 4, LastActivityDate: &earlier}, 10, now)

	assert.Equal(t, 4, state.CurrentStreak)
	assert.Equal(t, 4, state.LongestStreak)
}

func TestApply_LapsePreservesLongestStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	lastWeek := now.AddDate(0, 0, -7)

	state := Apply(State{CurrentStreak: 9, LongestStreak: 9, LastActivityDate: &lastWeek}, 10, now)

	assert.Equal(t, 1, state.CurrentStreak)
	assert.Equal(t, 9, state.LongestStreak)
	assert.GreaterOrEqual(t, state.LongestStreak, state.CurrentStreak)
}

func TestApply_NegativeDeltaClamped(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	state := Apply(State{XP: 120, Level: 2}, -50, now)

	assert.Equal(t, 120, state.XP)
	assert.Equal(t, 2, state.Level)
}

func TestApply_ConsecutiveDays(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	state := State{Level: 1}
	for day := 0; day < 7; day++ {
		state = Apply(state, XPTaskSmall, start.AddDate(0, 0, day))
	}

	assert.Equal(t, 7, state.CurrentStreak)
	assert.Equal(t, 7, state.LongestStreak)
	assert.Equal(t, 70, state.XP)
}

func TestAddRewardXP(t *testing.T) {
	state := State{XP: 90, Level: 1, CurrentStreak: 2, LongestStreak: 2}

	state = AddRewardXP(state, 15)

	assert.Equal(t, 105, state.XP)
	assert.Equal(t, 2, state.Level)
	assert.Equal(t, 2, state.CurrentStreak, "rewards must not touch streaks")

	assert.Equal(t, state, AddRewardXP(state, 0))
	assert.Equal(t, state, AddRewardXP(state, -10))
}
