package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	cat := Catalog()
	require.Len(t, cat, 15)

	seen := make(map[string]bool)
	for _, a := range cat {
		assert.NotEmpty(t, a.Code)
		assert.NotEmpty(t, a.Name)
		assert.GreaterOrEqual(t, a.XPReward, 0)
		assert.False(t, seen[a.Code], "duplicate code %q", a.Code)
		seen[a.Code] = true
	}

	// Mutating the returned slice must not touch the catalog.
	cat[0].XPReward = 9999
	assert.Equal(t, 25, Catalog()[0].XPReward)
}

func TestEligible_TaskThresholds(t *testing.T) {
	assert.NotContains(t, Eligible(Stats{TasksCompleted: 24}), "task_warrior")
	assert.Contains(t, Eligible(Stats{TasksCompleted: 25}), "task_warrior")

	codes := Eligible(Stats{TasksCompleted: 1})
	assert.Contains(t, codes, "task_starter")
	assert.NotContains(t, codes, "task_warrior")
}

func TestEligible_StreaksAreCumulative(t *testing.T) {
	codes := Eligible(Stats{CurrentStreak: 7})
	assert.Contains(t, codes, "streak_starter")
	assert.Contains(t, codes, "week_warrior")
	assert.NotContains(t, codes, "dedicated_student")

	codes = Eligible(Stats{CurrentStreak: 30})
	assert.Contains(t, codes, "streak_starter")
	assert.Contains(t, codes, "week_warrior")
	assert.Contains(t, codes, "dedicated_student")
	assert.Contains(t, codes, "unstoppable")
}

func TestEligible_CollegeAndSubmissionThresholds(t *testing.T) {
	codes := Eligible(Stats{CollegesAdded: 5})
	assert.Contains(t, codes, "college_explorer")
	assert.NotContains(t, codes, "college_master")

	codes = Eligible(Stats{CollegesAdded: 10, CollegesSubmitted: 5, CollegesWithAllTasksComplete: 1})
	assert.Contains(t, codes, "college_master")
	assert.Contains(t, codes, "submission_ready")
	assert.Contains(t, codes, "first_submission")
	assert.Contains(t, codes, "application_master")
}

func TestEligible_LevelAndProfile(t *testing.T) {
	assert.Contains(t, Eligible(Stats{ProfileComplete: true}), "first_steps")
	assert.Empty(t, Eligible(Stats{Level: 4}))
	assert.Contains(t, Eligible(Stats{Level: 5}), "level_up")
	assert.Contains(t, Eligible(Stats{Level: 10}), "rising_star")
}

func TestEligible_Idempotent(t *testing.T) {
	stats := Stats{
		TasksCompleted:  25,
		EssaysCompleted: 2,
		CollegesAdded:   7,
		CurrentStreak:   7,
		Level:           5,
		ProfileComplete: true,
	}
	assert.Equal(t, Eligible(stats), Eligible(stats))
}

func TestEligible_EmptySnapshot(t *testing.T) {
	assert.Empty(t, Eligible(Stats{}))
}

// First essay completion end to end: task XP, level, and eligibility all
// derived from one event on a brand-new account.
func TestFirstEssayScenario(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	state := State{Level: 1}
	earned := TaskXP("essay")
	require.Equal(t, 50, earned)

	state = Apply(state, earned, now)
	assert.Equal(t, 50, state.XP)
	assert.Equal(t, 1, state.Level) // level 2 needs 100 XP
	assert.Equal(t, 1, state.CurrentStreak)

	codes := Eligible(Stats{
		TasksCompleted:  1,
		EssaysCompleted: 1,
		CurrentStreak:   state.CurrentStreak,
		Level:           state.Level,
	})
	assert.Contains(t, codes, "task_starter")
	assert.Contains(t, codes, "essay_writer")
	assert.NotContains(t, codes, "task_warrior")
}
