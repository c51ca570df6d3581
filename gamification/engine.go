// gamification/engine.go - single-pass activity application
package gamification

import "time"

// State mirrors the persisted per-user gamification row. Level is a cached
// derived field and always equals LevelForXP(XP) after Apply.
type State struct {
	XP               int
	Level            int
	CurrentStreak    int
	LongestStreak    int
	LastActivityDate *time.Time
}

// Apply folds one activity event into a state: add the XP delta, recompute
// the level from the new total, advance the streak, and stamp the activity
// day. Negative deltas are clamped to zero so XP stays monotonic. The
// function is pure; callers persist the returned value.
func Apply(state State, xpDelta int, today time.Time) State {
	if xpDelta < 0 {
		xpDelta = 0
	}

	state.XP += xpDelta
	state.Level = LevelForXP(state.XP)

	state.CurrentStreak = NextStreak(state.CurrentStreak, state.LastActivityDate, today)
	if state.CurrentStreak > state.LongestStreak {
		state.LongestStreak = state.CurrentStreak
	}

	day := DayStart(today)
	state.LastActivityDate = &day

	return state
}

// AddRewardXP adds achievement reward XP earned during a pass and recomputes
// the cached level. Streak fields are untouched: rewards are not activity.
func AddRewardXP(state State, reward int) State {
	if reward <= 0 {
		return state
	}
	state.XP += reward
	state.Level = LevelForXP(state.XP)
	return state
}
