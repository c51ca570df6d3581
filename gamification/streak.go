// gamification/streak.go - day-streak state machine
package gamification

import "time"

// DayStart normalizes a timestamp to UTC midnight. All streak comparisons
// happen at day granularity in UTC so local-timezone or DST drift cannot
// break or extend a streak.
func DayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsNewActivityDay reports whether activity today counts as a new streak day,
// i.e. the last recorded activity (if any) was on an earlier calendar day.
func IsNewActivityDay(lastActivity *time.Time, today time.Time) bool {
	if lastActivity == nil {
		return true // first activity ever
	}
	return DayStart(*lastActivity).Before(DayStart(today))
}

// IsConsecutive reports whether the streak has not lapsed: the last activity
// was today or yesterday. A nil last activity means there is no streak to
// continue.
func IsConsecutive(lastActivity *time.Time, today time.Time) bool {
	if lastActivity == nil {
		return false
	}
	diff := int(DayStart(today).Sub(DayStart(*lastActivity)).Hours() / 24)
	return diff <= 1
}

// NextStreak returns the streak value after an activity on `today`.
// Repeated activity within one day leaves the streak unchanged; activity on
// the following day increments it; a gap of more than one day starts a fresh
// streak of 1. The caller owns longest-streak bookkeeping.
func NextStreak(currentStreak int, lastActivity *time.Time, today time.Time) int {
	if !IsNewActivityDay(lastActivity, today) {
		return currentStreak
	}
	if IsConsecutive(lastActivity, today) {
		return currentStreak + 1
	}
	return 1
}

var streakMilestones = []struct {
	days int
	xp   int
}{
	{7, XPStreak7Days},
	{14, XPStreak14Days},
	{30, XPStreak30Days},
}

// StreakMilestoneXP returns the bonus XP for milestones crossed when the
// streak moves from prev to next. Streaks grow one day at a time, so at most
// one milestone is crossed per call. A streak that lapses and later climbs
// back earns the milestone again.
func StreakMilestoneXP(prev, next int) int {
	if next <= prev {
		return 0
	}
	bonus := 0
	for _, m := range streakMilestones {
		if prev < m.days && next >= m.days {
			bonus += m.xp
		}
	}
	return bonus
}
