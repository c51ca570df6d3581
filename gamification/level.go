// gamification/level.go - XP and leveling math
package gamification

import "math"

// XP rewards are configurable in one place for easy adjustment.
const (
	XPTaskSmall  = 10
	XPTaskMedium = 25
	XPTaskLarge  = 50

	XPCollegeAdded     = 5
	XPCollegeSubmitted = 100
	XPCollegeDecided   = 50

	XPOnboardingComplete = 25
	XPProfileSetup       = 15

	XPStreak7Days  = 50
	XPStreak14Days = 100
	XPStreak30Days = 250
)

// TaskXP returns the XP reward for completing a task of the given type.
// Unknown or empty types earn the medium reward.
func TaskXP(taskType string) int {
	switch taskType {
	case "essay":
		return XPTaskLarge
	case "recommendation":
		return XPTaskMedium
	case "test_score":
		return XPTaskMedium
	case "habit":
		return XPTaskSmall
	default:
		return XPTaskMedium
	}
}

// XPThresholdForLevel returns the total cumulative XP required to reach a
// level. The curve is floor(100 * (level-1)^1.5): early levels come quickly,
// later ones take progressively more work.
func XPThresholdForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return int(math.Floor(100 * math.Pow(float64(level-1), 1.5)))
}

// LevelForXP returns the highest level whose threshold is at or below the
// given XP total. Negative XP behaves as zero (level 1).
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 1
	}

	// Exponential upper bound, then binary search over the monotonic curve.
	lo, hi := 1, 2
	for XPThresholdForLevel(hi) <= xp {
		lo = hi
		hi *= 2
	}
	for lo+1 < hi {
		mid := lo + (hi-lo)/2
		if XPThresholdForLevel(mid) <= xp {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// LevelProgress describes where an XP total sits within its level.
type LevelProgress struct {
	CurrentLevel   int `json:"current_level"`
	NextLevel      int `json:"next_level"`
	XPForNextLevel int `json:"xp_for_next_level"` // span of the next level
	XPProgress     int `json:"xp_progress"`       // XP earned since the current level began
	XPNeeded       int `json:"xp_needed"`         // XP still required to cross into the next level
}

// ProgressToNextLevel derives the progress record for an XP total.
func ProgressToNextLevel(xp int) LevelProgress {
	if xp < 0 {
		xp = 0
	}

	current := LevelForXP(xp)
	next := current + 1
	currentThreshold := XPThresholdForLevel(current)
	nextThreshold := XPThresholdForLevel(next)

	return LevelProgress{
		CurrentLevel:   current,
		NextLevel:      next,
		XPForNextLevel: nextThreshold - currentThreshold,
		XPProgress:     xp - currentThreshold,
		XPNeeded:       nextThreshold - xp,
	}
}
