package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXPThresholdForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 0},
		{1, 0},
		{2, 100},   // 100 * 1^1.5
		{3, 282},   // floor(100 * 2^1.5)
		{5, 800},   // 100 * 4^1.5
		{10, 2700}, // 100 * 9^1.5
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, XPThresholdForLevel(tc.level), "level %d", tc.level)
	}
}

func TestXPThresholdForLevel_NonDecreasing(t *testing.T) {
	prev := XPThresholdForLevel(1)
	for level := 2; level <= 200; level++ {
		cur := XPThresholdForLevel(level)
		assert.GreaterOrEqual(t, cur, prev, "threshold dipped at level %d", level)
		prev = cur
	}
}

func TestLevelForXP_ThresholdBoundaries(t *testing.T) {
	// The threshold function and its inverse must agree exactly at every
	// boundary: being at the threshold puts you on the level, one XP short
	// leaves you on the level below.
	for level := 1; level <= 100; level++ {
		threshold := XPThresholdForLevel(level)
		assert.Equal(t, level, LevelForXP(threshold), "LevelForXP(threshold(%d))", level)
		if level > 1 {
			assert.Equal(t, level-1, LevelForXP(threshold-1), "LevelForXP(threshold(%d)-1)", level)
		}
	}
}

func TestLevelForXP_Clamping(t *testing.T) {
	assert.Equal(t, 1, LevelForXP(-500))
	assert.Equal(t, 1, LevelForXP(0))
	assert.Equal(t, 1, LevelForXP(99))
	assert.Equal(t, 2, LevelForXP(100))
}

func TestProgressToNextLevel(t *testing.T) {
	p := ProgressToNextLevel(150)

	assert.Equal(t, 2, p.CurrentLevel) // threshold(2) = 100
	assert.Equal(t, 3, p.NextLevel)
	assert.Equal(t, 182, p.XPForNextLevel) // threshold(3)=282, span 282-100
	assert.Equal(t, 50, p.XPProgress)      // 150 - 100
	assert.Equal(t, 132, p.XPNeeded)       // 282 - 150
}

func TestProgressToNextLevel_FreshUser(t *testing.T) {
	p := ProgressToNextLevel(0)

	assert.Equal(t, 1, p.CurrentLevel)
	assert.Equal(t, 2, p.NextLevel)
	assert.Equal(t, 100, p.XPForNextLevel)
	assert.Equal(t, 0, p.XPProgress)
	assert.Equal(t, 100, p.XPNeeded)
}

func TestProgressToNextLevel_NegativeXP(t *testing.T) {
	assert.Equal(t, ProgressToNextLevel(0), ProgressToNextLevel(-42))
}

func TestTaskXP(t *testing.T) {
	tests := []struct {
		taskType string
		want     int
	}{
		{"essay", XPTaskLarge},
		{"recommendation", XPTaskMedium},
		{"test_score", XPTaskMedium},
		{"habit", XPTaskSmall},
		{"admin", XPTaskMedium},
		{"", XPTaskMedium},
		{"something_new", XPTaskMedium},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, TaskXP(tc.taskType), "type %q", tc.taskType)
	}
}
