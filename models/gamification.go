// models/gamification.go
package models

import "time"

// GamificationState is the per-user progress row. XP only ever grows; Level
// is a cached derived field kept equal to gamification.LevelForXP(XP);
// LongestStreak is always >= CurrentStreak. A nil LastActivityDate means the
// user has never been active.
type GamificationState struct {
	ID               uint       `gorm:"primaryKey" json:"-"`
	UserID           uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	XP               int        `gorm:"default:0" json:"xp"`
	Level            int        `gorm:"default:1" json:"level"`
	CurrentStreak    int        `gorm:"default:0" json:"current_streak"`
	LongestStreak    int        `gorm:"default:0" json:"longest_streak"`
	LastActivityDate *time.Time `json:"last_activity_date"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (GamificationState) TableName() string {
	return "gamification_states"
}
