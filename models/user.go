// models/user.go
package models

import (
	"time"
)

type User struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Username    string  `gorm:"uniqueIndex;not null" json:"username"`
	Email       *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password    string  `gorm:"not null" json:"-"`
	DisplayName string  `json:"display_name"`
	IsGuest     bool    `gorm:"default:false" json:"is_guest"`
	IsAdmin     bool    `gorm:"default:false" json:"is_admin"`
	IsBanned    bool    `gorm:"default:false" json:"is_banned"`

	// Profile
	FullName           string `json:"full_name"`
	GradYear           int    `json:"grad_year"`
	Interests          string `gorm:"type:text" json:"interests"` // comma-separated
	OnboardingComplete bool   `gorm:"default:false" json:"onboarding_complete"`
	ProfileSetupDone   bool   `gorm:"default:false" json:"profile_setup_done"` // full name and grad year filled in, XP awarded once

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`

	// Relationships
	Gamification *GamificationState `gorm:"foreignKey:UserID" json:"gamification,omitempty"`
	Achievements []UserAchievement  `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
	Colleges     []UserCollege      `gorm:"foreignKey:UserID" json:"colleges,omitempty"`
	Tasks        []Task             `gorm:"foreignKey:UserID" json:"tasks,omitempty"`
}

// UserAchievement records a one-way unlock. The composite unique index makes
// a duplicate unlock a constraint-level no-op.
type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"user_id"`
	AchievementID uint      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`

	// Relationships
	User        User        `gorm:"foreignKey:UserID" json:"-"`
	Achievement Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}
