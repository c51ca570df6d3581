// models/achievement.go
package models

import "time"

// Achievement is a row of the static catalog, seeded once at migration and
// read-only at runtime. Code is the stable identifier the evaluator reports.
type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Code        string `gorm:"not null;uniqueIndex" json:"code"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	XPReward    int    `gorm:"default:0" json:"xp_reward"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
