// models/college.go
package models

import (
	"time"

	"gorm.io/datatypes"
)

// College types
const (
	CollegeTypePublic    = "public"
	CollegeTypePrivate   = "private"
	CollegeTypeCommunity = "community"
	CollegeTypeOther     = "other"
)

// Application rounds
const (
	RoundEarlyDecision = "ED"
	RoundEarlyAction   = "EA"
	RoundRegular       = "RD"
	RoundRolling       = "rolling"
)

// Application statuses
const (
	StatusNotStarted       = "not_started"
	StatusResearching      = "researching"
	StatusInProgress       = "in_progress"
	StatusSubmitted        = "submitted"
	StatusDecisionReceived = "decision_received"
)

// Decisions
const (
	DecisionPending    = "pending"
	DecisionAccepted   = "accepted"
	DecisionRejected   = "rejected"
	DecisionWaitlisted = "waitlisted"
)

// College is a catalog entry students add to their list.
type College struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	Name     string         `gorm:"not null;size:200" json:"name"`
	Slug     string         `gorm:"not null;uniqueIndex;size:200" json:"slug"`
	Location string         `gorm:"size:200" json:"location"`
	Type     string         `gorm:"default:'other';size:20" json:"type"`
	Metadata datatypes.JSON `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserCollege tracks one user's application to one college.
type UserCollege struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"not null;uniqueIndex:idx_user_college" json:"user_id"`
	CollegeID        uint       `gorm:"not null;uniqueIndex:idx_user_college" json:"college_id"`
	ApplicationRound string     `gorm:"default:'RD';size:20" json:"application_round"`
	AppDeadline      *time.Time `json:"app_deadline"`
	Status           string     `gorm:"default:'not_started';size:30" json:"status"`
	Decision         string     `gorm:"default:'pending';size:20" json:"decision"`
	Notes            string     `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	User    *User    `gorm:"foreignKey:UserID" json:"-"`
	College *College `gorm:"foreignKey:CollegeID" json:"college,omitempty"`
	Tasks   []Task   `gorm:"foreignKey:UserCollegeID" json:"tasks,omitempty"`
}

func (College) TableName() string {
	return "colleges"
}

func (UserCollege) TableName() string {
	return "user_colleges"
}

// ValidRound reports whether the round is one of the known application rounds.
func ValidRound(round string) bool {
	switch round {
	case RoundEarlyDecision, RoundEarlyAction, RoundRegular, RoundRolling:
		return true
	}
	return false
}

// ValidDecision reports whether the decision value is known.
func ValidDecision(decision string) bool {
	switch decision {
	case DecisionAccepted, DecisionRejected, DecisionWaitlisted:
		return true
	}
	return false
}
