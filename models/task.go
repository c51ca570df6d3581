// models/task.go
package models

import "time"

// Task types
const (
	TaskTypeEssay          = "essay"
	TaskTypeRecommendation = "recommendation"
	TaskTypeTestScore      = "test_score"
	TaskTypeAdmin          = "admin"
	TaskTypeHabit          = "habit"
)

// Task statuses
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Task is a checklist item, optionally tied to one of the user's colleges.
type Task struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	UserCollegeID *uint      `gorm:"index" json:"user_college_id"` // nil for general tasks
	Title         string     `gorm:"not null;size:200" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	DueDate       *time.Time `json:"due_date"`
	Status        string     `gorm:"default:'todo';size:20" json:"status"`
	Type          string     `gorm:"default:'admin';size:30" json:"type"`
	CompletedAt   *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	User        *User        `gorm:"foreignKey:UserID" json:"-"`
	UserCollege *UserCollege `gorm:"foreignKey:UserCollegeID" json:"user_college,omitempty"`
}

func (Task) TableName() string {
	return "tasks"
}

// ValidTaskType reports whether the type is one of the known task types.
func ValidTaskType(taskType string) bool {
	switch taskType {
	case TaskTypeEssay, TaskTypeRecommendation, TaskTypeTestScore, TaskTypeAdmin, TaskTypeHabit:
		return true
	}
	return false
}

// ValidTaskStatus reports whether the status value is known.
func ValidTaskStatus(status string) bool {
	switch status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}
