// services/transitions.go - guarded one-way status flips
//
// XP-bearing transitions are single guarded UPDATEs: the guard lives in the
// WHERE clause, and the caller awards XP only when RowsAffected says this
// request performed the flip. Two concurrent requests for the same row cannot
// both win the guard.
package services

import (
	"time"

	"collegit/models"

	"gorm.io/gorm"
)

// MarkTaskDone flips a task to done and stamps its completion time. Reports
// whether this call performed the flip; false means the task was already done.
func MarkTaskDone(db *gorm.DB, taskID, userID uint, now time.Time) (bool, error) {
	res := db.Model(&models.Task{}).
		Where("id = ? AND user_id = ? AND status <> ?", taskID, userID, models.TaskStatusDone).
		Updates(map[string]interface{}{
			"status":       models.TaskStatusDone,
			"completed_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// MarkSubmitted flips a college application to submitted. Reports whether
// this call performed the flip; false means it was already submitted (or has
// a decision).
func MarkSubmitted(db *gorm.DB, entryID, userID uint) (bool, error) {
	res := db.Model(&models.UserCollege{}).
		Where("id = ? AND user_id = ? AND status NOT IN ?", entryID, userID,
			[]string{models.StatusSubmitted, models.StatusDecisionReceived}).
		Update("status", models.StatusSubmitted)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// MarkOnboardingComplete flips the one-time onboarding flag. Reports whether
// this call performed the flip.
func MarkOnboardingComplete(db *gorm.DB, userID uint) (bool, error) {
	res := db.Model(&models.User{}).
		Where("id = ? AND onboarding_complete = ?", userID, false).
		Update("onboarding_complete", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// MarkProfileSetupDone flips the one-time profile setup flag once the user
// has a full name and graduation year on record. Reports whether this call
// performed the flip, so profile setup XP is awarded exactly once.
func MarkProfileSetupDone(db *gorm.DB, userID uint) (bool, error) {
	res := db.Model(&models.User{}).
		Where("id = ? AND profile_setup_done = ? AND full_name <> '' AND grad_year <> 0", userID, false).
		Update("profile_setup_done", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// MarkDecision records an admission decision on a submitted application.
// Reports whether this was the first decision for the entry; a later change
// (say, waitlist to accepted) still lands but reports false so it earns no
// second XP award.
func MarkDecision(db *gorm.DB, entryID, userID uint, decision string) (bool, error) {
	updates := map[string]interface{}{
		"decision": decision,
		"status":   models.StatusDecisionReceived,
	}

	res := db.Model(&models.UserCollege{}).
		Where("id = ? AND user_id = ? AND decision = ? AND status IN ?", entryID, userID,
			models.DecisionPending, []string{models.StatusSubmitted, models.StatusDecisionReceived}).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 1 {
		return true, nil
	}

	// Already decided once; just update the decision.
	res = db.Model(&models.UserCollege{}).
		Where("id = ? AND user_id = ? AND status = ?", entryID, userID, models.StatusDecisionReceived).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return false, nil
}
