// services/stats.go - progress snapshot for the achievement evaluator
package services

import (
	"collegit/gamification"
	"collegit/models"

	"gorm.io/gorm"
)

// CollectStats builds the aggregate snapshot the achievement evaluator reads.
// Streak and level come from the (already updated) gamification state so the
// evaluator sees the values produced by the current event.
func CollectStats(tx *gorm.DB, user *models.User, state *models.GamificationState) (gamification.Stats, error) {
	stats := gamification.Stats{
		CurrentStreak:   state.CurrentStreak,
		Level:           state.Level,
		ProfileComplete: user.OnboardingComplete,
	}

	var n int64

	if err := tx.Model(&models.Task{}).
		Where("user_id = ? AND status = ?", user.ID, models.TaskStatusDone).
		Count(&n).Error; err != nil {
		return stats, err
	}
	stats.TasksCompleted = int(n)

	if err := tx.Model(&models.Task{}).
		Where("user_id = ? AND status = ? AND type = ?", user.ID, models.TaskStatusDone, models.TaskTypeEssay).
		Count(&n).Error; err != nil {
		return stats, err
	}
	stats.EssaysCompleted = int(n)

	if err := tx.Model(&models.UserCollege{}).
		Where("user_id = ?", user.ID).
		Count(&n).Error; err != nil {
		return stats, err
	}
	stats.CollegesAdded = int(n)

	// Decision-received applications were necessarily submitted first.
	if err := tx.Model(&models.UserCollege{}).
		Where("user_id = ? AND status IN ?", user.ID, []string{models.StatusSubmitted, models.StatusDecisionReceived}).
		Count(&n).Error; err != nil {
		return stats, err
	}
	stats.CollegesSubmitted = int(n)

	// Colleges with at least one task where every task is done.
	if err := tx.Raw(`
		SELECT COUNT(*)
		FROM user_colleges uc
		WHERE uc.user_id = ?
		  AND EXISTS (SELECT 1 FROM tasks t WHERE t.user_college_id = uc.id)
		  AND NOT EXISTS (SELECT 1 FROM tasks t WHERE t.user_college_id = uc.id AND t.status <> ?)
	`, user.ID, models.TaskStatusDone).Scan(&n).Error; err != nil {
		return stats, err
	}
	stats.CollegesWithAllTasksComplete = int(n)

	return stats, nil
}
