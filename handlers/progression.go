// handlers/progression.go
package handlers

import (
	"collegit/database"
	"collegit/gamification"
	"collegit/middleware"
	"collegit/models"

	"github.com/gofiber/fiber/v2"
)

// GetProgression returns the user's XP, level progress, and streaks
func GetProgression(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var state models.GamificationState

	if err := db.Where("user_id = ?", userID).First(&state).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Progress not found"})
	}

	progress := gamification.ProgressToNextLevel(state.XP)
	percent := 0.0
	if progress.XPForNextLevel > 0 {
		percent = float64(progress.XPProgress) / float64(progress.XPForNextLevel) * 100
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"xp":                 state.XP,
		"level":              state.Level,
		"next_level":         progress.NextLevel,
		"xp_for_next_level":  progress.XPForNextLevel,
		"xp_progress":        progress.XPProgress,
		"xp_needed":          progress.XPNeeded,
		"progress_percent":   percent,
		"current_streak":     state.CurrentStreak,
		"longest_streak":     state.LongestStreak,
		"last_activity_date": state.LastActivityDate,
	})
}

// GetUserAchievements returns the full catalog with unlock markers
func GetUserAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()

	var unlocked []models.UserAchievement
	if err := db.Preload("Achievement").Where("user_id = ?", userID).Order("unlocked_at DESC").Find(&unlocked).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch achievements"})
	}

	var allAchievements []models.Achievement
	if err := db.Order("id ASC").Find(&allAchievements).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch all achievements"})
	}

	unlockedMap := make(map[uint]models.UserAchievement)
	for _, ua := range unlocked {
		unlockedMap[ua.AchievementID] = ua
	}

	achievements := make([]fiber.Map, 0, len(allAchievements))
	for _, achievement := range allAchievements {
		achData := fiber.Map{
			"id":          achievement.ID,
			"code":        achievement.Code,
			"name":        achievement.Name,
			"description": achievement.Description,
			"xp_reward":   achievement.XPReward,
			"unlocked":    false,
		}

		if ua, ok := unlockedMap[achievement.ID]; ok {
			achData["unlocked"] = true
			achData["unlocked_at"] = ua.UnlockedAt
		}

		achievements = append(achievements, achData)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"achievements": achievements,
		"total":        len(allAchievements),
		"unlocked":     len(unlocked),
	})
}
