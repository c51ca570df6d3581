// handlers/users.go - profile endpoints
package handlers

import (
	"time"

	"collegit/database"
	"collegit/gamification"
	"collegit/middleware"
	"collegit/models"
	"collegit/services"

	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	FullName    *string `json:"full_name"`
	GradYear    *int    `json:"grad_year"`
	Interests   *string `json:"interests"`
}

// GetCurrentUser returns the authenticated user with their gamification state
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User

	if err := db.Preload("Gamification").First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// UpdateCurrentUser updates profile fields
func UpdateCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.GetDB()
	var user models.User

	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.GradYear != nil {
		updates["grad_year"] = *req.GradYear
	}
	if req.Interests != nil {
		updates["interests"] = *req.Interests
	}

	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	response := fiber.Map{"success": true}

	// Filling in the full profile for the first time earns a one-time bonus.
	flipped, err := services.MarkProfileSetupDone(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	if flipped {
		result, err := services.RecordActivity(db, userID, gamification.XPProfileSetup, time.Now().UTC())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to record activity"})
		}
		response["xp_earned"] = result.XPEarned
		response["new_level"] = result.State.Level
		response["leveled_up"] = result.LeveledUp
		response["new_achievements"] = result.NewAchievements
	}

	db.Preload("Gamification").First(&user, userID)
	response["user"] = user

	return c.JSON(response)
}

// CompleteOnboarding marks profile setup done and records the activity.
// Calling it again is a harmless no-op.
func CompleteOnboarding(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User

	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	// Guarded flip so a duplicate call cannot earn the bonus twice.
	flipped, err := services.MarkOnboardingComplete(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to complete onboarding"})
	}
	if !flipped {
		return c.JSON(fiber.Map{
			"success":           true,
			"already_completed": true,
		})
	}

	result, err := services.RecordActivity(db, userID, gamification.XPOnboardingComplete, time.Now().UTC())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record activity"})
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"xp_earned":        result.XPEarned,
		"new_level":        result.State.Level,
		"leveled_up":       result.LeveledUp,
		"current_streak":   result.State.CurrentStreak,
		"new_achievements": result.NewAchievements,
	})
}
