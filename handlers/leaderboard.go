// handlers/leaderboard.go
package handlers

import (
	"collegit/database"
	"collegit/models"

	"github.com/gofiber/fiber/v2"
)

type LeaderboardEntry struct {
	UserID        uint   `json:"user_id"`
	Username      string `json:"username"`
	DisplayName   string `json:"display_name"`
	XP            int    `json:"xp"`
	Level         int    `json:"level"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
}

// GetLeaderboard returns the global leaderboard
// GET /api/leaderboard?category=xp&limit=100&offset=0
func GetLeaderboard(c *fiber.Ctx) error {
	category := c.Query("category", "xp")
	limit := c.QueryInt("limit", 100)
	if limit < 1 || limit > 100 {
		limit = 100
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	var orderBy string
	switch category {
	case "level":
		orderBy = "gs.level DESC, gs.xp DESC"
	case "streak":
		orderBy = "gs.longest_streak DESC, gs.xp DESC"
	default:
		category = "xp"
		orderBy = "gs.xp DESC, gs.level DESC"
	}

	db := database.GetDB()
	var entries []LeaderboardEntry

	if err := db.Raw(`
		SELECT
			u.id AS user_id,
			u.username,
			u.display_name,
			gs.xp,
			gs.level,
			gs.current_streak,
			gs.longest_streak
		FROM gamification_states gs
		JOIN users u ON u.id = gs.user_id
		WHERE u.is_guest = false AND u.is_banned = false
		ORDER BY `+orderBy+`
		LIMIT ? OFFSET ?
	`, limit, offset).Scan(&entries).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch leaderboard"})
	}

	var total int64
	db.Model(&models.User{}).Where("is_guest = ? AND is_banned = ?", false, false).Count(&total)

	return c.JSON(fiber.Map{
		"success":  true,
		"entries":  entries,
		"category": category,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetUserRank returns a user's position in the XP leaderboard
// GET /api/leaderboard/user/:id
func GetUserRank(c *fiber.Ctx) error {
	db := database.GetDB()

	var entry LeaderboardEntry
	if err := db.Raw(`
		SELECT
			u.id AS user_id,
			u.username,
			u.display_name,
			gs.xp,
			gs.level,
			gs.current_streak,
			gs.longest_streak
		FROM gamification_states gs
		JOIN users u ON u.id = gs.user_id
		WHERE u.id = ?
	`, c.Params("id")).Scan(&entry).Error; err != nil || entry.UserID == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	var rank int64
	db.Raw(`
		SELECT COUNT(*) + 1
		FROM gamification_states gs
		JOIN users u ON u.id = gs.user_id
		WHERE u.is_guest = false AND u.is_banned = false AND gs.xp > ?
	`, entry.XP).Scan(&rank)

	return c.JSON(fiber.Map{
		"success": true,
		"rank":    rank,
		"entry":   entry,
	})
}
