// handlers/colleges.go - college catalog and per-user application list
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

type AddCollegeRequest struct {
	CollegeID        uint       `json:"college_id"`
	ApplicationRound string     `json:"application_round"`
	AppDeadline      *time.Time `json:"app_deadline"`
	Notes            string     `json:"notes"`
}

type UpdateUserCollegeRequest struct {
	ApplicationRound *string    `json:"application_round"`
	AppDeadline      *time.Time `json:"app_deadline"`
	Status           *string    `json:"status"`
	Notes            *string    `json:"notes"`
}

type DecisionRequest struct {
	Decision string `json:"decision"`
}

// GetColleges returns the college catalog with search and pagination
// GET /api/colleges?search=&page=1&limit=20
func GetColleges(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	search := c.Query("search")

	db := database.GetDB()
	query := db.Model(&models.College{})

	if search != "" {
		query = query.Where("name ILIKE ? OR location ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	query.Count(&total)

	var colleges []models.College
	if err := query.Order("name ASC").Offset((page - 1) * limit).Limit(limit).Find(&colleges).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch colleges"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"colleges": colleges,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// GetCollege returns a single catalog entry
func GetCollege(c *fiber.Ctx) error {
	db := database.GetDB()

	var college models.College
	if err := db.First(&college, c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "College not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"college": college,
	})
}

// GetUserColleges returns the authenticated user's application list
func GetUserColleges(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var list []models.UserCollege

	query := db.Preload("College").Where("user_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("created_at ASC").Find(&list).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch colleges"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"colleges": list,
		"total":    len(list),
	})
}

// AddUserCollege adds a catalog college to the user's list and records the
// activity
func AddUserCollege(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req AddCollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	round := req.ApplicationRound
	if round == "" {
		round = models.RoundRegular
	}
	if !models.ValidRound(round) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid application round"})
	}

	db := database.GetDB()

	var college models.College
	if err := db.First(&college, req.CollegeID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "College not found"})
	}

	var existing models.UserCollege
	if err := db.Where("user_id = ? AND college_id = ?", userID, req.CollegeID).First(&existing).Error; err == nil {
		return c.Status(400).JSON(fiber.Map{"error": "College already on your list"})
	}

	entry := models.UserCollege{
		UserID:           userID,
		CollegeID:        req.CollegeID,
		ApplicationRound: round,
		AppDeadline:      req.AppDeadline,
		Status:           models.StatusNotStarted,
		Decision:         models.DecisionPending,
		Notes:            req.Notes,
	}

	if err := db.Create(&entry).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to add college"})
	}

	result, err := services.RecordActivity(db, userID, gamification.XPCollegeAdded, time.Now().UTC())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record activity"})
	}

	entry.College = &college

	return c.Status(201).JSON(fiber.Map{
		"success":          true,
		"college":          entry,
		"xp_earned":        result.XPEarned,
		"new_level":        result.State.Level,
		"leveled_up":       result.LeveledUp,
		"new_achievements": result.NewAchievements,
	})
}

// UpdateUserCollege updates round, deadline, notes, or pre-submission status.
// Submission and decisions have their own endpoints since they award XP.
func UpdateUserCollege(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req UpdateUserCollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.GetDB()
	var entry models.UserCollege

	if err := db.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&entry).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "College not found"})
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if req.ApplicationRound != nil {
		if !models.ValidRound(*req.ApplicationRound) {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid application round"})
		}
		updates["application_round"] = *req.ApplicationRound
	}
	if req.AppDeadline != nil {
		updates["app_deadline"] = *req.AppDeadline
	}
	if req.Status != nil {
		switch *req.Status {
		case models.StatusNotStarted, models.StatusResearching, models.StatusInProgress:
			updates["status"] = *req.Status
		default:
			return c.Status(400).JSON(fiber.Map{"error": "Use the submit and decision endpoints for that status"})
		}
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if err := db.Model(&entry).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update college"})
	}

	db.Preload("College").First(&entry, entry.ID)

	return c.JSON(fiber.Map{
		"success": true,
		"college": entry,
	})
}

// SubmitUserCollege marks an application submitted and records the activity
func SubmitUserCollege(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var entry models.UserCollege

	if err := db.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&entry).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "College not found"})
	}

	// Guarded flip: a racing duplicate submit loses and earns no XP.
	flipped, err := services.MarkSubmitted(db, entry.ID, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit application"})
	}
	if !flipped {
		return c.Status(400).JSON(fiber.Map{"error": "Application already submitted"})
	}

	result, err := services.RecordActivity(db, userID, gamification.XPCollegeSubmitted, time.Now().UTC())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record activity"})
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"status":           models.StatusSubmitted,
		"xp_earned":        result.XPEarned,
		"new_level":        result.State.Level,
		"leveled_up":       result.LeveledUp,
		"current_streak":   result.State.CurrentStreak,
		"new_achievements": result.NewAchievements,
	})
}

// RecordDecision records the admission decision for a submitted application
func RecordDecision(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if !models.ValidDecision(req.Decision) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid decision"})
	}

	db := database.GetDB()
	var entry models.UserCollege

	if err := db.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&entry).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "College not found"})
	}

	if entry.Status != models.StatusSubmitted && entry.Status != models.StatusDecisionReceived {
		return c.Status(400).JSON(fiber.Map{"error": "Application has not been submitted"})
	}

	firstDecision, err := services.MarkDecision(db, entry.ID, userID, req.Decision)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record decision"})
	}

	response := fiber.Map{
		"success":  true,
		"decision": req.Decision,
		"status":   models.StatusDecisionReceived,
	}

	// Waitlist flips etc. don't earn XP twice
	if firstDecision {
		result, err := services.RecordActivity(db, userID, gamification.XPCollegeDecided, time.Now().UTC())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to record activity"})
		}
		response["xp_earned"] = result.XPEarned
		response["new_level"] = result.State.Level
		response["leveled_up"] = result.LeveledUp
		response["new_achievements"] = result.NewAchievements
	}

	return c.JSON(response)
}
