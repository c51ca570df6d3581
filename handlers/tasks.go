// handlers/tasks.go - checklist tasks
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

type CreateTaskRequest struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	DueDate       *time.Time `json:"due_date"`
	Type          string     `json:"type"`
	UserCollegeID *uint      `json:"user_college_id"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      *string    `json:"status"`
}

// GetTasks returns the user's tasks, optionally filtered
// GET /api/tasks?status=&type=&college=
func GetTasks(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	query := db.Where("user_id = ?", userID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if taskType := c.Query("type"); taskType != "" {
		query = query.Where("type = ?", taskType)
	}
	if college := c.QueryInt("college"); college > 0 {
		query = query.Where("user_college_id = ?", college)
	}

	var tasks []models.Task
	if err := query.Order("due_date ASC NULLS LAST, created_at ASC").Find(&tasks).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tasks"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"tasks":   tasks,
		"total":   len(tasks),
	})
}

// CreateTask creates a checklist task
func CreateTask(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Title == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Title required"})
	}

	taskType := req.Type
	if taskType == "" {
		taskType = models.TaskTypeAdmin
	}
	if !models.ValidTaskType(taskType) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid task type"})
	}

	db := database.GetDB()

	// A task may be general or tied to one of the user's colleges
	if req.UserCollegeID != nil {
		var entry models.UserCollege
		if err := db.Where("id = ? AND user_id = ?", *req.UserCollegeID, userID).First(&entry).Error; err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "College not found"})
		}
	}

	task := models.Task{
		UserID:        userID,
		UserCollegeID: req.UserCollegeID,
		Title:         req.Title,
		Description:   req.Description,
		DueDate:       req.DueDate,
		Status:        models.TaskStatusTodo,
		Type:          taskType,
	}

	if err := db.Create(&task).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create task"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"task":    task,
	})
}

// UpdateTask edits a task. Completion goes through CompleteTask so XP is
// awarded exactly once.
func UpdateTask(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.GetDB()
	var task models.Task

	if err := db.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&task).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.Status != nil {
		if !models.ValidTaskStatus(*req.Status) {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid task status"})
		}
		if *req.Status == models.TaskStatusDone {
			return c.Status(400).JSON(fiber.Map{"error": "Use the complete endpoint to finish a task"})
		}
		updates["status"] = *req.Status
		// Reopening clears the completion stamp
		if task.Status == models.TaskStatusDone {
			updates["completed_at"] = nil
		}
	}

	if err := db.Model(&task).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update task"})
	}

	db.First(&task, task.ID)

	return c.JSON(fiber.Map{
		"success": true,
		"task":    task,
	})
}

// DeleteTask removes a task
func DeleteTask(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var task models.Task

	if err := db.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&task).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
	}

	if err := db.Delete(&task).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete task"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// CompleteTask marks a task done and records the activity. Completing an
// already-done task is a harmless no-op with no XP.
func CompleteTask(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var task models.Task

	if err := db.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&task).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
	}

	now := time.Now().UTC()

	// The flip is guarded so two racing completes cannot both earn XP.
	flipped, err := services.MarkTaskDone(db, task.ID, userID, now)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to complete task"})
	}
	if !flipped {
		db.First(&task, task.ID)
		return c.JSON(fiber.Map{
			"success":           true,
			"already_completed": true,
			"task":              task,
		})
	}

	result, err := services.RecordActivity(db, userID, gamification.TaskXP(task.Type), now)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record activity"})
	}

	db.First(&task, task.ID)

	return c.JSON(fiber.Map{
		"success":          true,
		"task":             task,
		"xp_earned":        result.XPEarned,
		"new_level":        result.State.Level,
		"leveled_up":       result.LeveledUp,
		"current_streak":   result.State.CurrentStreak,
		"longest_streak":   result.State.LongestStreak,
		"new_achievements": result.NewAchievements,
	})
}
