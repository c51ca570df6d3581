package services

import (
	"log"
	"os"
	"strconv"
	"time"

	"collegit/database"
	"collegit/models"
)

// CleanupService reaps stale guest accounts in the background
type CleanupService struct {
	stop chan struct{}
}

var cleanupService *CleanupService

// InitCleanupService initializes the singleton cleanup service and starts
// the worker unless GUEST_CLEANUP_ENABLED=false.
func InitCleanupService() {
	cleanupService = &CleanupService{stop: make(chan struct{})}

	if enabled := os.Getenv("GUEST_CLEANUP_ENABLED"); enabled == "false" {
		log.Println("Guest cleanup disabled")
		return
	}
	go cleanupService.run()
}

// GetCleanupService returns the initialized cleanup service.
func GetCleanupService() *CleanupService {
	return cleanupService
}

func (s *CleanupService) run() {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.CleanupStaleGuests(); err != nil {
				log.Printf("Guest cleanup failed: %v", err)
			}
		case <-s.stop:
			return
		}
	}
}

// Stop stops the cleanup worker.
func (s *CleanupService) Stop() {
	if s == nil {
		return
	}
	close(s.stop)
}

// CleanupStaleGuests deletes guest accounts with no login in the retention
// window, along with their dependent rows.
func (s *CleanupService) CleanupStaleGuests() error {
	db := database.GetDB()
	if db == nil {
		return nil
	}

	retentionDays := 30
	if val := os.Getenv("GUEST_RETENTION_DAYS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			retentionDays = n
		}
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)

	var stale []models.User
	if err := db.Where("is_guest = ? AND last_login < ?", true, cutoff).Find(&stale).Error; err != nil {
		log.Printf("Error finding stale guests: %v", err)
		return err
	}

	if len(stale) == 0 {
		log.Println("No stale guest accounts to cleanup")
		return nil
	}

	ids := make([]uint, len(stale))
	for i, user := range stale {
		ids[i] = user.ID
	}

	// Dependent rows first, then the accounts
	db.Where("user_id IN ?", ids).Delete(&models.Task{})
	db.Where("user_id IN ?", ids).Delete(&models.UserCollege{})
	db.Where("user_id IN ?", ids).Delete(&models.UserAchievement{})
	db.Where("user_id IN ?", ids).Delete(&models.GamificationState{})

	if err := db.Delete(&stale).Error; err != nil {
		log.Printf("Error deleting stale guests: %v", err)
		return err
	}

	log.Printf("✅ Cleaned up %d stale guest accounts", len(stale))
	return nil
}
