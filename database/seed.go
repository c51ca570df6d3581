// database/seed.go - static seed data
package database

import (
	"log"

	"collegit/gamification"
	"collegit/models"

	"gorm.io/gorm"
)

// SeedAchievements upserts the achievement catalog by code. Codes already in
// the table keep their row (and ID) so existing unlocks stay valid; name,
// description, and reward are refreshed from the catalog.
func SeedAchievements(db *gorm.DB) error {
	seeded := 0
	for _, entry := range gamification.Catalog() {
		var existing models.Achievement
		err := db.Where("code = ?", entry.Code).First(&existing).Error

		if err == gorm.ErrRecordNotFound {
			achievement := models.Achievement{
				Code:        entry.Code,
				Name:        entry.Name,
				Description: entry.Description,
				XPReward:    entry.XPReward,
			}
			if err := db.Create(&achievement).Error; err != nil {
				return err
			}
			seeded++
			continue
		}
		if err != nil {
			return err
		}

		if existing.Name != entry.Name || existing.Description != entry.Description || existing.XPReward != entry.XPReward {
			if err := db.Model(&existing).Updates(map[string]interface{}{
				"name":        entry.Name,
				"description": entry.Description,
				"xp_reward":   entry.XPReward,
			}).Error; err != nil {
				return err
			}
		}
	}

	if seeded > 0 {
		log.Printf("✅ Seeded %d achievements", seeded)
	}
	return nil
}
