// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"collegit/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.GamificationState{},
		&models.College{},
		&models.UserCollege{},
		&models.Task{},
		&models.Achievement{},
		&models.UserAchievement{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	log.Println("✅ Migrations completed")

	createIndexes()

	// Achievement catalog is static seed data, read-only at runtime
	if err := SeedAchievements(db); err != nil {
		log.Fatalf("❌ Failed to seed achievements: %v", err)
	}

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes the auto-migration doesn't cover
func createIndexes() {
	db := GetDB()
	log.Println("Creating indexes...")

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_guest ON users(is_guest)")

	// Leaderboard ordering
	db.Exec("CREATE INDEX IF NOT EXISTS idx_gamification_xp ON gamification_states(xp DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_gamification_level ON gamification_states(level DESC)")

	// College list lookups
	db.Exec("CREATE INDEX IF NOT EXISTS idx_colleges_slug ON colleges(slug)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_colleges_user ON user_colleges(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_colleges_status ON user_colleges(user_id, status)")

	// Task lookups
	db.Exec("CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_tasks_user_status ON tasks(user_id, status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_tasks_college ON tasks(user_college_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date)")

	// Achievement lookups
	db.Exec("CREATE INDEX IF NOT EXISTS idx_achievements_code ON achievements(code)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_achievements_user ON user_achievements(user_id)")

	log.Println("✅ Indexes created successfully")
}
