// services/activity.go - the single-pass activity event loop
package services

import (
	"time"

	"collegit/gamification"
	"collegit/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActivityResult is what one recorded activity event produced.
type ActivityResult struct {
	XPEarned        int                      `json:"xp_earned"`
	LeveledUp       bool                     `json:"leveled_up"`
	State           models.GamificationState `json:"state"`
	NewAchievements []models.Achievement     `json:"new_achievements"`
}

// RecordActivity applies one qualifying activity event for a user: add the
// XP delta, recompute level and streak, evaluate achievements against a
// fresh stats snapshot, unlock new ones, and feed their XP rewards back —
// all inside a single transaction so two simultaneous events cannot lose an
// update. `now` is passed in explicitly; streak math never reads the clock.
func RecordActivity(db *gorm.DB, userID uint, xpDelta int, now time.Time) (*ActivityResult, error) {
	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	state, err := loadOrCreateState(tx, userID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	oldLevel := state.Level
	oldStreak := state.CurrentStreak
	engineState := gamification.Apply(toEngineState(state), xpDelta, now)

	// Crossing a streak milestone carries its own bonus XP.
	bonusXP := gamification.StreakMilestoneXP(oldStreak, engineState.CurrentStreak)
	if bonusXP > 0 {
		engineState = gamification.AddRewardXP(engineState, bonusXP)
	}
	fromEngineState(state, engineState)

	stats, err := CollectStats(tx, &user, state)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	newAchievements, rewardXP, err := unlockAchievements(tx, userID, stats, now)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	// Achievements carry their own XP reward; fold it in and refresh the
	// cached level within the same pass.
	if rewardXP > 0 {
		fromEngineState(state, gamification.AddRewardXP(engineState, rewardXP))
	}

	if err := tx.Save(state).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &ActivityResult{
		XPEarned:        xpDelta + bonusXP + rewardXP,
		LeveledUp:       state.Level > oldLevel,
		State:           *state,
		NewAchievements: newAchievements,
	}, nil
}

// loadOrCreateState fetches the user's gamification row, creating a zeroed
// one for accounts that predate the table. The row is read FOR UPDATE so two
// concurrent events for the same user serialize instead of overwriting each
// other's commit.
func loadOrCreateState(tx *gorm.DB, userID uint) (*models.GamificationState, error) {
	var state models.GamificationState
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).First(&state).Error
	if err == gorm.ErrRecordNotFound {
		state = models.GamificationState{UserID: userID, Level: 1}
		if err := tx.Create(&state).Error; err != nil {
			return nil, err
		}
		return &state, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// unlockAchievements diffs currently-eligible codes against the user's
// unlocked set and inserts the new ones. Unlocking is one-way: codes the
// snapshot no longer qualifies for (e.g. after a streak lapse) are never
// removed. Returns the new rows and the sum of their XP rewards.
func unlockAchievements(tx *gorm.DB, userID uint, stats gamification.Stats, now time.Time) ([]models.Achievement, int, error) {
	eligible := gamification.Eligible(stats)
	if len(eligible) == 0 {
		return nil, 0, nil
	}

	var catalog []models.Achievement
	if err := tx.Find(&catalog).Error; err != nil {
		return nil, 0, err
	}
	byCode := make(map[string]models.Achievement, len(catalog))
	for _, a := range catalog {
		byCode[a.Code] = a
	}

	var unlockedIDs []uint
	if err := tx.Model(&models.UserAchievement{}).Where("user_id = ?", userID).
		Pluck("achievement_id", &unlockedIDs).Error; err != nil {
		return nil, 0, err
	}
	unlocked := make(map[uint]bool, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlocked[id] = true
	}

	var newAchievements []models.Achievement
	rewardXP := 0

	for _, code := range eligible {
		achievement, ok := byCode[code]
		if !ok || unlocked[achievement.ID] {
			continue
		}

		// A concurrent event may have inserted the same unlock; the unique
		// index plus DoNothing turns that into a no-op.
		row := models.UserAchievement{
			UserID:        userID,
			AchievementID: achievement.ID,
			UnlockedAt:    now,
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if res.Error != nil {
			return nil, 0, res.Error
		}
		if res.RowsAffected == 0 {
			continue
		}

		newAchievements = append(newAchievements, achievement)
		rewardXP += achievement.XPReward
	}

	return newAchievements, rewardXP, nil
}

func toEngineState(state *models.GamificationState) gamification.State {
	return gamification.State{
		XP:               state.XP,
		Level:            state.Level,
		CurrentStreak:    state.CurrentStreak,
		LongestStreak:    state.LongestStreak,
		LastActivityDate: state.LastActivityDate,
	}
}

func fromEngineState(state *models.GamificationState, engine gamification.State) {
	state.XP = engine.XP
	state.Level = engine.Level
	state.CurrentStreak = engine.CurrentStreak
	state.LongestStreak = engine.LongestStreak
	state.LastActivityDate = engine.LastActivityDate
}
