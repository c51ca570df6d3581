// gamification/achievements.go - achievement catalog and evaluator
package gamification

// Achievement is one entry of the static catalog. Code is the stable
// identifier persisted alongside user unlocks; it never changes once shipped.
type Achievement struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	XPReward    int    `json:"xp_reward"`
}

var catalog = []Achievement{
	{Code: "first_steps", Name: "First Steps", Description: "Complete your profile setup", XPReward: 25},
	{Code: "college_explorer", Name: "College Explorer", Description: "Add your first 5 colleges", XPReward: 50},
	{Code: "college_master", Name: "College Master", Description: "Add 10 or more colleges", XPReward: 100},
	{Code: "task_starter", Name: "Task Starter", Description: "Complete your first task", XPReward: 15},
	{Code: "task_warrior", Name: "Task Warrior", Description: "Complete 25 tasks", XPReward: 100},
	{Code: "essay_writer", Name: "Essay Writer", Description: "Complete your first essay task", XPReward: 30},
	{Code: "submission_ready", Name: "Submission Ready", Description: "Complete all tasks for one college", XPReward: 150},
	{Code: "first_submission", Name: "First Submission", Description: "Submit your first college application", XPReward: 200},
	{Code: "streak_starter", Name: "Streak Starter", Description: "Maintain a 3-day streak", XPReward: 25},
	{Code: "week_warrior", Name: "Week Warrior", Description: "Maintain a 7-day streak", XPReward: 75},
	{Code: "dedicated_student", Name: "Dedicated Student", Description: "Maintain a 14-day streak", XPReward: 150},
	{Code: "unstoppable", Name: "Unstoppable", Description: "Maintain a 30-day streak", XPReward: 300},
	{Code: "level_up", Name: "Level Up", Description: "Reach level 5", XPReward: 50},
	{Code: "rising_star", Name: "Rising Star", Description: "Reach level 10", XPReward: 150},
	{Code: "application_master", Name: "Application Master", Description: "Submit applications to 5 colleges", XPReward: 500},
}

// Catalog returns a copy of the achievement catalog.
func Catalog() []Achievement {
	out := make([]Achievement, len(catalog))
	copy(out, catalog)
	return out
}

// Stats is an aggregate snapshot of a user's progress, read by the caller
// from the store and passed in as a pure input.
type Stats struct {
	TasksCompleted               int
	EssaysCompleted              int
	CollegesAdded                int
	CollegesSubmitted            int
	CollegesWithAllTasksComplete int
	CurrentStreak                int
	Level                        int
	ProfileComplete              bool
}

// Eligible returns the achievement codes the snapshot currently qualifies
// for. Each code is checked independently against its threshold; cumulative
// thresholds (e.g. 3-day and 7-day streaks) can both appear in one result.
//
// The evaluator is memoryless: it reports eligibility, not unlock history.
// Unlocking is one-way, so the caller must union this result with the
// already-unlocked set and never remove entries, even when a later snapshot
// (say, after a streak lapse) no longer qualifies.
func Eligible(stats Stats) []string {
	var codes []string

	if stats.ProfileComplete {
		codes = append(codes, "first_steps")
	}

	if stats.CollegesAdded >= 5 {
		codes = append(codes, "college_explorer")
	}
	if stats.CollegesAdded >= 10 {
		codes = append(codes, "college_master")
	}

	if stats.TasksCompleted >= 1 {
		codes = append(codes, "task_starter")
	}
	if stats.TasksCompleted >= 25 {
		codes = append(codes, "task_warrior")
	}
	if stats.EssaysCompleted >= 1 {
		codes = append(codes, "essay_writer")
	}

	if stats.CollegesWithAllTasksComplete >= 1 {
		codes = append(codes, "submission_ready")
	}
	if stats.CollegesSubmitted >= 1 {
		codes = append(codes, "first_submission")
	}
	if stats.CollegesSubmitted >= 5 {
		codes = append(codes, "application_master")
	}

	if stats.CurrentStreak >= 3 {
		codes = append(codes, "streak_starter")
	}
	if stats.CurrentStreak >= 7 {
		codes = append(codes, "week_warrior")
	}
	if stats.CurrentStreak >= 14 {
		codes = append(codes, "dedicated_student")
	}
	if stats.CurrentStreak >= 30 {
		codes = append(codes, "unstoppable")
	}

	if stats.Level >= 5 {
		codes = append(codes, "level_up")
	}
	if stats.Level >= 10 {
		codes = append(codes, "rising_star")
	}

	return codes
}
