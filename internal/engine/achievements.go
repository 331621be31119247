package engine

import (
	"context"
	"fmt"

	"arise/internal/storage"
)

// Achievement represents a badge the user can earn.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker derives earned badges from a progress snapshot and the
// lifetime completion count.
type AchievementChecker struct {
	progress    *storage.Progress
	completions int
}

func NewAchievementChecker(progress *storage.Progress, completions int) *AchievementChecker {
	return &AchievementChecker{progress: progress, completions: completions}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	achievements := []Achievement{
		// Rank milestones
		c.rankAchievement("initiate", "Initiate", "Reach the Initiate rank", "🌱", "Initiate"),
		c.rankAchievement("explorer", "Explorer", "Reach the Explorer rank", "🧭", "Explorer"),
		c.rankAchievement("master", "Master", "Reach the Master rank", "⭐", "Master"),
		c.rankAchievement("transcendent", "Transcendent", "Reach the Transcendent rank", "💫", "Transcendent"),

		// Streak milestones
		c.streakAchievement("streak_3", "Warming Up", "Hold a 3-day streak", "🔥", 3),
		c.streakAchievement("streak_7", "One Week Strong", "Hold a 7-day streak", "🔥", 7),
		c.streakAchievement("streak_30", "Unbroken Month", "Hold a 30-day streak", "🏔️", 30),
		c.streakAchievement("streak_90", "Iron Will", "Hold a 90-day streak", "🛡️", 90),

		// Completion milestones
		c.countAchievement("first_task", "First Step", "Complete 1 task", "✓", 1),
		c.countAchievement("consistent", "Consistent", "Complete 10 tasks", "📋", 10),
		c.countAchievement("dedicated", "Dedicated", "Complete 50 tasks", "🏅", 50),
		c.countAchievement("relentless", "Relentless", "Complete 100 tasks", "🏆", 100),

		// Skill level milestones
		c.skillAchievement("resilient", "Resilient", "Resilience level 3", "🧊", SkillResilience, 3),
		c.skillAchievement("fueled", "Well Fueled", "Fuel level 3", "💧", SkillFuel, 3),
		c.skillAchievement("fit", "Fit", "Fitness level 3", "💪", SkillFitness, 3),
		c.skillAchievement("wise", "Wise", "Wisdom level 3", "🧘", SkillWisdom, 3),
		c.skillAchievement("disciplined", "Disciplined", "Discipline level 3", "⏰", SkillDiscipline, 3),
		c.skillAchievement("connected", "Connected", "Network level 3", "🤝", SkillNetwork, 3),

		// Journey
		{
			ID:          "journey_complete",
			Name:        "Journey Complete",
			Description: fmt.Sprintf("Accumulate %d total XP", JourneyGoalXP),
			Icon:        "🗺️",
			Earned:      c.progress.TotalXP >= JourneyGoalXP,
		},
	}

	return achievements
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns the total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) rankAchievement(id, name, desc, icon, rankName string) Achievement {
	earned := false
	cur := CurrentRank(c.progress.TotalXP)
	for _, r := range RankTable {
		if r.Name == rankName {
			earned = cur.ID >= r.ID
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) streakAchievement(id, name, desc, icon string, days int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: c.progress.Streak >= days}
}

func (c *AchievementChecker) countAchievement(id, name, desc, icon string, count int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: c.completions >= count}
}

func (c *AchievementChecker) skillAchievement(id, name, desc, icon string, skill Skill, level int) Achievement {
	xp := SkillXPOf(c.progress)[skill]
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: SkillLevelForXP(xp) >= level}
}

// GetAchievementsForPlayer is a convenience over the service's stores.
func GetAchievementsForPlayer(ctx context.Context, svc *Service) ([]Achievement, error) {
	pr, err := svc.ProgressRepo().GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	count, err := svc.CompletionRepo().CountAll(ctx)
	if err != nil {
		return nil, err
	}
	return NewAchievementChecker(pr, count).GetAchievements(), nil
}
