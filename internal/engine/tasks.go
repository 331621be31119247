package engine

// TaskType distinguishes everyday tasks from set-day ones.
type TaskType string

const (
	TaskTypeDaily  TaskType = "daily"
	TaskTypeSetDay TaskType = "setday"
)

// Skill is one of the six fixed progression categories.
type Skill string

const (
	SkillResilience Skill = "Resilience"
	SkillFuel       Skill = "Fuel"
	SkillFitness    Skill = "Fitness"
	SkillWisdom     Skill = "Wisdom"
	SkillDiscipline Skill = "Discipline"
	SkillNetwork    Skill = "Network"
)

// AllSkills is the display order used across the app.
var AllSkills = []Skill{
	SkillResilience,
	SkillFuel,
	SkillFitness,
	SkillWisdom,
	SkillDiscipline,
	SkillNetwork,
}

func (s Skill) IsValid() bool {
	switch s {
	case SkillResilience, SkillFuel, SkillFitness, SkillWisdom, SkillDiscipline, SkillNetwork:
		return true
	default:
		return false
	}
}

// Task is a single day's obligation. Instances are ephemeral: generated fresh
// each day, flipped to completed at most once, and discarded at the next
// midnight reset.
type Task struct {
	ID             string
	Name           string
	Description    string
	XP             int
	ExpiresInHours int
	Type           TaskType
	Skill          Skill
	IsCompleted    bool
}
