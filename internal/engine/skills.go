package engine

import "sort"

// SkillLevelXP is the per-level threshold of the canonical skill curve.
// Skill XP accumulates indefinitely; the level is derived from it.
const SkillLevelXP = 1000

// SkillLevelForXP returns the level for accumulated skill XP. Levels start
// at 1 and increment every SkillLevelXP.
func SkillLevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/SkillLevelXP + 1
}

// SkillProgress reports progress within the current skill level, in [0,1).
func SkillProgress(xp int) float64 {
	if xp < 0 {
		xp = 0
	}
	return float64(xp%SkillLevelXP) / float64(SkillLevelXP)
}

// BestSkill returns the skill with the highest XP; ties break
// lexicographically so the result is deterministic.
func BestSkill(xpBySkill map[Skill]int) Skill {
	return pickSkill(xpBySkill, func(a, b int) bool { return a > b })
}

// AttentionSkill returns the skill with the lowest XP, lexicographic
// tie-break.
func AttentionSkill(xpBySkill map[Skill]int) Skill {
	return pickSkill(xpBySkill, func(a, b int) bool { return a < b })
}

func pickSkill(xpBySkill map[Skill]int, better func(a, b int) bool) Skill {
	names := make([]string, 0, len(AllSkills))
	for _, s := range AllSkills {
		names = append(names, string(s))
	}
	sort.Strings(names)

	best := Skill(names[0])
	for _, n := range names[1:] {
		s := Skill(n)
		if better(xpBySkill[s], xpBySkill[best]) {
			best = s
		}
	}
	return best
}
