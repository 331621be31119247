package engine

import "testing"

func TestSkillLevelCurve(t *testing.T) {
	cases := []struct {
		xp        int
		wantLevel int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{2500, 3},
		{-10, 1},
	}
	for _, c := range cases {
		if got := SkillLevelForXP(c.xp); got != c.wantLevel {
			t.Fatalf("SkillLevelForXP(%d)=%d, want %d", c.xp, got, c.wantLevel)
		}
	}

	if got := SkillProgress(500); got != 0.5 {
		t.Fatalf("SkillProgress(500)=%v, want 0.5", got)
	}
	// Progress wraps at each level threshold.
	if got := SkillProgress(1000); got != 0 {
		t.Fatalf("SkillProgress(1000)=%v, want 0", got)
	}
	if got := SkillProgress(1250); got != 0.25 {
		t.Fatalf("SkillProgress(1250)=%v, want 0.25", got)
	}
}

func TestBestAndAttentionSkill(t *testing.T) {
	xp := map[Skill]int{
		SkillFitness: 300,
		SkillFuel:    100,
	}
	if got := BestSkill(xp); got != SkillFitness {
		t.Fatalf("BestSkill=%q, want Fitness", got)
	}
	// The four zero-XP skills tie for attention; lexicographic break picks
	// Discipline.
	if got := AttentionSkill(xp); got != SkillDiscipline {
		t.Fatalf("AttentionSkill=%q, want Discipline", got)
	}

	// All-zero map: both picks are the lexicographic first.
	if got := BestSkill(map[Skill]int{}); got != SkillDiscipline {
		t.Fatalf("BestSkill(empty)=%q, want Discipline", got)
	}
}
