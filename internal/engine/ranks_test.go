package engine

import "testing"

func TestCurrentRankBoundaries(t *testing.T) {
	cases := []struct {
		xp   int
		want string
	}{
		{0, "Seeker"},
		{1999, "Seeker"},
		{2000, "Initiate"},
		{7999, "Pioneer"},
		{8000, "Explorer"},
		{19799, "Ascendant"},
		{19800, "Transcendent"},
		{20000, "Transcendent"},
		{-5, "Seeker"},
	}
	for _, c := range cases {
		if got := CurrentRank(c.xp); got.Name != c.want {
			t.Fatalf("CurrentRank(%d)=%q, want %q", c.xp, got.Name, c.want)
		}
	}
}

func TestNextRank(t *testing.T) {
	if got := NextRank(0); got.Name != "Initiate" {
		t.Fatalf("NextRank(0)=%q, want Initiate", got.Name)
	}
	if got := NextRank(19500); got.Name != "Transcendent" {
		t.Fatalf("NextRank(19500)=%q, want Transcendent", got.Name)
	}
	// At max rank the next rank is the max rank itself.
	if got := NextRank(25000); got.Name != "Transcendent" {
		t.Fatalf("NextRank(25000)=%q, want Transcendent", got.Name)
	}
}

func TestProgressToNextRank(t *testing.T) {
	if got := ProgressToNextRank(3000); got != 0.5 {
		t.Fatalf("ProgressToNextRank(3000)=%v, want 0.5", got)
	}
	if got := ProgressToNextRank(0); got != 0 {
		t.Fatalf("ProgressToNextRank(0)=%v, want 0", got)
	}
	// Empty band at max rank.
	if got := ProgressToNextRank(25000); got != 0 {
		t.Fatalf("ProgressToNextRank(25000)=%v, want 0", got)
	}
}

func TestJourneyProgressClamp(t *testing.T) {
	if got := JourneyProgress(25000); got != 1.0 {
		t.Fatalf("JourneyProgress(25000)=%v, want 1.0", got)
	}
	if got := JourneyProgress(0); got != 0 {
		t.Fatalf("JourneyProgress(0)=%v, want 0", got)
	}
	if got := JourneyProgress(JourneyGoalXP / 2); got <= 0 || got >= 1 {
		t.Fatalf("JourneyProgress(mid)=%v, want in (0,1)", got)
	}
}
