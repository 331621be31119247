package engine

// Rank is one of ten named tiers unlocked by cumulative XP.
type Rank struct {
	ID         int
	Name       string
	RequiredXP int
}

// RankTable is ordered by ascending threshold. These are the thresholds used
// by the progression view.
var RankTable = []Rank{
	{ID: 1, Name: "Seeker", RequiredXP: 0},
	{ID: 2, Name: "Initiate", RequiredXP: 2000},
	{ID: 3, Name: "Pioneer", RequiredXP: 4000},
	{ID: 4, Name: "Explorer", RequiredXP: 8000},
	{ID: 5, Name: "Challenger", RequiredXP: 12000},
	{ID: 6, Name: "Refiner", RequiredXP: 16000},
	{ID: 7, Name: "Master", RequiredXP: 18000},
	{ID: 8, Name: "Conquerer", RequiredXP: 19000},
	{ID: 9, Name: "Ascendant", RequiredXP: 19500},
	{ID: 10, Name: "Transcendent", RequiredXP: 19800},
}

// JourneyGoalXP is the full-journey denominator for JourneyProgress.
const JourneyGoalXP = 20100

// CurrentRank returns the highest rank whose threshold is at or below
// totalXP; negative totals clamp to the lowest rank.
func CurrentRank(totalXP int) Rank {
	cur := RankTable[0]
	for _, r := range RankTable {
		if r.RequiredXP <= totalXP {
			cur = r
		}
	}
	return cur
}

// NextRank returns the rank with the smallest threshold strictly above
// totalXP, or the max rank when already there.
func NextRank(totalXP int) Rank {
	for _, r := range RankTable {
		if r.RequiredXP > totalXP {
			return r
		}
	}
	return RankTable[len(RankTable)-1]
}

// ProgressToNextRank reports the fraction of the current rank band covered,
// clamped to [0,1]. At the max rank the band is empty and progress is 0.
func ProgressToNextRank(totalXP int) float64 {
	cur := CurrentRank(totalXP)
	next := NextRank(totalXP)
	span := next.RequiredXP - cur.RequiredXP
	if span <= 0 {
		return 0
	}
	return clamp01(float64(totalXP-cur.RequiredXP) / float64(span))
}

// JourneyProgress reports overall progress toward the full journey goal.
func JourneyProgress(totalXP int) float64 {
	return clamp01(float64(totalXP) / float64(JourneyGoalXP))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
