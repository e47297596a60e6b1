package matching

import (
	"math"

	"talent-match/internal/domain/talent"
)

// ScoreSkill computes the compatibility score for a single (employee skill,
// required skill) pair, normalized to [0, 1].
//
// Experience contributes up to 70 points: the experience ratio is capped at
// 2x the required minimum and worth 35 points per unit. A requirement with
// zero minimum experience grants the full capped ratio rather than dividing
// by zero. Proficiency contributes up to 30 points: the award is the lower of
// the employee's and the requirement's level score, so exceeding the required
// level earns no bonus.
func ScoreSkill(skill talent.Skill, req talent.RequiredSkill) float64 {
	ratio := 2.0
	if req.MinExperience > 0 {
		ratio = math.Min(skill.ExperienceYears/req.MinExperience, 2.0)
	}
	expPoints := math.Min(ratio*35, 70)

	lvlPoints := min(skill.Proficiency.Score(), req.RequiredLevel.RequiredScore())

	return (expPoints + float64(lvlPoints)) / 100.0
}

// round2 rounds a score to two decimals for presentation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
