package matching

import (
	"time"

	"talent-match/internal/domain/talent"
)

// MatchSkillSet aggregates per-skill scores into a normalized total score for
// an employee against an ad-hoc requirement list. Unlike requisition matching
// there is no mandatory weighting: every requirement contributes its raw
// score equally, and the total is normalized by the requirement count. An
// empty requirement list yields a zero score.
func MatchSkillSet(e talent.Employee, reqs []talent.RequiredSkill, now time.Time) CandidateMatch {
	var total float64
	matched := make([]SkillMatch, 0, len(reqs))
	missing := make([]MissingSkill, 0)

	for _, rs := range reqs {
		skill, ok := e.SkillByName(rs.Name)
		if !ok {
			missing = append(missing, MissingSkill{
				Skill:              rs.Name,
				RequiredExperience: rs.MinExperience,
				RequiredLevel:      rs.RequiredLevel,
			})
			continue
		}

		score := ScoreSkill(skill, rs)
		matched = append(matched, SkillMatch{
			Skill:              rs.Name,
			RequiredExperience: rs.MinExperience,
			EmployeeExperience: skill.ExperienceYears,
			EmployeeLevel:      skill.Proficiency,
			Score:              score,
			Status:             SkillMatchStatus,
		})
		total += score
	}

	normalized := 0.0
	if len(reqs) > 0 {
		normalized = total / float64(len(reqs)) * 100
	}

	return CandidateMatch{
		EmployeeID:        e.ID,
		EmployeeName:      e.Name,
		CurrentStatus:     e.Status,
		Location:          e.Location,
		PerformanceRating: e.PerformanceRating,
		TotalScore:        round2(normalized),
		MatchedSkills:     matched,
		MissingSkills:     missing,
		BenchDays:         BenchDays(e, now),
	}
}

// BenchDays counts how long the employee has been on bench, zero when the
// employee is not benched.
func BenchDays(e talent.Employee, now time.Time) int {
	if e.BenchStartDate == nil {
		return 0
	}
	return daysBetween(*e.BenchStartDate, now)
}
