package matching

import (
	"fmt"
	"time"

	"talent-match/internal/domain/talent"
)

// MatchRequisition aggregates per-skill scores into a normalized total score
// for an employee against one requisition. Mandatory skills weigh double.
// A requisition with no required skills yields a zero score, never an error.
// The now parameter anchors the availability computation.
func MatchRequisition(e talent.Employee, req talent.Requisition, now time.Time) RequisitionMatch {
	var total float64
	matches := make([]SkillMatch, 0, len(req.RequiredSkills))
	missing := make([]MissingSkill, 0)

	var mandatoryCount, optionalCount int
	for _, rs := range req.RequiredSkills {
		if rs.Mandatory {
			mandatoryCount++
		} else {
			optionalCount++
		}

		skill, ok := e.SkillByName(rs.Name)
		if !ok {
			missing = append(missing, MissingSkill{
				Skill:              rs.Name,
				RequiredExperience: rs.MinExperience,
				RequiredLevel:      rs.RequiredLevel,
				Mandatory:          rs.Mandatory,
			})
			continue
		}

		score := ScoreSkill(skill, rs)
		matches = append(matches, SkillMatch{
			Skill:              rs.Name,
			RequiredExperience: rs.MinExperience,
			EmployeeExperience: skill.ExperienceYears,
			Score:              score,
			Status:             SkillMatchStatus,
		})

		weight := 1.0
		if rs.Mandatory {
			weight = 2.0
		}
		total += score * weight
	}

	maxScore := float64(2*mandatoryCount + optionalCount)
	normalized := 0.0
	if maxScore > 0 {
		normalized = total / maxScore * 100
	}

	return RequisitionMatch{
		RequisitionID: req.ID,
		ProjectName:   req.ProjectName,
		RoleTitle:     req.RoleTitle,
		Location:      req.Location,
		StartDate:     req.StartDate,
		TotalScore:    round2(normalized),
		SkillMatches:  matches,
		MissingSkills: missing,
		Availability:  CheckAvailability(e, now),
	}
}

// CheckAvailability classifies when the employee could join a new project.
// The days-until figure for TRANSITIONING employees is not clamped and goes
// negative once the project end date has passed.
func CheckAvailability(e talent.Employee, now time.Time) Availability {
	switch e.Status {
	case talent.StatusBench:
		return Availability{Status: ImmediatelyAvailable, Details: "On bench"}
	case talent.StatusNoticePeriod:
		details := "Notice period in progress"
		if e.ProjectEndDate != nil {
			details = fmt.Sprintf("Notice period ends %s", e.ProjectEndDate.Format(time.DateOnly))
		}
		return Availability{Status: AvailableSoon, Details: details}
	case talent.StatusTransitioning:
		days := 0
		if e.ProjectEndDate != nil {
			days = daysBetween(now, *e.ProjectEndDate)
		}
		return Availability{Status: AvailableSoon, Details: fmt.Sprintf("Available in %d days", days)}
	default:
		return Availability{Status: NotAvailable, Details: "Currently on active project"}
	}
}

// daysBetween counts whole calendar days from one date to another, negative
// when to precedes from.
func daysBetween(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
