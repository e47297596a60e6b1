package recommend

import (
	"fmt"
	"strings"

	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/talent"
)

const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"

	GapStatusMissing = "MISSING"
)

// Score thresholds for bucketing candidate matches.
const (
	highMatchThreshold   = 80.0
	mediumMatchThreshold = 50.0
)

// TrainingRecommendation is a skill-upgrade suggestion derived from a
// mandatory skill the employee lacks in a top-ranked requisition match.
type TrainingRecommendation struct {
	Skill              string
	RequiredExperience float64
	RequiredLevel      talent.Level
	Priority           string
	SuggestedTraining  []string
}

// SkillRecommendations collects every mandatory missing skill from the top
// three ranked requisition matches, de-duplicated by skill name preserving
// first-seen order.
func SkillRecommendations(ranked []matching.RequisitionMatch) []TrainingRecommendation {
	top := ranked
	if len(top) > 3 {
		top = top[:3]
	}

	seen := make(map[string]struct{})
	out := make([]TrainingRecommendation, 0)
	for _, m := range top {
		for _, ms := range m.MissingSkills {
			if !ms.Mandatory {
				continue
			}
			if _, ok := seen[ms.Skill]; ok {
				continue
			}
			seen[ms.Skill] = struct{}{}
			out = append(out, TrainingRecommendation{
				Skill:              ms.Skill,
				RequiredExperience: ms.RequiredExperience,
				RequiredLevel:      ms.RequiredLevel,
				Priority:           PriorityHigh,
				SuggestedTraining:  TrainingSuggestions(ms.Skill),
			})
		}
	}
	return out
}

var trainingCatalog = map[string][]string{
	"Java":    {"Java Certification", "Spring Boot Fundamentals", "Microservices Architecture"},
	"React":   {"React Advanced Patterns", "State Management with Redux", "React Testing"},
	"Angular": {"Angular Framework Deep Dive", "RxJS Fundamentals", "Angular Performance"},
	"Python":  {"Python for Web Development", "Django REST Framework", "Python Design Patterns"},
	"SQL":     {"Advanced SQL Queries", "Database Optimization", "SQL Performance Tuning"},
}

// TrainingSuggestions returns the curated course list for a skill, falling
// back to a generic pair when the skill has no catalog entry.
func TrainingSuggestions(skill string) []string {
	if courses, ok := trainingCatalog[skill]; ok {
		out := make([]string, len(courses))
		copy(out, courses)
		return out
	}
	return []string{
		fmt.Sprintf("%s Fundamentals", skill),
		fmt.Sprintf("Advanced %s Concepts", skill),
	}
}

// SkillGap marks one queried skill the employee lacks.
type SkillGap struct {
	Skill          string
	Status         string
	Recommendation string
	Priority       string
}

type GapAnalysis struct {
	SkillGaps []SkillGap
	TotalGaps int
}

// AnalyzeSkillGaps reports which of the queried skill keywords the employee
// lacks. Keywords are matched by exact lowercase name equality against the
// employee's skill names, mirroring the keyword extractor's vocabulary.
func AnalyzeSkillGaps(e talent.Employee, queried []string) GapAnalysis {
	gaps := make([]SkillGap, 0)
	for _, keyword := range queried {
		if hasSkillNamed(e, keyword) {
			continue
		}
		gaps = append(gaps, SkillGap{
			Skill:          keyword,
			Status:         GapStatusMissing,
			Recommendation: fmt.Sprintf("Consider learning %s to expand opportunities", keyword),
			Priority:       PriorityMedium,
		})
	}
	return GapAnalysis{SkillGaps: gaps, TotalGaps: len(gaps)}
}

func hasSkillNamed(e talent.Employee, keyword string) bool {
	for _, s := range e.Skills {
		if strings.ToLower(s.Name) == keyword {
			return true
		}
	}
	return false
}

// SearchSummary buckets candidate matches by score and carries the derived
// staffing recommendation.
type SearchSummary struct {
	TotalEmployees int
	HighMatches    int
	MediumMatches  int
	LowMatches     int
	Recommendation string
}

// SummarizeSearch buckets matches into high (>=80), medium (50-79.99) and
// low (<50) by total score and derives a staffing recommendation.
func SummarizeSearch(matches []matching.CandidateMatch) SearchSummary {
	s := SearchSummary{TotalEmployees: len(matches)}
	for _, m := range matches {
		switch {
		case m.TotalScore >= highMatchThreshold:
			s.HighMatches++
		case m.TotalScore >= mediumMatchThreshold:
			s.MediumMatches++
		default:
			s.LowMatches++
		}
	}
	s.Recommendation = staffingRecommendation(s)
	return s
}

func staffingRecommendation(s SearchSummary) string {
	switch {
	case s.TotalEmployees == 0:
		return "No suitable internal candidates found. Consider external hiring."
	case s.HighMatches > 0:
		return fmt.Sprintf("Found %d excellent matches. Recommend proceeding with internal hiring.", s.HighMatches)
	case s.MediumMatches > 0:
		return fmt.Sprintf("Found %d potential matches with some skill gaps. Consider training or external backup.", s.MediumMatches)
	default:
		return "Limited internal matches. Strongly recommend external hiring with internal backup plan."
	}
}
