package talent

import (
	"strings"
	"time"
)

// Status is an employee lifecycle status.
type Status string

const (
	StatusActive        Status = "ACTIVE"
	StatusBench         Status = "BENCH"
	StatusTransitioning Status = "TRANSITIONING"
	StatusNoticePeriod  Status = "NOTICE_PERIOD"
)

// Available reports whether the employee can be considered for internal
// staffing at all. ACTIVE employees are excluded before scoring.
func (s Status) Available() bool {
	switch s {
	case StatusBench, StatusTransitioning, StatusNoticePeriod:
		return true
	default:
		return false
	}
}

// Level is a skill proficiency level.
type Level string

const (
	LevelBeginner     Level = "BEGINNER"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelAdvanced     Level = "ADVANCED"
	LevelExpert       Level = "EXPERT"
)

// Score maps a proficiency level to its fixed ordinal score. EXPERT and
// ADVANCED both cap at 30: proficiency never contributes more than 30 points.
// Unknown levels score 0.
func (l Level) Score() int {
	switch l {
	case LevelBeginner:
		return 10
	case LevelIntermediate:
		return 20
	case LevelAdvanced:
		return 30
	case LevelExpert:
		return 30
	default:
		return 0
	}
}

// RequiredScore is the ordinal score of a level appearing on the requirement
// side. An unknown required level defaults to 15.
func (l Level) RequiredScore() int {
	if s := l.Score(); s > 0 {
		return s
	}
	return 15
}

// Skill is one entry of an employee's skill profile.
type Skill struct {
	Name            string
	Category        string
	ExperienceYears float64
	Proficiency     Level
}

// RequiredSkill is one entry of a requisition's (or ad-hoc query's)
// requirement list.
type RequiredSkill struct {
	Name          string
	MinExperience float64
	RequiredLevel Level
	Mandatory     bool
}

// Employee is a read-only snapshot record. BenchStartDate is set iff the
// status is BENCH; ProjectEndDate is set for TRANSITIONING and NOTICE_PERIOD.
type Employee struct {
	ID                string
	Name              string
	Email             string
	Status            Status
	CurrentProject    string
	ProjectEndDate    *time.Time
	BenchStartDate    *time.Time
	Skills            []Skill
	PerformanceRating float64
	Location          string
}

// SkillByName looks up a skill by case-insensitive name match.
func (e Employee) SkillByName(name string) (Skill, bool) {
	for _, s := range e.Skills {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Skill{}, false
}

// RequisitionStatus is the lifecycle status of a requisition. Only OPEN
// requisitions participate in matching.
type RequisitionStatus string

const (
	RequisitionOpen   RequisitionStatus = "OPEN"
	RequisitionClosed RequisitionStatus = "CLOSED"
)

type Requisition struct {
	ID              string
	ProjectName     string
	RoleTitle       string
	Status          RequisitionStatus
	StartDate       time.Time
	RequiredSkills  []RequiredSkill
	Location        string
	ExperienceLevel string
	HiringType      string
}

// RequiresSkill reports whether the requisition lists the named skill,
// compared case-insensitively.
func (r Requisition) RequiresSkill(name string) bool {
	for _, rs := range r.RequiredSkills {
		if strings.EqualFold(rs.Name, name) {
			return true
		}
	}
	return false
}

// OntologyEntry describes a skill's category and its related skills.
type OntologyEntry struct {
	Category      string
	RelatedSkills []string
}
