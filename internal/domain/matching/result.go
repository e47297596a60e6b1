package matching

import (
	"time"

	"talent-match/internal/domain/talent"
)

// SkillMatchStatus marks a requirement the employee satisfies by name.
const SkillMatchStatus = "MATCHED"

// SkillMatch records one satisfied requirement inside a match result.
// EmployeeLevel is populated only on the skill-set (manager search) path.
type SkillMatch struct {
	Skill              string
	RequiredExperience float64
	EmployeeExperience float64
	EmployeeLevel      talent.Level
	Score              float64
	Status             string
}

// MissingSkill records one requirement the employee lacks entirely.
// Mandatory is meaningful only on the requisition path; the skill-set
// matcher ignores mandatory flags.
type MissingSkill struct {
	Skill              string
	RequiredExperience float64
	RequiredLevel      talent.Level
	Mandatory          bool
}

// AvailabilityStatus classifies when an employee could join a requisition.
type AvailabilityStatus string

const (
	ImmediatelyAvailable AvailabilityStatus = "IMMEDIATELY_AVAILABLE"
	AvailableSoon        AvailabilityStatus = "AVAILABLE_SOON"
	NotAvailable         AvailabilityStatus = "NOT_AVAILABLE"
)

type Availability struct {
	Status  AvailabilityStatus
	Details string
}

// RequisitionMatch is the result of matching one employee against one
// requisition. TotalScore is normalized to [0, 100] and rounded to two
// decimals.
type RequisitionMatch struct {
	RequisitionID string
	ProjectName   string
	RoleTitle     string
	Location      string
	StartDate     time.Time
	TotalScore    float64
	SkillMatches  []SkillMatch
	MissingSkills []MissingSkill
	Availability  Availability
}

// CandidateMatch is the result of matching one employee against an ad-hoc
// requirement list (manager search).
type CandidateMatch struct {
	EmployeeID        string
	EmployeeName      string
	CurrentStatus     talent.Status
	Location          string
	PerformanceRating float64
	TotalScore        float64
	MatchedSkills     []SkillMatch
	MissingSkills     []MissingSkill
	BenchDays         int
}
