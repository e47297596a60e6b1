package usecase

import (
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/recommend"
	"talent-match/internal/domain/talent"
)

// PositionSearchResult answers "which open positions match my skills".
// Matches carry at most the top five ranked requisitions; TotalMatches counts
// every requisition that scored above zero.
type PositionSearchResult struct {
	Employee        string
	CurrentStatus   talent.Status
	TotalMatches    int
	Matches         []matching.RequisitionMatch
	Recommendations []recommend.TrainingRecommendation
}

// SkillSearchResult answers "which positions need these specific skills".
type SkillSearchResult struct {
	Employee          string
	SearchedSkills    []string
	MatchingPositions []matching.RequisitionMatch
	SkillGapAnalysis  recommend.GapAnalysis
}

// StaffingSearchResult answers a manager's "find employees with these
// skills" query.
type StaffingSearchResult struct {
	SearchCriteria      []talent.RequiredSkill
	TotalEmployeesFound int
	Matches             []matching.CandidateMatch
	Summary             recommend.SearchSummary
}

// HelpMessage is the guidance payload returned when a query cannot be routed
// to a search, or when no skills could be parsed from it.
type HelpMessage struct {
	Response string
	Employee string
	Status   talent.Status
	UserRole string
}

type QueryKind string

const (
	QueryKindPositions   QueryKind = "positions"
	QueryKindSkillSearch QueryKind = "skill_search"
	QueryKindStaffing    QueryKind = "staffing_search"
	QueryKindHelp        QueryKind = "help"
)

// EmployeeQueryResult is the routed outcome of a conversational employee
// query. Exactly one of the payload fields matching Kind is set.
type EmployeeQueryResult struct {
	Kind        QueryKind
	Positions   *PositionSearchResult
	SkillSearch *SkillSearchResult
	Help        *HelpMessage
}

// ManagerQueryResult is the routed outcome of a conversational manager query.
type ManagerQueryResult struct {
	Kind     QueryKind
	Staffing *StaffingSearchResult
	Help     *HelpMessage
}
