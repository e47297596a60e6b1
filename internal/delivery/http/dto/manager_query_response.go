package dto

import (
	"talent-match/internal/domain/talent"
	"talent-match/internal/usecase"
)

type RequiredSkillResponse struct {
	Skill         string  `json:"skill"`
	MinExperience float64 `json:"min_experience"`
	RequiredLevel string  `json:"required_level"`
	Mandatory     bool    `json:"mandatory"`
}

type SearchSummaryResponse struct {
	TotalEmployees int    `json:"total_employees"`
	HighMatches    int    `json:"high_matches"`
	MediumMatches  int    `json:"medium_matches"`
	LowMatches     int    `json:"low_matches"`
	Recommendation string `json:"recommendation"`
}

type StaffingSearchResponse struct {
	SearchCriteria      []RequiredSkillResponse  `json:"search_criteria"`
	TotalEmployeesFound int                      `json:"total_employees_found"`
	Matches             []CandidateMatchResponse `json:"matches"`
	Summary             SearchSummaryResponse    `json:"summary"`
}

func FromStaffingSearch(res usecase.StaffingSearchResult) StaffingSearchResponse {
	criteria := make([]RequiredSkillResponse, 0, len(res.SearchCriteria))
	for _, r := range res.SearchCriteria {
		criteria = append(criteria, fromRequiredSkill(r))
	}
	return StaffingSearchResponse{
		SearchCriteria:      criteria,
		TotalEmployeesFound: res.TotalEmployeesFound,
		Matches:             FromCandidateMatches(res.Matches),
		Summary: SearchSummaryResponse{
			TotalEmployees: res.Summary.TotalEmployees,
			HighMatches:    res.Summary.HighMatches,
			MediumMatches:  res.Summary.MediumMatches,
			LowMatches:     res.Summary.LowMatches,
			Recommendation: res.Summary.Recommendation,
		},
	}
}

func fromRequiredSkill(r talent.RequiredSkill) RequiredSkillResponse {
	return RequiredSkillResponse{
		Skill:         r.Name,
		MinExperience: r.MinExperience,
		RequiredLevel: string(r.RequiredLevel),
		Mandatory:     r.Mandatory,
	}
}
