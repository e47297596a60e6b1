package dto

import (
	"time"

	"talent-match/internal/domain/matching"
)

type SkillMatchResponse struct {
	Skill              string  `json:"skill"`
	RequiredExperience float64 `json:"required_experience"`
	EmployeeExperience float64 `json:"employee_experience"`
	EmployeeLevel      string  `json:"employee_level,omitempty"`
	Score              float64 `json:"score"`
	Status             string  `json:"status"`
}

type MissingSkillResponse struct {
	Skill              string  `json:"skill"`
	RequiredExperience float64 `json:"required_experience"`
	RequiredLevel      string  `json:"required_level"`
	Mandatory          bool    `json:"mandatory"`
}

type AvailabilityResponse struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type RequisitionMatchResponse struct {
	RequisitionID string                 `json:"requisition_id"`
	ProjectName   string                 `json:"project_name"`
	RoleTitle     string                 `json:"role_title"`
	Location      string                 `json:"location"`
	StartDate     string                 `json:"start_date"`
	TotalScore    float64                `json:"total_score"`
	SkillMatches  []SkillMatchResponse   `json:"skill_matches"`
	MissingSkills []MissingSkillResponse `json:"missing_skills"`
	Availability  AvailabilityResponse   `json:"availability"`
}

type CandidateMatchResponse struct {
	EmployeeID        string                 `json:"employee_id"`
	EmployeeName      string                 `json:"employee_name"`
	CurrentStatus     string                 `json:"current_status"`
	Location          string                 `json:"location"`
	PerformanceRating float64                `json:"performance_rating"`
	TotalScore        float64                `json:"total_score"`
	MatchedSkills     []SkillMatchResponse   `json:"matched_skills"`
	MissingSkills     []MissingSkillResponse `json:"missing_skills"`
	BenchDays         int                    `json:"bench_days"`
}

func FromSkillMatch(m matching.SkillMatch) SkillMatchResponse {
	return SkillMatchResponse{
		Skill:              m.Skill,
		RequiredExperience: m.RequiredExperience,
		EmployeeExperience: m.EmployeeExperience,
		EmployeeLevel:      string(m.EmployeeLevel),
		Score:              m.Score,
		Status:             m.Status,
	}
}

func FromMissingSkill(m matching.MissingSkill) MissingSkillResponse {
	return MissingSkillResponse{
		Skill:              m.Skill,
		RequiredExperience: m.RequiredExperience,
		RequiredLevel:      string(m.RequiredLevel),
		Mandatory:          m.Mandatory,
	}
}

func FromRequisitionMatch(m matching.RequisitionMatch) RequisitionMatchResponse {
	out := RequisitionMatchResponse{
		RequisitionID: m.RequisitionID,
		ProjectName:   m.ProjectName,
		RoleTitle:     m.RoleTitle,
		Location:      m.Location,
		StartDate:     m.StartDate.Format(time.DateOnly),
		TotalScore:    m.TotalScore,
		SkillMatches:  make([]SkillMatchResponse, 0, len(m.SkillMatches)),
		MissingSkills: make([]MissingSkillResponse, 0, len(m.MissingSkills)),
		Availability: AvailabilityResponse{
			Status:  string(m.Availability.Status),
			Details: m.Availability.Details,
		},
	}
	for _, sm := range m.SkillMatches {
		out.SkillMatches = append(out.SkillMatches, FromSkillMatch(sm))
	}
	for _, ms := range m.MissingSkills {
		out.MissingSkills = append(out.MissingSkills, FromMissingSkill(ms))
	}
	return out
}

func FromRequisitionMatches(matches []matching.RequisitionMatch) []RequisitionMatchResponse {
	out := make([]RequisitionMatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, FromRequisitionMatch(m))
	}
	return out
}

func FromCandidateMatch(m matching.CandidateMatch) CandidateMatchResponse {
	out := CandidateMatchResponse{
		EmployeeID:        m.EmployeeID,
		EmployeeName:      m.EmployeeName,
		CurrentStatus:     string(m.CurrentStatus),
		Location:          m.Location,
		PerformanceRating: m.PerformanceRating,
		TotalScore:        m.TotalScore,
		MatchedSkills:     make([]SkillMatchResponse, 0, len(m.MatchedSkills)),
		MissingSkills:     make([]MissingSkillResponse, 0, len(m.MissingSkills)),
		BenchDays:         m.BenchDays,
	}
	for _, sm := range m.MatchedSkills {
		out.MatchedSkills = append(out.MatchedSkills, FromSkillMatch(sm))
	}
	for _, ms := range m.MissingSkills {
		out.MissingSkills = append(out.MissingSkills, FromMissingSkill(ms))
	}
	return out
}

func FromCandidateMatches(matches []matching.CandidateMatch) []CandidateMatchResponse {
	out := make([]CandidateMatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, FromCandidateMatch(m))
	}
	return out
}
