package dto

import (
	"talent-match/internal/domain/recommend"
	"talent-match/internal/usecase"
)

type TrainingRecommendationResponse struct {
	Skill              string   `json:"skill"`
	RequiredExperience float64  `json:"required_experience"`
	RequiredLevel      string   `json:"required_level"`
	Priority           string   `json:"priority"`
	SuggestedTraining  []string `json:"suggested_training"`
}

type PositionSearchResponse struct {
	Employee        string                           `json:"employee"`
	CurrentStatus   string                           `json:"current_status"`
	TotalMatches    int                              `json:"total_matches"`
	Matches         []RequisitionMatchResponse       `json:"matches"`
	Recommendations []TrainingRecommendationResponse `json:"recommendations"`
}

type SkillGapResponse struct {
	Skill          string `json:"skill"`
	Status         string `json:"status"`
	Recommendation string `json:"recommendation"`
	Priority       string `json:"priority"`
}

type GapAnalysisResponse struct {
	SkillGaps []SkillGapResponse `json:"skill_gaps"`
	TotalGaps int                `json:"total_gaps"`
}

type SkillSearchResponse struct {
	Employee          string                     `json:"employee"`
	SearchedSkills    []string                   `json:"searched_skills"`
	MatchingPositions []RequisitionMatchResponse `json:"matching_positions"`
	SkillGapAnalysis  GapAnalysisResponse        `json:"skill_gap_analysis"`
}

type HelpResponse struct {
	Response string `json:"response"`
	Employee string `json:"employee,omitempty"`
	Status   string `json:"status,omitempty"`
	UserRole string `json:"user_role,omitempty"`
}

func FromPositionSearch(res usecase.PositionSearchResult) PositionSearchResponse {
	out := PositionSearchResponse{
		Employee:        res.Employee,
		CurrentStatus:   string(res.CurrentStatus),
		TotalMatches:    res.TotalMatches,
		Matches:         FromRequisitionMatches(res.Matches),
		Recommendations: make([]TrainingRecommendationResponse, 0, len(res.Recommendations)),
	}
	for _, r := range res.Recommendations {
		out.Recommendations = append(out.Recommendations, fromTrainingRecommendation(r))
	}
	return out
}

func FromSkillSearch(res usecase.SkillSearchResult) SkillSearchResponse {
	gaps := make([]SkillGapResponse, 0, len(res.SkillGapAnalysis.SkillGaps))
	for _, g := range res.SkillGapAnalysis.SkillGaps {
		gaps = append(gaps, SkillGapResponse{
			Skill:          g.Skill,
			Status:         g.Status,
			Recommendation: g.Recommendation,
			Priority:       g.Priority,
		})
	}
	return SkillSearchResponse{
		Employee:          res.Employee,
		SearchedSkills:    res.SearchedSkills,
		MatchingPositions: FromRequisitionMatches(res.MatchingPositions),
		SkillGapAnalysis: GapAnalysisResponse{
			SkillGaps: gaps,
			TotalGaps: res.SkillGapAnalysis.TotalGaps,
		},
	}
}

func FromHelp(msg usecase.HelpMessage) HelpResponse {
	return HelpResponse{
		Response: msg.Response,
		Employee: msg.Employee,
		Status:   string(msg.Status),
		UserRole: msg.UserRole,
	}
}

func fromTrainingRecommendation(r recommend.TrainingRecommendation) TrainingRecommendationResponse {
	return TrainingRecommendationResponse{
		Skill:              r.Skill,
		RequiredExperience: r.RequiredExperience,
		RequiredLevel:      string(r.RequiredLevel),
		Priority:           r.Priority,
		SuggestedTraining:  r.SuggestedTraining,
	}
}
