package dto

import "talent-match/internal/ai"

type AgentSelectionResponse struct {
	SelectedAgent string  `json:"selected_agent"`
	Confidence    float64 `json:"confidence"`
	Reasoning     string  `json:"reasoning"`
}

// AssistantQueryResponse carries either the model's free-text answer or, on
// fallback, the deterministic payload of the agent that handled the query.
type AssistantQueryResponse struct {
	SelectedAgent string                  `json:"selected_agent"`
	AgentMetadata AgentSelectionResponse  `json:"agent_metadata"`
	Response      string                  `json:"response,omitempty"`
	Fallback      bool                    `json:"fallback"`
	Positions     *PositionSearchResponse `json:"positions,omitempty"`
	SkillSearch   *SkillSearchResponse    `json:"skill_search,omitempty"`
	Staffing      *StaffingSearchResponse `json:"staffing_search,omitempty"`
	Help          *HelpResponse           `json:"help,omitempty"`
}

func FromAssistantResponse(res ai.Response) AssistantQueryResponse {
	out := AssistantQueryResponse{
		SelectedAgent: res.SelectedAgent,
		AgentMetadata: AgentSelectionResponse{
			SelectedAgent: res.AgentMetadata.SelectedAgent,
			Confidence:    res.AgentMetadata.Confidence,
			Reasoning:     res.AgentMetadata.Reasoning,
		},
		Response: res.LLMResponse,
		Fallback: res.Fallback,
	}
	if res.Positions != nil {
		v := FromPositionSearch(*res.Positions)
		out.Positions = &v
	}
	if res.SkillSearch != nil {
		v := FromSkillSearch(*res.SkillSearch)
		out.SkillSearch = &v
	}
	if res.Staffing != nil {
		v := FromStaffingSearch(*res.Staffing)
		out.Staffing = &v
	}
	if res.Help != nil {
		v := FromHelp(*res.Help)
		out.Help = &v
	}
	return out
}
