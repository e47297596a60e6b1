package dto

import "talent-match/internal/usecase"

// EmployeeQueryResponse wraps whichever payload the employee query routed
// to; Type names the one field that is set.
type EmployeeQueryResponse struct {
	Type        string                  `json:"type"`
	Positions   *PositionSearchResponse `json:"positions,omitempty"`
	SkillSearch *SkillSearchResponse    `json:"skill_search,omitempty"`
	Help        *HelpResponse           `json:"help,omitempty"`
}

type ManagerQueryResponse struct {
	Type     string                  `json:"type"`
	Staffing *StaffingSearchResponse `json:"staffing_search,omitempty"`
	Help     *HelpResponse           `json:"help,omitempty"`
}

func FromEmployeeQuery(res usecase.EmployeeQueryResult) EmployeeQueryResponse {
	out := EmployeeQueryResponse{Type: string(res.Kind)}
	if res.Positions != nil {
		v := FromPositionSearch(*res.Positions)
		out.Positions = &v
	}
	if res.SkillSearch != nil {
		v := FromSkillSearch(*res.SkillSearch)
		out.SkillSearch = &v
	}
	if res.Help != nil {
		v := FromHelp(*res.Help)
		out.Help = &v
	}
	return out
}

func FromManagerQuery(res usecase.ManagerQueryResult) ManagerQueryResponse {
	out := ManagerQueryResponse{Type: string(res.Kind)}
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
