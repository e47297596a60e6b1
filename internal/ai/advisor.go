package ai

import (
	"context"
	_ "embed"
	"encoding/json"
	"strings"

	"talent-match/internal/domain/talent"
	"talent-match/internal/usecase"

	"go.uber.org/zap"
)

// Agent names the advisor can route a query to.
const (
	AgentEmployeeAdvisor    = "employee_advisor"
	AgentStaffingConsultant = "staffing_consultant"
	AgentSkillAnalyst       = "skill_analyst"
	AgentGeneralAssistant   = "general_assistant"
)

//go:embed prompts/selector.md
var selectorPrompt string

//go:embed prompts/employee_advisor.md
var employeeAdvisorPrompt string

//go:embed prompts/staffing_consultant.md
var staffingConsultantPrompt string

//go:embed prompts/skill_analyst.md
var skillAnalystPrompt string

//go:embed prompts/general_assistant.md
var generalAssistantPrompt string

// ContentGenerator produces model output for a prompt.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// SnapshotStore is the read-only data surface the advisor needs to build
// prompt context.
type SnapshotStore interface {
	EmployeeByID(id string) (talent.Employee, error)
	Employees() []talent.Employee
	OpenRequisitions() []talent.Requisition
	Ontology() map[string]talent.OntologyEntry
}

// AgentSelection is the routing decision, either parsed from the model or
// produced by the rule-based fallback.
type AgentSelection struct {
	SelectedAgent string
	Confidence    float64
	Reasoning     string
}

// Response is the advisor's answer. LLMResponse carries free text when the
// model produced one; on fallback the structured deterministic payload of
// the matching agent is set instead.
type Response struct {
	SelectedAgent string
	AgentMetadata AgentSelection
	LLMResponse   string
	Fallback      bool

	Positions   *usecase.PositionSearchResult
	SkillSearch *usecase.SkillSearchResult
	Staffing    *usecase.StaffingSearchResult
	Help        *usecase.HelpMessage
}

// Advisor routes conversational queries through an LLM-selected agent. Every
// agent degrades to the shared deterministic matchers when the model is
// unreachable or returns garbage; the scoring contract never depends on the
// model.
type Advisor struct {
	generator ContentGenerator
	snapshot  SnapshotStore
	employees usecase.EmployeeSearchUsecase
	staffing  usecase.StaffingSearchUsecase
	logger    *zap.Logger
}

func NewAdvisor(
	generator ContentGenerator,
	snapshot SnapshotStore,
	employees usecase.EmployeeSearchUsecase,
	staffing usecase.StaffingSearchUsecase,
	logger *zap.Logger,
) *Advisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Advisor{
		generator: generator,
		snapshot:  snapshot,
		employees: employees,
		staffing:  staffing,
		logger:    logger,
	}
}

// ProcessQuery selects an agent for the query and runs it.
func (a *Advisor) ProcessQuery(ctx context.Context, userRole, query, employeeID string) (Response, error) {
	selection := a.selectAgent(ctx, userRole, query, employeeID)

	var resp Response
	var err error
	switch selection.SelectedAgent {
	case AgentEmployeeAdvisor:
		resp, err = a.runEmployeeAdvisor(ctx, query, employeeID)
	case AgentStaffingConsultant:
		resp, err = a.runStaffingConsultant(ctx, userRole, query)
	case AgentSkillAnalyst:
		resp, err = a.runSkillAnalyst(ctx, query, employeeID)
	default:
		resp, err = a.runGeneralAssistant(ctx, userRole, query)
	}
	if err != nil {
		return Response{}, err
	}

	resp.SelectedAgent = selection.SelectedAgent
	resp.AgentMetadata = selection
	return resp, nil
}

// selectAgent asks the model to pick an agent, falling back to keyword rules
// on any failure.
func (a *Advisor) selectAgent(ctx context.Context, userRole, query, employeeID string) AgentSelection {
	prompt := renderPrompt(selectorPrompt, map[string]string{
		"USER_ROLE":   userRole,
		"EMPLOYEE_ID": orNotProvided(employeeID),
		"QUERY":       query,
	})

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		a.logger.Warn("agent selection failed, using rule-based fallback", zap.Error(err))
		return fallbackSelection(userRole, query)
	}

	selection, err := parseAgentSelection(raw)
	if err != nil || !knownAgent(selection.SelectedAgent) {
		a.logger.Warn("agent selection unparseable, using rule-based fallback",
			zap.Error(err), zap.String("selected_agent", selection.SelectedAgent))
		return fallbackSelection(userRole, query)
	}
	return selection
}

func (a *Advisor) runEmployeeAdvisor(ctx context.Context, query, employeeID string) (Response, error) {
	prompt := renderPrompt(employeeAdvisorPrompt, map[string]string{
		"EMPLOYEE_JSON":     a.employeeJSON(employeeID),
		"REQUISITIONS_JSON": marshalForPrompt(a.snapshot.OpenRequisitions()),
		"QUERY":             query,
	})

	if text, err := a.generator.GenerateContent(ctx, prompt); err == nil {
		return Response{LLMResponse: text}, nil
	} else {
		a.logger.Warn("employee advisor generation failed, using deterministic fallback", zap.Error(err))
	}

	res, err := a.employees.FindPositions(ctx, employeeID)
	if err != nil {
		return Response{}, err
	}
	return Response{Fallback: true, Positions: &res}, nil
}

func (a *Advisor) runStaffingConsultant(ctx context.Context, userRole, query string) (Response, error) {
	prompt := renderPrompt(staffingConsultantPrompt, map[string]string{
		"EMPLOYEES_JSON": marshalForPrompt(availableEmployees(a.snapshot.Employees())),
		"QUERY":          query,
	})

	if text, err := a.generator.GenerateContent(ctx, prompt); err == nil {
		return Response{LLMResponse: text}, nil
	} else {
		a.logger.Warn("staffing consultant generation failed, using deterministic fallback", zap.Error(err))
	}

	routed, err := a.staffing.ProcessQuery(ctx, userRole, query)
	if err != nil {
		return Response{}, err
	}
	return Response{Fallback: true, Staffing: routed.Staffing, Help: routed.Help}, nil
}

func (a *Advisor) runSkillAnalyst(ctx context.Context, query, employeeID string) (Response, error) {
	prompt := renderPrompt(skillAnalystPrompt, map[string]string{
		"EMPLOYEE_JSON": a.employeeJSON(employeeID),
		"ONTOLOGY_JSON": marshalForPrompt(a.snapshot.Ontology()),
		"QUERY":         query,
	})

	if text, err := a.generator.GenerateContent(ctx, prompt); err == nil {
		return Response{LLMResponse: text}, nil
	} else {
		a.logger.Warn("skill analyst generation failed, using deterministic fallback", zap.Error(err))
	}

	res, err := a.employees.FindPositionsWithSkills(ctx, employeeID, query)
	if err != nil {
		return Response{}, err
	}
	return Response{Fallback: true, SkillSearch: &res}, nil
}

func (a *Advisor) runGeneralAssistant(ctx context.Context, userRole, query string) (Response, error) {
	prompt := renderPrompt(generalAssistantPrompt, map[string]string{
		"USER_ROLE": userRole,
		"QUERY":     query,
	})

	if text, err := a.generator.GenerateContent(ctx, prompt); err == nil {
		return Response{LLMResponse: text}, nil
	} else {
		a.logger.Warn("general assistant generation failed, using static fallback", zap.Error(err))
	}

	return Response{Fallback: true, Help: &usecase.HelpMessage{
		Response: "I can help with finding open positions, checking positions for specific skills, and finding employees by skill requirements.",
		UserRole: userRole,
	}}, nil
}

// fallbackSelection applies keyword rules per user role when the model
// cannot decide.
func fallbackSelection(userRole, query string) AgentSelection {
	lower := strings.ToLower(query)

	switch userRole {
	case "EMPLOYEE", "CONSULTANT":
		if containsAny(lower, "position", "job", "opportunity", "role", "project") {
			return AgentSelection{SelectedAgent: AgentEmployeeAdvisor, Confidence: 0.8, Reasoning: "Employee seeking positions"}
		}
		if containsAny(lower, "skill", "training", "learn", "improve") {
			return AgentSelection{SelectedAgent: AgentSkillAnalyst, Confidence: 0.7, Reasoning: "Skill-related query"}
		}
	case "MANAGER", "TSC_CONSULTANT":
		if containsAny(lower, "find", "search", "employee", "resource", "staff") {
			return AgentSelection{SelectedAgent: AgentStaffingConsultant, Confidence: 0.9, Reasoning: "Staffing search query"}
		}
	}

	return AgentSelection{SelectedAgent: AgentGeneralAssistant, Confidence: 0.6, Reasoning: "General query"}
}

func knownAgent(name string) bool {
	switch name {
	case AgentEmployeeAdvisor, AgentStaffingConsultant, AgentSkillAnalyst, AgentGeneralAssistant:
		return true
	default:
		return false
	}
}

func (a *Advisor) employeeJSON(employeeID string) string {
	if employeeID == "" {
		return "No data"
	}
	e, err := a.snapshot.EmployeeByID(employeeID)
	if err != nil {
		return "No data"
	}
	return marshalForPrompt(e)
}

func availableEmployees(all []talent.Employee) []talent.Employee {
	out := make([]talent.Employee, 0, len(all))
	for _, e := range all {
		if e.Status.Available() {
			out = append(out, e)
		}
	}
	return out
}

func marshalForPrompt(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "No data"
	}
	return string(b)
}

func renderPrompt(template string, vars map[string]string) string {
	out := template
	for k, v := range vars {
		out = strings.ReplaceAll(out, "{{"+k+"}}", v)
	}
	return out
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not provided"
	}
	return s
}

func containsAny(s string, parts ...string) bool {
	for _, p := range parts {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
