package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/recommend"
	"talent-match/internal/domain/talent"
	"talent-match/internal/search"
	"talent-match/internal/store"
)

const topPositionMatches = 5

const employeeHelpText = "I can help you with:\n" +
	"1. Finding open positions matching your skills\n" +
	"2. Checking positions for specific skills\n" +
	"3. Skill upgrade recommendations\n\n" +
	"How can I assist you?"

const noSkillsGuidance = "Please specify which skills you want to check positions for. " +
	"For example: 'Check positions for Java and React skills'"

// TalentStore is the read-only snapshot surface the query usecases consume.
type TalentStore interface {
	EmployeeByID(id string) (talent.Employee, error)
	Employees() []talent.Employee
	OpenRequisitions() []talent.Requisition
}

type EmployeeSearchUsecase interface {
	FindPositions(ctx context.Context, employeeID string) (PositionSearchResult, error)
	FindPositionsWithSkills(ctx context.Context, employeeID, query string) (SkillSearchResult, error)
	ProcessQuery(ctx context.Context, employeeID, query string) (EmployeeQueryResult, error)
}

type EmployeeSearch struct {
	store TalentStore
	now   func() time.Time
}

func NewEmployeeSearchUsecase(store TalentStore) *EmployeeSearch {
	return &EmployeeSearch{store: store, now: time.Now}
}

// FindPositions matches the employee against every open requisition, keeps
// positive scores, ranks them and derives training recommendations from the
// top-ranked gaps.
func (u *EmployeeSearch) FindPositions(ctx context.Context, employeeID string) (PositionSearchResult, error) {
	employee, err := u.employee(employeeID)
	if err != nil {
		return PositionSearchResult{}, err
	}

	now := u.now().UTC()
	matches := make([]matching.RequisitionMatch, 0)
	for _, req := range u.store.OpenRequisitions() {
		m := matching.MatchRequisition(employee, req, now)
		if m.TotalScore > 0 {
			matches = append(matches, m)
		}
	}

	ranked := matching.RankRequisitionMatches(matches)

	return PositionSearchResult{
		Employee:        employee.Name,
		CurrentStatus:   employee.Status,
		TotalMatches:    len(ranked),
		Matches:         matching.TopRequisitionMatches(ranked, topPositionMatches),
		Recommendations: recommend.SkillRecommendations(ranked),
	}, nil
}

// FindPositionsWithSkills extracts skill keywords from the query and matches
// the employee against the open requisitions that require any of them.
func (u *EmployeeSearch) FindPositionsWithSkills(ctx context.Context, employeeID, query string) (SkillSearchResult, error) {
	employee, err := u.employee(employeeID)
	if err != nil {
		return SkillSearchResult{}, err
	}

	keywords := search.ExtractSkillKeywords(query)
	if len(keywords) == 0 {
		return SkillSearchResult{}, ErrNoSkillsSpecified
	}

	now := u.now().UTC()
	matches := make([]matching.RequisitionMatch, 0)
	for _, req := range u.store.OpenRequisitions() {
		if !requiresAnyKeyword(req, keywords) {
			continue
		}
		matches = append(matches, matching.MatchRequisition(employee, req, now))
	}

	return SkillSearchResult{
		Employee:          employee.Name,
		SearchedSkills:    keywords,
		MatchingPositions: matching.RankRequisitionMatches(matches),
		SkillGapAnalysis:  recommend.AnalyzeSkillGaps(employee, keywords),
	}, nil
}

// ProcessQuery routes a conversational employee query to the matching
// operation, falling back to a help message when no intent is recognized.
func (u *EmployeeSearch) ProcessQuery(ctx context.Context, employeeID, query string) (EmployeeQueryResult, error) {
	employee, err := u.employee(employeeID)
	if err != nil {
		return EmployeeQueryResult{}, err
	}

	lower := strings.ToLower(query)
	switch {
	case containsAny(lower, "open positions", "find jobs", "opportunities"):
		res, err := u.FindPositions(ctx, employeeID)
		if err != nil {
			return EmployeeQueryResult{}, err
		}
		return EmployeeQueryResult{Kind: QueryKindPositions, Positions: &res}, nil

	case containsAny(lower, "check position", "specific skills"):
		res, err := u.FindPositionsWithSkills(ctx, employeeID, query)
		if errors.Is(err, ErrNoSkillsSpecified) {
			return EmployeeQueryResult{Kind: QueryKindHelp, Help: &HelpMessage{
				Response: noSkillsGuidance,
				Employee: employee.Name,
			}}, nil
		}
		if err != nil {
			return EmployeeQueryResult{}, err
		}
		return EmployeeQueryResult{Kind: QueryKindSkillSearch, SkillSearch: &res}, nil

	default:
		return EmployeeQueryResult{Kind: QueryKindHelp, Help: &HelpMessage{
			Response: employeeHelpText,
			Employee: employee.Name,
			Status:   employee.Status,
		}}, nil
	}
}

func (u *EmployeeSearch) employee(employeeID string) (talent.Employee, error) {
	employee, err := u.store.EmployeeByID(employeeID)
	if err != nil {
		if errors.Is(err, store.ErrEmployeeNotFound) {
			return talent.Employee{}, ErrEmployeeNotFound
		}
		return talent.Employee{}, ErrInternal
	}
	return employee, nil
}

func requiresAnyKeyword(req talent.Requisition, keywords []string) bool {
	for _, rs := range req.RequiredSkills {
		name := strings.ToLower(rs.Name)
		for _, kw := range keywords {
			if name == kw {
				return true
			}
		}
	}
	return false
}

func containsAny(s string, parts ...string) bool {
	for _, p := range parts {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
