package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/recommend"
	"talent-match/internal/search"

	"go.uber.org/zap"
)

const managerHelpText = "I can help you find employees with specific skill sets. " +
	"Please specify the skills and experience levels you're looking for."

const noRequirementsGuidance = "Please specify skill requirements. " +
	"Example: 'Find employees with Java 5+ years, React 2+ years, Angular 3+ years'"

// SearchCache stores JSON-encoded staffing search responses. Implementations
// must tolerate being bypassed; a nil cache disables caching entirely.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type StaffingSearchUsecase interface {
	FindEmployees(ctx context.Context, query string) (StaffingSearchResult, error)
	ProcessQuery(ctx context.Context, userRole, query string) (ManagerQueryResult, error)
}

type StaffingSearch struct {
	store  TalentStore
	cache  SearchCache
	logger *zap.Logger
	now    func() time.Time
}

func NewStaffingSearchUsecase(store TalentStore, cache SearchCache, logger *zap.Logger) *StaffingSearch {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffingSearch{store: store, cache: cache, logger: logger, now: time.Now}
}

// FindEmployees parses skill requirements out of the query and scores every
// available employee against them. ACTIVE employees are excluded before
// scoring. Scoring itself is pure; the optional cache sits strictly in front
// of it.
func (u *StaffingSearch) FindEmployees(ctx context.Context, query string) (StaffingSearchResult, error) {
	requirements := search.ParseSkillRequirements(query)
	if len(requirements) == 0 {
		return StaffingSearchResult{}, ErrNoRequirements
	}

	key := staffingSearchCacheKey(requirements)
	if u.cache != nil {
		var cached StaffingSearchResult
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			u.logger.Warn("staffing search cache lookup failed", zap.Error(err))
		}
		if hit {
			return cached, nil
		}
	}

	now := u.now().UTC()
	matches := make([]matching.CandidateMatch, 0)
	for _, employee := range u.store.Employees() {
		if !employee.Status.Available() {
			continue
		}
		m := matching.MatchSkillSet(employee, requirements, now)
		if m.TotalScore > 0 {
			matches = append(matches, m)
		}
	}

	ranked := matching.RankCandidateMatches(matches)

	result := StaffingSearchResult{
		SearchCriteria:      requirements,
		TotalEmployeesFound: len(ranked),
		Matches:             ranked,
		Summary:             recommend.SummarizeSearch(ranked),
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, result, 0); err != nil {
			u.logger.Warn("staffing search cache store failed", zap.Error(err))
		}
	}

	return result, nil
}

// ProcessQuery routes a conversational manager query to the staffing search,
// falling back to a help message when no intent is recognized.
func (u *StaffingSearch) ProcessQuery(ctx context.Context, userRole, query string) (ManagerQueryResult, error) {
	lower := strings.ToLower(query)
	if !containsAny(lower, "find employees", "search resources", "java react angular") {
		return ManagerQueryResult{Kind: QueryKindHelp, Help: &HelpMessage{
			Response: managerHelpText,
			UserRole: userRole,
		}}, nil
	}

	res, err := u.FindEmployees(ctx, query)
	if errors.Is(err, ErrNoRequirements) {
		return ManagerQueryResult{Kind: QueryKindHelp, Help: &HelpMessage{
			Response: noRequirementsGuidance,
			UserRole: userRole,
		}}, nil
	}
	if err != nil {
		return ManagerQueryResult{}, err
	}
	return ManagerQueryResult{Kind: QueryKindStaffing, Staffing: &res}, nil
}
