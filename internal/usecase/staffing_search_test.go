package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-match/internal/domain/talent"
	"talent-match/internal/store"
)

func newStaffingSearch(cache SearchCache) *StaffingSearch {
	u := NewStaffingSearchUsecase(store.NewFromSeed(), cache, nil)
	u.now = fixedNow
	return u
}

func TestFindEmployees(t *testing.T) {
	u := newStaffingSearch(nil)

	res, err := u.FindEmployees(context.Background(), "Find employees with Java 5+ years, React 2+ years, Angular 3+ years")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(res.SearchCriteria) != 3 {
		t.Fatalf("expected 3 requirements, got %+v", res.SearchCriteria)
	}
	if res.TotalEmployeesFound != len(res.Matches) {
		t.Fatalf("count mismatch: %d vs %d", res.TotalEmployeesFound, len(res.Matches))
	}

	// EMP003 is ACTIVE and must never appear.
	for _, m := range res.Matches {
		if m.EmployeeID == "EMP003" {
			t.Fatalf("ACTIVE employee leaked into results")
		}
	}

	// Descending rank.
	for i := 1; i < len(res.Matches); i++ {
		if res.Matches[i].TotalScore > res.Matches[i-1].TotalScore {
			t.Fatalf("matches not ranked: %+v", res.Matches)
		}
	}

	if res.Summary.TotalEmployees != len(res.Matches) {
		t.Fatalf("summary total mismatch: %+v", res.Summary)
	}
	if res.Summary.Recommendation == "" {
		t.Fatalf("expected staffing recommendation")
	}
}

func TestFindEmployees_BenchDaysReported(t *testing.T) {
	u := newStaffingSearch(nil)

	res, err := u.FindEmployees(context.Background(), "find employees with java")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	for _, m := range res.Matches {
		if m.EmployeeID == "EMP001" {
			// Benched since 2024-04-15, queried at 2024-06-01.
			if m.BenchDays != 47 {
				t.Fatalf("expected 47 bench days, got %d", m.BenchDays)
			}
			return
		}
	}
	t.Fatalf("expected EMP001 in results: %+v", res.Matches)
}

func TestFindEmployees_NoRequirements(t *testing.T) {
	u := newStaffingSearch(nil)
	_, err := u.FindEmployees(context.Background(), "find employees who are nice")
	if !errors.Is(err, ErrNoRequirements) {
		t.Fatalf("expected ErrNoRequirements, got %v", err)
	}
}

type stubCache struct {
	gets int
	sets int
}

func (c *stubCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.gets++
	return false, nil
}

func (c *stubCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.sets++
	return nil
}

func TestFindEmployees_UsesCache(t *testing.T) {
	cache := &stubCache{}
	u := newStaffingSearch(cache)

	if _, err := u.FindEmployees(context.Background(), "find employees with java"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.gets != 1 || cache.sets != 1 {
		t.Fatalf("expected one cache lookup and one store, got gets=%d sets=%d", cache.gets, cache.sets)
	}
}

func TestStaffingProcessQuery_Routing(t *testing.T) {
	u := newStaffingSearch(nil)
	ctx := context.Background()

	res, err := u.ProcessQuery(ctx, "MANAGER", "find employees with java and sql")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Kind != QueryKindStaffing || res.Staffing == nil {
		t.Fatalf("expected staffing result, got %+v", res)
	}

	res, err = u.ProcessQuery(ctx, "MANAGER", "good morning")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Kind != QueryKindHelp || res.Help.UserRole != "MANAGER" {
		t.Fatalf("expected help result, got %+v", res)
	}
}

func TestStaffingProcessQuery_NoRequirementsGuidance(t *testing.T) {
	u := newStaffingSearch(nil)

	res, err := u.ProcessQuery(context.Background(), "TSC_CONSULTANT", "find employees with react please")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Kind != QueryKindHelp || res.Help.Response != noRequirementsGuidance {
		t.Fatalf("expected guidance, got %+v", res)
	}
}

func reqsFor(names ...string) []talent.RequiredSkill {
	out := make([]talent.RequiredSkill, 0, len(names))
	for _, n := range names {
		out = append(out, talent.RequiredSkill{Name: n, MinExperience: 2, RequiredLevel: talent.LevelIntermediate})
	}
	return out
}

func TestStaffingSearchCacheKey_Stable(t *testing.T) {
	a := staffingSearchCacheKey(reqsFor("Java", "SQL"))
	b := staffingSearchCacheKey(reqsFor("Java", "SQL"))
	if a != b {
		t.Fatalf("expected stable key, got %q vs %q", a, b)
	}
	c := staffingSearchCacheKey(reqsFor("Java"))
	if a == c {
		t.Fatalf("different requirements must hash differently")
	}
}
