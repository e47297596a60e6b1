package store

import (
	"errors"
	"testing"

	"talent-match/internal/domain/talent"
)

func TestEmployeeByID(t *testing.T) {
	s := NewFromSeed()

	e, err := s.EmployeeByID("EMP001")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if e.Name != "Raj Sharma" || e.Status != talent.StatusBench {
		t.Fatalf("unexpected employee: %+v", e)
	}
	if e.BenchStartDate == nil {
		t.Fatalf("expected bench start date for benched employee")
	}
}

func TestEmployeeByID_CaseInsensitive(t *testing.T) {
	s := NewFromSeed()
	if _, err := s.EmployeeByID("  emp003 "); err != nil {
		t.Fatalf("expected case-insensitive lookup, got %v", err)
	}
}

func TestEmployeeByID_NotFound(t *testing.T) {
	s := NewFromSeed()
	_, err := s.EmployeeByID("EMP999")
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestOpenRequisitions(t *testing.T) {
	employees := seedEmployees()
	reqs := seedRequisitions()
	reqs = append(reqs, talent.Requisition{ID: "REQ099", Status: talent.RequisitionClosed})
	s := New(employees, reqs, nil)

	open := s.OpenRequisitions()
	if len(open) != 4 {
		t.Fatalf("expected 4 open requisitions, got %d", len(open))
	}
	for _, r := range open {
		if r.Status != talent.RequisitionOpen {
			t.Fatalf("closed requisition leaked: %+v", r)
		}
	}
}

func TestSeedInvariants(t *testing.T) {
	for _, e := range seedEmployees() {
		benched := e.Status == talent.StatusBench
		if benched != (e.BenchStartDate != nil) {
			t.Fatalf("%s: bench start date must be set iff status is BENCH", e.ID)
		}
		if e.Status == talent.StatusTransitioning || e.Status == talent.StatusNoticePeriod {
			if e.ProjectEndDate == nil {
				t.Fatalf("%s: project end date required for status %s", e.ID, e.Status)
			}
		}
	}
}

func TestOntologyEntry(t *testing.T) {
	s := NewFromSeed()
	entry, ok := s.OntologyEntry("Java")
	if !ok || entry.Category != "Backend" {
		t.Fatalf("unexpected ontology entry: %+v ok=%v", entry, ok)
	}
	if _, ok := s.OntologyEntry("COBOL"); ok {
		t.Fatalf("unexpected ontology hit")
	}
}
