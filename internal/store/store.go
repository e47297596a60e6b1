package store

import (
	"errors"
	"strings"

	"talent-match/internal/domain/talent"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// Store is a read-only snapshot of employees, requisitions and the skill
// ontology. It is populated once at startup and never mutated afterwards, so
// it is safe for concurrent reads without locking.
type Store struct {
	employees    []talent.Employee
	byID         map[string]talent.Employee
	requisitions []talent.Requisition
	ontology     map[string]talent.OntologyEntry
}

func New(employees []talent.Employee, requisitions []talent.Requisition, ontology map[string]talent.OntologyEntry) *Store {
	byID := make(map[string]talent.Employee, len(employees))
	for _, e := range employees {
		byID[normalizeID(e.ID)] = e
	}
	if ontology == nil {
		ontology = map[string]talent.OntologyEntry{}
	}
	return &Store{
		employees:    employees,
		byID:         byID,
		requisitions: requisitions,
		ontology:     ontology,
	}
}

// NewFromSeed builds a store over the embedded mock dataset.
func NewFromSeed() *Store {
	return New(seedEmployees(), seedRequisitions(), seedOntology())
}

// EmployeeByID looks up an employee by identifier, case-insensitively and
// ignoring surrounding whitespace.
func (s *Store) EmployeeByID(id string) (talent.Employee, error) {
	e, ok := s.byID[normalizeID(id)]
	if !ok {
		return talent.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

// Employees returns the snapshot's employee collection. Callers must not
// mutate the returned slice.
func (s *Store) Employees() []talent.Employee {
	return s.employees
}

// Requisitions returns every requisition in the snapshot.
func (s *Store) Requisitions() []talent.Requisition {
	return s.requisitions
}

// OpenRequisitions returns the requisitions that participate in matching.
func (s *Store) OpenRequisitions() []talent.Requisition {
	out := make([]talent.Requisition, 0, len(s.requisitions))
	for _, r := range s.requisitions {
		if r.Status == talent.RequisitionOpen {
			out = append(out, r)
		}
	}
	return out
}

// OntologyEntry returns the category and related skills for a skill name.
func (s *Store) OntologyEntry(skill string) (talent.OntologyEntry, bool) {
	entry, ok := s.ontology[skill]
	return entry, ok
}

// Ontology returns the whole skill-relationship table. Callers must not
// mutate the returned map.
func (s *Store) Ontology() map[string]talent.OntologyEntry {
	return s.ontology
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
