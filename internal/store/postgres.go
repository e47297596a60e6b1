package store

import (
	"context"
	"fmt"

	"talent-match/internal/database"
	"talent-match/internal/domain/talent"
)

// LoadFromDatabase hydrates a snapshot from Postgres. The load happens once
// at startup; the returned store is as immutable as the seeded one.
func LoadFromDatabase(ctx context.Context, db database.DB) (*Store, error) {
	employees, err := loadEmployees(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	requisitions, err := loadRequisitions(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("load requisitions: %w", err)
	}
	ontology, err := loadOntology(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("load skill ontology: %w", err)
	}
	return New(employees, requisitions, ontology), nil
}

func loadEmployees(ctx context.Context, db database.DB) ([]talent.Employee, error) {
	rows, err := db.Query(ctx,
		`SELECT employee_id, name, email, status,
		        COALESCE(current_project, ''), project_end_date, bench_start_date,
		        performance_rating, location
		 FROM employees
		 ORDER BY employee_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]talent.Employee, 0)
	for rows.Next() {
		var e talent.Employee
		var status string
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &status,
			&e.CurrentProject, &e.ProjectEndDate, &e.BenchStartDate,
			&e.PerformanceRating, &e.Location); err != nil {
			return nil, err
		}
		e.Status = talent.Status(status)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		skills, err := loadEmployeeSkills(ctx, db, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Skills = skills
	}
	return out, nil
}

func loadEmployeeSkills(ctx context.Context, db database.DB, employeeID string) ([]talent.Skill, error) {
	rows, err := db.Query(ctx,
		`SELECT skill_name, category, experience_years, proficiency_level
		 FROM employee_skills
		 WHERE employee_id = $1
		 ORDER BY id ASC`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]talent.Skill, 0)
	for rows.Next() {
		var s talent.Skill
		var level string
		if err := rows.Scan(&s.Name, &s.Category, &s.ExperienceYears, &level); err != nil {
			return nil, err
		}
		s.Proficiency = talent.Level(level)
		out = append(out, s)
	}
	return out, rows.Err()
}

func loadRequisitions(ctx context.Context, db database.DB) ([]talent.Requisition, error) {
	rows, err := db.Query(ctx,
		`SELECT requisition_id, project_name, role_title, status, start_date,
		        location, experience_level, hiring_type
		 FROM requisitions
		 ORDER BY requisition_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]talent.Requisition, 0)
	for rows.Next() {
		var r talent.Requisition
		var status string
		if err := rows.Scan(&r.ID, &r.ProjectName, &r.RoleTitle, &status,
			&r.StartDate, &r.Location, &r.ExperienceLevel, &r.HiringType); err != nil {
			return nil, err
		}
		r.Status = talent.RequisitionStatus(status)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		reqs, err := loadRequiredSkills(ctx, db, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].RequiredSkills = reqs
	}
	return out, nil
}

func loadRequiredSkills(ctx context.Context, db database.DB, requisitionID string) ([]talent.RequiredSkill, error) {
	rows, err := db.Query(ctx,
		`SELECT skill_name, min_experience, required_level, is_mandatory
		 FROM requisition_skills
		 WHERE requisition_id = $1
		 ORDER BY id ASC`,
		requisitionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]talent.RequiredSkill, 0)
	for rows.Next() {
		var rs talent.RequiredSkill
		var level string
		if err := rows.Scan(&rs.Name, &rs.MinExperience, &level, &rs.Mandatory); err != nil {
			return nil, err
		}
		rs.RequiredLevel = talent.Level(level)
		out = append(out, rs)
	}
	return out, rows.Err()
}

func loadOntology(ctx context.Context, db database.DB) (map[string]talent.OntologyEntry, error) {
	rows, err := db.Query(ctx,
		`SELECT skill_name, category, related_skills
		 FROM skill_ontology`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]talent.OntologyEntry)
	for rows.Next() {
		var name string
		var entry talent.OntologyEntry
		if err := rows.Scan(&name, &entry.Category, &entry.RelatedSkills); err != nil {
			return nil, err
		}
		out[name] = entry
	}
	return out, rows.Err()
}
