package store

import (
	"time"

	"talent-match/internal/domain/talent"
)

// Embedded mock dataset: five employees, four open requisitions and a small
// skill ontology. Used whenever no database snapshot source is configured.

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func seedEmployees() []talent.Employee {
	return []talent.Employee{
		{
			ID:             "EMP001",
			Name:           "Raj Sharma",
			Email:          "raj.sharma@zensar.com",
			Status:         talent.StatusBench,
			BenchStartDate: day(2024, 4, 15),
			Skills: []talent.Skill{
				{Name: "Java", Category: "Backend", ExperienceYears: 6, Proficiency: talent.LevelExpert},
				{Name: "Spring Boot", Category: "Backend", ExperienceYears: 5, Proficiency: talent.LevelAdvanced},
				{Name: "React", Category: "Frontend", ExperienceYears: 2, Proficiency: talent.LevelIntermediate},
				{Name: "SQL", Category: "Database", ExperienceYears: 4, Proficiency: talent.LevelAdvanced},
				{Name: "Angular", Category: "Frontend", ExperienceYears: 1, Proficiency: talent.LevelBeginner},
			},
			PerformanceRating: 4.2,
			Location:          "Pune",
		},
		{
			ID:             "EMP002",
			Name:           "Priya Patel",
			Email:          "priya.patel@zensar.com",
			Status:         talent.StatusTransitioning,
			CurrentProject: "Project Phoenix",
			ProjectEndDate: day(2024, 6, 30),
			Skills: []talent.Skill{
				{Name: "Java", Category: "Backend", ExperienceYears: 7, Proficiency: talent.LevelExpert},
				{Name: "React", Category: "Frontend", ExperienceYears: 3, Proficiency: talent.LevelAdvanced},
				{Name: "Angular", Category: "Frontend", ExperienceYears: 4, Proficiency: talent.LevelAdvanced},
				{Name: "Node.js", Category: "Backend", ExperienceYears: 2, Proficiency: talent.LevelIntermediate},
				{Name: "MongoDB", Category: "Database", ExperienceYears: 3, Proficiency: talent.LevelAdvanced},
			},
			PerformanceRating: 4.5,
			Location:          "Bangalore",
		},
		{
			ID:             "EMP003",
			Name:           "Amit Kumar",
			Email:          "amit.kumar@zensar.com",
			Status:         talent.StatusActive,
			CurrentProject: "Project Alpha",
			ProjectEndDate: day(2024, 8, 15),
			Skills: []talent.Skill{
				{Name: "Python", Category: "Backend", ExperienceYears: 5, Proficiency: talent.LevelAdvanced},
				{Name: "Django", Category: "Backend", ExperienceYears: 4, Proficiency: talent.LevelAdvanced},
				{Name: "React", Category: "Frontend", ExperienceYears: 2, Proficiency: talent.LevelIntermediate},
				{Name: "PostgreSQL", Category: "Database", ExperienceYears: 4, Proficiency: talent.LevelAdvanced},
			},
			PerformanceRating: 4.0,
			Location:          "Hyderabad",
		},
		{
			ID:             "EMP004",
			Name:           "Sneha Desai",
			Email:          "sneha.desai@zensar.com",
			Status:         talent.StatusBench,
			BenchStartDate: day(2024, 5, 1),
			Skills: []talent.Skill{
				{Name: "Java", Category: "Backend", ExperienceYears: 8, Proficiency: talent.LevelExpert},
				{Name: "Spring Boot", Category: "Backend", ExperienceYears: 6, Proficiency: talent.LevelExpert},
				{Name: "Angular", Category: "Frontend", ExperienceYears: 5, Proficiency: talent.LevelAdvanced},
				{Name: "SQL", Category: "Database", ExperienceYears: 6, Proficiency: talent.LevelExpert},
				{Name: "AWS", Category: "Cloud", ExperienceYears: 3, Proficiency: talent.LevelIntermediate},
			},
			PerformanceRating: 4.7,
			Location:          "Pune",
		},
		{
			ID:             "EMP005",
			Name:           "Varun Singh",
			Email:          "varun.singh@zensar.com",
			Status:         talent.StatusNoticePeriod,
			CurrentProject: "Project Beta",
			ProjectEndDate: day(2024, 6, 15),
			Skills: []talent.Skill{
				{Name: "React", Category: "Frontend", ExperienceYears: 4, Proficiency: talent.LevelAdvanced},
				{Name: "JavaScript", Category: "Frontend", ExperienceYears: 5, Proficiency: talent.LevelAdvanced},
				{Name: "Node.js", Category: "Backend", ExperienceYears: 3, Proficiency: talent.LevelIntermediate},
				{Name: "Java", Category: "Backend", ExperienceYears: 2, Proficiency: talent.LevelIntermediate},
			},
			PerformanceRating: 3.8,
			Location:          "Chennai",
		},
	}
}

func seedRequisitions() []talent.Requisition {
	return []talent.Requisition{
		{
			ID:          "REQ001",
			ProjectName: "Digital Banking Platform",
			RoleTitle:   "Full Stack Developer",
			Status:      talent.RequisitionOpen,
			StartDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			RequiredSkills: []talent.RequiredSkill{
				{Name: "Java", MinExperience: 5, RequiredLevel: talent.LevelAdvanced, Mandatory: true},
				{Name: "Spring Boot", MinExperience: 3, RequiredLevel: talent.LevelAdvanced, Mandatory: true},
				{Name: "React", MinExperience: 2, RequiredLevel: talent.LevelIntermediate, Mandatory: true},
				{Name: "SQL", MinExperience: 3, RequiredLevel: talent.LevelAdvanced, Mandatory: false},
			},
			Location:        "Pune",
			ExperienceLevel: "Senior",
			HiringType:      "INTERNAL",
		},
		{
			ID:          "REQ002",
			ProjectName: "E-commerce Modernization",
			RoleTitle:   "Frontend Lead",
			Status:      talent.RequisitionOpen,
			StartDate:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			RequiredSkills: []talent.RequiredSkill{
				{Name: "React", MinExperience: 4, RequiredLevel: talent.LevelAdvanced, Mandatory: true},
				{Name: "Angular", MinExperience: 3, RequiredLevel: talent.LevelAdvanced, Mandatory: true},
				{Name: "JavaScript", MinExperience: 5, RequiredLevel: talent.LevelExpert, Mandatory: true},
				{Name: "TypeScript", MinExperience: 2, RequiredLevel: talent.LevelIntermediate, Mandatory: false},
			},
			Location:        "Bangalore",
			ExperienceLevel: "Lead",
			HiringType:      "BOTH",
		},
		{
			ID:          "REQ003",
			ProjectName: "Healthcare Analytics",
			RoleTitle:   "Backend Developer",
			Status:      talent.RequisitionOpen,
			StartDate:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			RequiredSkills: []talent.RequiredSkill{
				{Name: "Python", MinExperience: 4, RequiredLevel: talent.LevelAdvanced, Mandatory: true},
				{Name: "Django", MinExperience: 3, RequiredLevel: talent.LevelAdvanced, Mandatory: true},
				{Name: "PostgreSQL", MinExperience: 3, RequiredLevel: talent.LevelAdvanced, Mandatory: true},
				{Name: "AWS", MinExperience: 2, RequiredLevel: talent.LevelIntermediate, Mandatory: false},
			},
			Location:        "Hyderabad",
			ExperienceLevel: "Mid-Senior",
			HiringType:      "INTERNAL",
		},
		{
			ID:          "REQ004",
			ProjectName: "Insurance Portal",
			RoleTitle:   "Java Full Stack Developer",
			Status:      talent.RequisitionOpen,
			StartDate:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			RequiredSkills: []talent.RequiredSkill{
				{Name: "Java", MinExperience: 6, RequiredLevel: talent.LevelExpert, Mandatory: true},
				{Name: "Spring Boot", MinExperience: 4, RequiredLevel: talent.LevelAdvanced, Mandatory: true},
				{Name: "Angular", MinExperience: 3, RequiredLevel: talent.LevelAdvanced, Mandatory: true},
				{Name: "SQL", MinExperience: 4, RequiredLevel: talent.LevelAdvanced, Mandatory: true},
				{Name: "React", MinExperience: 2, RequiredLevel: talent.LevelIntermediate, Mandatory: false},
			},
			Location:        "Pune",
			ExperienceLevel: "Senior",
			HiringType:      "INTERNAL",
		},
	}
}

func seedOntology() map[string]talent.OntologyEntry {
	return map[string]talent.OntologyEntry{
		"Java":        {Category: "Backend", RelatedSkills: []string{"Spring Boot", "J2EE", "Microservices"}},
		"Spring Boot": {Category: "Backend", RelatedSkills: []string{"Java", "Microservices", "REST API"}},
		"React":       {Category: "Frontend", RelatedSkills: []string{"JavaScript", "TypeScript", "Redux"}},
		"Angular":     {Category: "Frontend", RelatedSkills: []string{"TypeScript", "JavaScript", "RxJS"}},
		"Python":      {Category: "Backend", RelatedSkills: []string{"Django", "Flask", "FastAPI"}},
		"SQL":         {Category: "Database", RelatedSkills: []string{"Database Design", "Query Optimization"}},
	}
}
