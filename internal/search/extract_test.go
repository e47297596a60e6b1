package search

import (
	"reflect"
	"testing"
)

func TestNormalizeQuery(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  Check positions for Java!  ", "check positions for java"},
		{"React,  Angular & SQL", "react angular sql"},
		{"Java   5+ years", "java 5 years"},
	}
	for _, c := range cases {
		if got := NormalizeQuery(c.in); got != c.want {
			t.Fatalf("NormalizeQuery(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtractSkillKeywords(t *testing.T) {
	got := ExtractSkillKeywords("Check positions for Java and React skills")
	if !reflect.DeepEqual(got, []string{"java", "react"}) {
		t.Fatalf("unexpected keywords: %v", got)
	}

	if got := ExtractSkillKeywords("tell me a joke"); len(got) != 0 {
		t.Fatalf("expected no keywords, got %v", got)
	}
}

func TestParseSkillRequirements(t *testing.T) {
	reqs := ParseSkillRequirements("Find employees with Java 5+ years, React 2+ years, Angular 3+ years")
	if len(reqs) != 3 {
		t.Fatalf("expected 3 requirements, got %d: %+v", len(reqs), reqs)
	}
	if reqs[0].Name != "Java" || reqs[0].MinExperience != 5 {
		t.Fatalf("unexpected Java requirement: %+v", reqs[0])
	}
	for _, r := range reqs {
		if !r.Mandatory {
			t.Fatalf("ad-hoc requirements default to mandatory: %+v", r)
		}
	}
}

func TestParseSkillRequirements_DigitGate(t *testing.T) {
	// React without the digit "2" anywhere in the text is not emitted.
	if reqs := ParseSkillRequirements("Find employees with React experience"); len(reqs) != 0 {
		t.Fatalf("expected no requirements, got %+v", reqs)
	}

	// The digit check is text-wide, not tied to the skill word.
	reqs := ParseSkillRequirements("Need 2 React developers")
	if len(reqs) != 1 || reqs[0].Name != "React" {
		t.Fatalf("expected React requirement, got %+v", reqs)
	}
}

func TestParseSkillRequirements_SQL(t *testing.T) {
	reqs := ParseSkillRequirements("anyone with SQL?")
	if len(reqs) != 1 || reqs[0].Name != "SQL" || reqs[0].MinExperience != 1 {
		t.Fatalf("unexpected SQL requirement: %+v", reqs)
	}
}
