package search

import (
	"strings"
	"unicode"

	"talent-match/internal/domain/talent"
)

// SkillKeywords is the fixed vocabulary the best-effort extractor detects.
var SkillKeywords = []string{"java", "react", "angular", "python", "sql", "spring", "node", "aws"}

// NormalizeQuery lowercases the input and strips everything but letters,
// digits and single spaces.
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	input = strings.ToLower(input)

	b := strings.Builder{}
	b.Grow(len(input))
	lastWasSpace := false

	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
			lastWasSpace = false
			continue
		}
		if unicode.IsSpace(r) {
			if b.Len() == 0 || lastWasSpace {
				continue
			}
			b.WriteByte(' ')
			lastWasSpace = true
			continue
		}
		// drop all other characters
	}

	out := strings.TrimSpace(b.String())
	out = strings.Join(strings.Fields(out), " ")
	return out
}

// ExtractSkillKeywords detects which of the known skill keywords occur in the
// free-text query, by case-insensitive substring search. Results keep the
// vocabulary order.
func ExtractSkillKeywords(query string) []string {
	lower := strings.ToLower(query)
	out := make([]string, 0, len(SkillKeywords))
	for _, kw := range SkillKeywords {
		if strings.Contains(lower, kw) {
			out = append(out, kw)
		}
	}
	return out
}

// ParseSkillRequirements turns a free-text staffing query into a structured
// requirement list. This is a keyword-detection stub, not real language
// understanding: each recognized skill maps to a fixed experience floor and
// level. React and Angular are only emitted when the literal digit "2"
// respectively "3" appears anywhere in the query text, not next to the skill
// word. That text-wide digit check is a known limitation of the heuristic
// and is kept deliberately; replacing it means replacing this extractor,
// not patching it.
func ParseSkillRequirements(query string) []talent.RequiredSkill {
	lower := strings.ToLower(query)

	reqs := make([]talent.RequiredSkill, 0, 4)
	if strings.Contains(lower, "java") {
		reqs = append(reqs, talent.RequiredSkill{Name: "Java", MinExperience: 5, RequiredLevel: talent.LevelAdvanced, Mandatory: true})
	}
	if strings.Contains(lower, "react") && strings.Contains(query, "2") {
		reqs = append(reqs, talent.RequiredSkill{Name: "React", MinExperience: 2, RequiredLevel: talent.LevelIntermediate, Mandatory: true})
	}
	if strings.Contains(lower, "angular") && strings.Contains(query, "3") {
		reqs = append(reqs, talent.RequiredSkill{Name: "Angular", MinExperience: 3, RequiredLevel: talent.LevelAdvanced, Mandatory: true})
	}
	if strings.Contains(lower, "sql") {
		reqs = append(reqs, talent.RequiredSkill{Name: "SQL", MinExperience: 1, RequiredLevel: talent.LevelIntermediate, Mandatory: true})
	}
	return reqs
}
