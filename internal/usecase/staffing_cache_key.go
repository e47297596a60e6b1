package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"talent-match/internal/domain/talent"
)

type staffingCacheKeyInput struct {
	Skill         string  `json:"skill"`
	MinExperience float64 `json:"min_experience"`
	RequiredLevel string  `json:"required_level"`
}

// staffingSearchCacheKey derives a stable cache key from a normalized
// requirement list. The same parsed requirements always hash to the same key
// regardless of query phrasing.
func staffingSearchCacheKey(reqs []talent.RequiredSkill) string {
	in := make([]staffingCacheKeyInput, 0, len(reqs))
	for _, r := range reqs {
		in = append(in, staffingCacheKeyInput{
			Skill:         strings.ToLower(strings.TrimSpace(r.Name)),
			MinExperience: r.MinExperience,
			RequiredLevel: string(r.RequiredLevel),
		})
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "staffing:search:" + hex.EncodeToString(sum[:])
}
