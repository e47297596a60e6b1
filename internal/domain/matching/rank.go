package matching

import "sort"

// RankRequisitionMatches returns a new slice sorted by total score
// descending. The sort is stable: equal scores keep their encounter order.
func RankRequisitionMatches(matches []RequisitionMatch) []RequisitionMatch {
	out := make([]RequisitionMatch, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalScore > out[j].TotalScore
	})
	return out
}

// RankCandidateMatches returns a new slice sorted by total score descending,
// stable for equal scores.
func RankCandidateMatches(matches []CandidateMatch) []CandidateMatch {
	out := make([]CandidateMatch, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalScore > out[j].TotalScore
	})
	return out
}

// TopRequisitionMatches truncates a ranked slice to at most n entries.
func TopRequisitionMatches(matches []RequisitionMatch, n int) []RequisitionMatch {
	if n < 0 || n >= len(matches) {
		return matches
	}
	return matches[:n]
}
