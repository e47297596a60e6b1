package matching

import "testing"

func TestRankRequisitionMatches_StableForTies(t *testing.T) {
	in := []RequisitionMatch{
		{RequisitionID: "REQ001", TotalScore: 75},
		{RequisitionID: "REQ002", TotalScore: 90},
		{RequisitionID: "REQ003", TotalScore: 75},
		{RequisitionID: "REQ004", TotalScore: 90},
	}

	out := RankRequisitionMatches(in)

	want := []string{"REQ002", "REQ004", "REQ001", "REQ003"}
	for i, w := range want {
		if out[i].RequisitionID != w {
			t.Fatalf("position %d: expected %s, got %s", i, w, out[i].RequisitionID)
		}
	}

	// Input order must be untouched.
	if in[0].RequisitionID != "REQ001" {
		t.Fatalf("input slice mutated: %+v", in)
	}
}

func TestRankCandidateMatches(t *testing.T) {
	in := []CandidateMatch{
		{EmployeeID: "EMP001", TotalScore: 40},
		{EmployeeID: "EMP002", TotalScore: 85},
		{EmployeeID: "EMP003", TotalScore: 85},
	}

	out := RankCandidateMatches(in)
	if out[0].EmployeeID != "EMP002" || out[1].EmployeeID != "EMP003" || out[2].EmployeeID != "EMP001" {
		t.Fatalf("unexpected order: %+v", out)
	}
}

func TestTopRequisitionMatches(t *testing.T) {
	in := make([]RequisitionMatch, 7)
	if got := TopRequisitionMatches(in, 5); len(got) != 5 {
		t.Fatalf("expected 5, got %d", len(got))
	}
	if got := TopRequisitionMatches(in, 10); len(got) != 7 {
		t.Fatalf("expected 7, got %d", len(got))
	}
	if got := TopRequisitionMatches(in, -1); len(got) != 7 {
		t.Fatalf("negative n must not truncate, got %d", len(got))
	}
}
