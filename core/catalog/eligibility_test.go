package catalog

import "testing"

func TestEligibleFreeChoice(t *testing.T) {
	curricular := []Course{
		MakeCourse("Multimedia Retrieval", "U100", 12, "D", "Second", "I"),
		MakeCourse("Speech Processing", "U101", 6, "D", "Second", "II"),
	}
	pool := []Course{
		MakeCourse("Astroinformatics", "U1", 6, "D", "Second", "II"),
		MakeCourse("Multimedia Retrieval", "U2", 6, "D", "Second", "I"),  // name dup, different code
		MakeCourse("Speech Technologies", "u101", 6, "D", "Second", "I"), // code dup, different case
		MakeCourse("Text Mining", "U3", 6, "D", "Second", "I"),           // banned below
		MakeCourse("Data Visualization", "U4", 6, "D", "Second", "II"),
	}
	banned := map[string]struct{}{"U3": {}}

	got := EligibleFreeChoice(pool, curricular, banned)

	want := []string{"U1", "U4"}
	if len(got) != len(want) {
		t.Fatalf("EligibleFreeChoice() returned %d courses; want %d (%v)", len(got), len(want), got)
	}
	for i, code := range want {
		if got[i].Code != code {
			t.Errorf("eligible[%d].Code = %s; want %s", i, got[i].Code, code)
		}
	}
}

func TestEligibleFreeChoice_emptyInputs(t *testing.T) {
	pool := []Course{MakeCourse("A", "U1", 6, "D", "Second", "I")}

	if got := EligibleFreeChoice(nil, pool, nil); len(got) != 0 {
		t.Errorf("empty pool: got %v; want none", got)
	}
	if got := EligibleFreeChoice(pool, nil, map[string]struct{}{}); len(got) != 1 {
		t.Errorf("no curricular, no bans: got %d; want the whole pool", len(got))
	}
}
