package tutorial

import "testing"

func TestAll_WellFormed(t *testing.T) {
	tuts := All()
	if len(tuts) == 0 {
		t.Fatal("no tutorials defined")
	}

	seen := make(map[string]bool)
	for _, tut := range tuts {
		if tut.ID == "" || tut.Title == "" || tut.Summary == "" {
			t.Fatalf("tutorial %q missing metadata", tut.ID)
		}
		if seen[tut.ID] {
			t.Fatalf("duplicate tutorial ID %q", tut.ID)
		}
		seen[tut.ID] = true
		if len(tut.Steps) == 0 {
			t.Fatalf("tutorial %q has no steps", tut.ID)
		}
		for i, step := range tut.Steps {
			if step.Title == "" || step.Body == "" {
				t.Fatalf("tutorial %q step %d missing title or body", tut.ID, i)
			}
		}
	}
}

func TestAll_ReturnsStableOrder(t *testing.T) {
	a, b := All(), All()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("order differs at %d: %q vs %q", i, a[i].ID, b[i].ID)
		}
	}
}
