package reports

import "testing"

func TestTallyCounts(t *testing.T) {
	tal := NewTally()
	tal.Add("a")
	tal.Add("b")
	tal.Add("a")
	if tal.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", tal.Len())
	}
	top := tal.Top(0)
	if top[0].Key != "a" || top[0].Count != 2 {
		t.Errorf("expected a:2 first, got %s:%d", top[0].Key, top[0].Count)
	}
	if top[1].Key != "b" || top[1].Count != 1 {
		t.Errorf("expected b:1 second, got %s:%d", top[1].Key, top[1].Count)
	}
}

// ties are broken by first-encounter order, not by key
func TestTallyTieBreak(t *testing.T) {
	tal := NewTally()
	for _, k := range []string{"zz", "mm", "aa", "zz", "mm", "aa"} {
		tal.Add(k)
	}
	top := tal.Top(0)
	expected := []string{"zz", "mm", "aa"}
	for i, k := range expected {
		if top[i].Key != k {
			t.Errorf("position %d: expected %s, got %s", i, k, top[i].Key)
		}
	}
}

func TestTallyTopClamps(t *testing.T) {
	tal := NewTally()
	tal.Add("a")
	tal.Add("b")
	tal.Add("c")
	if got := len(tal.Top(2)); got != 2 {
		t.Errorf("Top(2) returned %d entries", got)
	}
	if got := len(tal.Top(10)); got != 3 {
		t.Errorf("Top(10) returned %d entries", got)
	}
	if got := len(tal.Top(0)); got != 3 {
		t.Errorf("Top(0) returned %d entries", got)
	}
	if got := len(tal.Top(-1)); got != 3 {
		t.Errorf("Top(-1) returned %d entries", got)
	}
}

func TestTallyRowSticksToFirstEncounter(t *testing.T) {
	tal := NewTally()
	e := tal.Add("a")
	e.Row = "first"
	e = tal.Add("a")
	if e.Row != "first" {
		t.Errorf("expected row from first encounter, got %v", e.Row)
	}
}
