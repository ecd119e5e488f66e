package reports

import "sort"

type TallyEntry struct {
	Key   string
	Count int
	// Row carries whatever the caller wants to join back to the key,
	// set on first encounter (first matching metadata row).
	Row interface{}
}

// Tally counts distinct keys while preserving first-encounter order,
// so that Top can break count ties by row order instead of by key.
// Every ranked report is built on it.
type Tally struct {
	entries []*TallyEntry
	index   map[string]*TallyEntry
}

func NewTally() *Tally {
	return &Tally{index: map[string]*TallyEntry{}}
}

// Add increments the count for key and returns its entry.
func (t *Tally) Add(key string) *TallyEntry {
	e, ok := t.index[key]
	if !ok {
		e = &TallyEntry{Key: key}
		t.index[key] = e
		t.entries = append(t.entries, e)
	}
	e.Count++
	return e
}

func (t *Tally) Len() int {
	return len(t.entries)
}

// Top returns the entries sorted by descending count, ties kept in
// encounter order. amount <= 0 or beyond the number of entries means
// everything.
func (t *Tally) Top(amount int) []*TallyEntry {
	out := make([]*TallyEntry, len(t.entries))
	copy(out, t.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Count < out[i].Count
	})
	if amount > 0 && amount < len(out) {
		out = out[:amount]
	}
	return out
}
