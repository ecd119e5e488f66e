package depths

import (
	"strings"
	"testing"
)

func TestHashs(t *testing.T) {
	if Hashs("movies/d:2021-02-18/5") != Hashs("movies/d:2021-02-18/5") {
		t.Error("hash must be deterministic")
	}
	if Hashs("movies/d:2021-02-18/5") == Hashs("movies/d:2021-02-19/5") {
		t.Error("different keys should not collide")
	}
	if Hashs("abc") != Hash([]byte("abc")) {
		t.Error("Hash and Hashs must agree")
	}
}

func TestDumpObj(t *testing.T) {
	out := DumpObj(map[string]int{"views": 3})
	if !strings.Contains(out, "\"views\": 3") {
		t.Errorf("bad dump: %q", out)
	}
}
