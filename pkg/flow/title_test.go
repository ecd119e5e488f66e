package flow

import "testing"

func TestCleanSeriesTitle(t *testing.T) {
	cases := map[string]string{
		"T:3 Ep:02 Attack on Titan": "Attack on Titan",
		"T:0 Ep:01 Loki":            "Loki",
		"Ep:04 Peaky Blinders":      "Peaky Blinders",
		"The Crown":                 "The Crown",
		"":                          "",
		"T:1":                       "",
		"Dr. Who T:2 Ep:11":         "Dr. Who",
	}
	for in, expected := range cases {
		if got := CleanSeriesTitle(in); got != expected {
			t.Errorf("CleanSeriesTitle(%q) = %q, expected %q", in, got, expected)
		}
	}
}

func TestCleanSeriesTitleIdempotent(t *testing.T) {
	titles := []string{"T:3 Ep:02 Attack on Titan", "Loki", "", "a  b   c"}
	for _, title := range titles {
		once := CleanSeriesTitle(title)
		twice := CleanSeriesTitle(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q != %q", title, once, twice)
		}
	}
}
