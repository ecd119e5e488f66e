package flow

import "strings"

// CleanSeriesTitle strips the season and episode markers from an
// episodic title, e.g. 'T:3 Ep:02 Attack on Titan' -> 'Attack on
// Titan'. Titles without markers pass through unchanged.
func CleanSeriesTitle(title string) string {
	kept := []string{}
	for _, word := range strings.Fields(title) {
		if strings.HasPrefix(word, "T:") || strings.HasPrefix(word, "Ep:") {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}
