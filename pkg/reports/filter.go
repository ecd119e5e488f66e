package reports

import (
	"fmt"
	"strings"

	"github.com/flowtv/mirador/pkg/flow"
)

// FilterByPrefix returns the subsequence of events whose tunein starts
// with prefix. This is a textual match, not a calendar range: callers
// pass zero-padded dates in the same form the timestamps use. An empty
// prefix keeps everything.
func FilterByPrefix(events []flow.ViewingEvent, prefix string) []flow.ViewingEvent {
	if prefix == "" {
		return events
	}
	out := []flow.ViewingEvent{}
	for _, e := range events {
		if strings.HasPrefix(e.Tunein, prefix) {
			out = append(out, e)
		}
	}
	return out
}

func digitsAndDashes(s string, dashes ...int) bool {
	d := map[int]bool{}
	for _, i := range dashes {
		d[i] = true
	}
	for i := 0; i < len(s); i++ {
		if d[i] {
			if s[i] != '-' {
				return false
			}
		} else if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ByDay scopes events to one day, day in 'YYYY-MM-DD' form.
func ByDay(events []flow.ViewingEvent, day string) ([]flow.ViewingEvent, error) {
	if len(day) != 10 || !digitsAndDashes(day, 4, 7) {
		return nil, fmt.Errorf("bad day %q, want YYYY-MM-DD", day)
	}
	return FilterByPrefix(events, day), nil
}

// ByMonth scopes events to one month, month in 'YYYY-MM' form.
func ByMonth(events []flow.ViewingEvent, month string) ([]flow.ViewingEvent, error) {
	if len(month) != 7 || !digitsAndDashes(month, 4) {
		return nil, fmt.Errorf("bad month %q, want YYYY-MM", month)
	}
	return FilterByPrefix(events, month), nil
}

// JoinedRow is one event with its metadata attached. Meta is nil when
// no metadata row matched the asset; aggregators with inner-join
// semantics skip those, the device and category ones keep them.
type JoinedRow struct {
	Event flow.ViewingEvent
	Meta  *flow.ContentMetadata
}

// Join attaches metadata to events by asset_id. When several metadata
// rows share an asset_id the first one wins.
func Join(events []flow.ViewingEvent, metadata []flow.ContentMetadata) []JoinedRow {
	byAsset := make(map[string]*flow.ContentMetadata, len(metadata))
	for i := range metadata {
		m := &metadata[i]
		if _, ok := byAsset[m.AssetID]; !ok {
			byAsset[m.AssetID] = m
		}
	}
	out := make([]JoinedRow, 0, len(events))
	for _, e := range events {
		out = append(out, JoinedRow{Event: e, Meta: byAsset[e.AssetID]})
	}
	return out
}

// firstPerContent mirrors a drop_duplicates on content_id: one
// metadata row per content, first match.
func firstPerContent(metadata []flow.ContentMetadata) map[string]*flow.ContentMetadata {
	out := make(map[string]*flow.ContentMetadata, len(metadata))
	for i := range metadata {
		m := &metadata[i]
		if _, ok := out[m.ContentID]; !ok {
			out[m.ContentID] = m
		}
	}
	return out
}
