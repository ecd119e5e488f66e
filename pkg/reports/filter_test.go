package reports

import (
	"strings"
	"testing"

	"github.com/flowtv/mirador/pkg/flow"
)

func event(asset, device, tunein string) flow.ViewingEvent {
	return flow.ViewingEvent{AssetID: asset, DeviceType: device, Tunein: tunein}
}

var filterEvents = []flow.ViewingEvent{
	event("A1", "STB", "2021-02-18 20:00:00"),
	event("A2", "PHONE", "2021-02-18 23:52:06"),
	event("A3", "STB", "2021-02-19 00:10:00"),
	event("A4", "STB", "2021-03-01 10:00:00"),
}

func TestByDay(t *testing.T) {
	out, err := ByDay(filterEvents, "2021-02-18")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 events, got %d", len(out))
	}
	for _, e := range out {
		if !strings.HasPrefix(e.Tunein, "2021-02-18") {
			t.Errorf("event outside day: %q", e.Tunein)
		}
	}
}

func TestByDayEmpty(t *testing.T) {
	out, err := ByDay(filterEvents, "2020-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if out == nil || len(out) != 0 {
		t.Errorf("expected empty non-nil result, got %v", out)
	}
}

func TestByDayRejectsBadShape(t *testing.T) {
	for _, day := range []string{"2021-2-18", "2021-02", "18/02/2021", "2021-02-180", "aaaa-bb-cc"} {
		if _, err := ByDay(filterEvents, day); err == nil {
			t.Errorf("expected error for %q", day)
		}
	}
}

func TestByMonth(t *testing.T) {
	out, err := ByMonth(filterEvents, "2021-02")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 events, got %d", len(out))
	}
	if _, err := ByMonth(filterEvents, "2021-02-18"); err == nil {
		t.Error("expected error for a day passed as month")
	}
}

func TestJoin(t *testing.T) {
	metadata := []flow.ContentMetadata{
		{AssetID: "A1", ContentID: "C1", Title: "first"},
		{AssetID: "A1", ContentID: "C9", Title: "duplicate, ignored"},
		{AssetID: "A2", ContentID: "C2"},
	}
	rows := Join(filterEvents, metadata)
	if len(rows) != len(filterEvents) {
		t.Fatalf("join must keep every event, got %d of %d", len(rows), len(filterEvents))
	}
	if rows[0].Meta == nil || rows[0].Meta.ContentID != "C1" {
		t.Errorf("expected first metadata match for A1, got %+v", rows[0].Meta)
	}
	if rows[2].Meta != nil {
		t.Errorf("expected nil metadata for unmatched asset, got %+v", rows[2].Meta)
	}
}
