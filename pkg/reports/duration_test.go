package reports

import (
	"math"
	"testing"

	"github.com/flowtv/mirador/pkg/flow"
)

func TestSessionStatsPerDevice(t *testing.T) {
	events := []flow.ViewingEvent{
		{AssetID: "A", DeviceType: "STB", Tunein: "2021-02-18 20:00:00", Tuneout: "2021-02-18 20:01:40"},  // 100s
		{AssetID: "A", DeviceType: "STB", Tunein: "2021-02-18 21:00:00", Tuneout: "2021-02-18 21:05:00"},  // 300s
		{AssetID: "A", DeviceType: "PHONE", Tunein: "2021-02-18 09:00:00", Tuneout: "2021-02-18 09:00:30"}, // 30s
	}
	out := SessionStatsPerDevice(events)
	if len(out) != 2 {
		t.Fatalf("expected 2 devices, got %d", len(out))
	}
	stb := out[0]
	if stb.Device != "STB" || stb.Sessions != 2 {
		t.Fatalf("bad stb stats: %+v", stb)
	}
	if math.Abs(stb.MeanSeconds-200) > 0.001 {
		t.Errorf("bad mean: %f", stb.MeanSeconds)
	}
	phone := out[1]
	if phone.Sessions != 1 || phone.MeanSeconds != 30 {
		t.Errorf("bad phone stats: %+v", phone)
	}
	if phone.StddevSeconds != 0 {
		t.Errorf("single session stddev must be 0, got %f", phone.StddevSeconds)
	}
}

func TestSessionStatsSkipsUnusableSessions(t *testing.T) {
	events := []flow.ViewingEvent{
		// runs backwards
		{AssetID: "A", DeviceType: "STB", Tunein: "2021-02-18 21:00:00", Tuneout: "2021-02-18 20:00:00"},
		// truncated tuneout
		{AssetID: "A", DeviceType: "STB", Tunein: "2021-02-18 21:00:00", Tuneout: "2021-02-18"},
		{AssetID: "A", DeviceType: "STB", Tunein: "2021-02-18 20:00:00", Tuneout: "2021-02-18 20:01:00"},
	}
	out := SessionStatsPerDevice(events)
	if len(out) != 1 || out[0].Sessions != 1 {
		t.Fatalf("expected the single usable session, got %+v", out)
	}
	if out[0].MeanSeconds != 60 {
		t.Errorf("bad mean: %f", out[0].MeanSeconds)
	}
}
