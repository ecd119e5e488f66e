package reports

import (
	"sort"
	"time"

	"github.com/flowtv/mirador/pkg/flow"
	"gonum.org/v1/gonum/stat"
)

type DeviceSessionStats struct {
	Device        string  `json:"device"`
	Sessions      int     `json:"sessions"`
	MeanSeconds   float64 `json:"mean_seconds"`
	StddevSeconds float64 `json:"stddev_seconds"`
	P50Seconds    float64 `json:"p50_seconds"`
	P90Seconds    float64 `json:"p90_seconds"`
}

const secondLayout = "2006-01-02 15:04:05"

// sessionSeconds is the full-precision session length, unlike the
// minute-truncated window used for drop detection. Sessions that do
// not parse or run backwards are not usable as durations.
func sessionSeconds(e flow.ViewingEvent) (float64, bool) {
	if len(e.Tunein) < len(secondLayout) || len(e.Tuneout) < len(secondLayout) {
		return 0, false
	}
	in, err := time.Parse(secondLayout, e.Tunein[:len(secondLayout)])
	if err != nil {
		return 0, false
	}
	out, err := time.Parse(secondLayout, e.Tuneout[:len(secondLayout)])
	if err != nil {
		return 0, false
	}
	secs := out.Sub(in).Seconds()
	if secs < 0 {
		return 0, false
	}
	return secs, true
}

// SessionStatsPerDevice summarizes watch duration per device type:
// session count, mean, standard deviation and the 50th/90th
// percentiles, in seconds.
func SessionStatsPerDevice(events []flow.ViewingEvent) []DeviceSessionStats {
	devices := []string{}
	durations := map[string][]float64{}
	for _, e := range events {
		secs, ok := sessionSeconds(e)
		if !ok {
			continue
		}
		if _, seen := durations[e.DeviceType]; !seen {
			devices = append(devices, e.DeviceType)
		}
		durations[e.DeviceType] = append(durations[e.DeviceType], secs)
	}
	out := []DeviceSessionStats{}
	for _, device := range devices {
		d := durations[device]
		sort.Float64s(d)
		stddev := float64(0)
		if len(d) > 1 {
			stddev = stat.StdDev(d, nil)
		}
		out = append(out, DeviceSessionStats{
			Device:        device,
			Sessions:      len(d),
			MeanSeconds:   stat.Mean(d, nil),
			StddevSeconds: stddev,
			P50Seconds:    stat.Quantile(0.5, stat.Empirical, d, nil),
			P90Seconds:    stat.Quantile(0.9, stat.Empirical, d, nil),
		})
	}
	return out
}
