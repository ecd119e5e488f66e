package reports

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/flowtv/mirador/pkg/flow"
)

const keySep = "\x00"

type MovieViews struct {
	AssetID string `json:"asset_id"`
	Title   string `json:"title"`
	Views   int    `json:"views"`
}

// TopMovies ranks movies by view count, grouped by (content_id, title).
// The asset_id field carries the content id, matching the upstream
// column naming.
func TopMovies(rows []JoinedRow, amount int) []MovieViews {
	t := NewTally()
	for _, r := range rows {
		if r.Meta == nil || r.Meta.ShowType != flow.ShowTypeMovie {
			continue
		}
		e := t.Add(r.Meta.ContentID + keySep + r.Meta.Title)
		if e.Row == nil {
			e.Row = r.Meta
		}
	}
	out := []MovieViews{}
	for _, e := range t.Top(amount) {
		m := e.Row.(*flow.ContentMetadata)
		out = append(out, MovieViews{AssetID: m.ContentID, Title: m.Title, Views: e.Count})
	}
	return out
}

type SeriesViews struct {
	SerieID    string `json:"serie_id"`
	Title      string `json:"title"`
	CleanTitle string `json:"clean_title"`
	Views      int    `json:"views"`
}

func contentViews(rows []JoinedRow, metadata []flow.ContentMetadata, amount int, match func(string) bool) []SeriesViews {
	t := NewTally()
	for _, r := range rows {
		if r.Meta == nil || !match(r.Meta.ShowType) {
			continue
		}
		t.Add(r.Meta.ContentID)
	}
	perContent := firstPerContent(metadata)
	out := []SeriesViews{}
	for _, e := range t.Top(amount) {
		v := SeriesViews{SerieID: e.Key, Views: e.Count}
		if m := perContent[e.Key]; m != nil {
			v.Title = m.Title
			v.CleanTitle = flow.CleanSeriesTitle(m.Title)
		}
		out = append(out, v)
	}
	return out
}

// TopSeries ranks series by view count summed across all their
// episodes. Serie, Web and Rolling all count as series.
func TopSeries(rows []JoinedRow, metadata []flow.ContentMetadata, amount int) []SeriesViews {
	return contentViews(rows, metadata, amount, flow.IsSeriesLike)
}

// TopShows is TopSeries for broadcast TV shows.
func TopShows(rows []JoinedRow, metadata []flow.ContentMetadata, amount int) []SeriesViews {
	return contentViews(rows, metadata, amount, func(s string) bool { return s == flow.ShowTypeTV })
}

type EpisodeViews struct {
	AssetID    string `json:"asset_id"`
	SerieID    string `json:"serie_id"`
	Title      string `json:"title"`
	CleanTitle string `json:"clean_title"`
	Views      int    `json:"views"`
}

// TopEpisodes ranks individual episodes of series-like content.
func TopEpisodes(rows []JoinedRow, amount int) []EpisodeViews {
	t := NewTally()
	for _, r := range rows {
		if r.Meta == nil || !flow.IsSeriesLike(r.Meta.ShowType) {
			continue
		}
		e := t.Add(r.Event.AssetID)
		if e.Row == nil {
			e.Row = r.Meta
		}
	}
	out := []EpisodeViews{}
	for _, e := range t.Top(amount) {
		m := e.Row.(*flow.ContentMetadata)
		out = append(out, EpisodeViews{
			AssetID:    e.Key,
			SerieID:    m.ContentID,
			Title:      m.Title,
			CleanTitle: flow.CleanSeriesTitle(m.Title),
			Views:      e.Count,
		})
	}
	return out
}

type DeviceHourViews struct {
	Device string `json:"device"`
	Hour   string `json:"hour"`
	Views  int    `json:"views"`
}

func hourOf(tunein string) (int, error) {
	if len(tunein) < 13 {
		return 0, fmt.Errorf("timestamp too short for hour extraction: %q", tunein)
	}
	h, err := strconv.Atoi(tunein[11:13])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("bad hour in timestamp %q", tunein)
	}
	return h, nil
}

// DeviceUsageByHour counts views per (device, hour-of-day). The device
// set is seeded from the unfiltered reference table so the result is a
// dense 24xD matrix with zero rows for quiet hours. The hour is the
// two-digit substring of tunein, not a parsed time.
func DeviceUsageByHour(scoped, reference []flow.ViewingEvent) ([]DeviceHourViews, error) {
	devices := []string{}
	counts := map[string]*[24]int{}
	seed := func(device string) *[24]int {
		c, ok := counts[device]
		if !ok {
			c = &[24]int{}
			counts[device] = c
			devices = append(devices, device)
		}
		return c
	}
	for _, e := range reference {
		seed(e.DeviceType)
	}
	for _, e := range scoped {
		h, err := hourOf(e.Tunein)
		if err != nil {
			return nil, err
		}
		seed(e.DeviceType)[h]++
	}
	out := make([]DeviceHourViews, 0, 24*len(devices))
	for _, device := range devices {
		for h := 0; h < 24; h++ {
			out = append(out, DeviceHourViews{
				Device: device,
				Hour:   fmt.Sprintf("%02d", h),
				Views:  counts[device][h],
			})
		}
	}
	return out, nil
}

type CategoryViews struct {
	Category string `json:"category"`
	ShowType string `json:"show_type"`
	Views    int    `json:"views"`
}

// mainCategory is the first slash-delimited segment. A category with
// no slash (or an empty one) is its own main category.
func mainCategory(category string) string {
	if i := strings.IndexByte(category, '/'); i >= 0 {
		return category[:i]
	}
	return category
}

// CategoryPerShowType counts views per (main category, show type) for
// Serie, TV and Película rows, restricted to the amount most frequent
// main categories. The frequency cut is computed over all rows before
// the show-type restriction, so a globally popular category stays in
// even when one of its show-type pairs is small. Rows without metadata
// count towards the frequencies with an empty category.
func CategoryPerShowType(rows []JoinedRow, amount int) []CategoryViews {
	freq := NewTally()
	for _, r := range rows {
		category := ""
		if r.Meta != nil {
			category = r.Meta.Category
		}
		freq.Add(mainCategory(category))
	}
	wanted := map[string]bool{}
	for _, e := range freq.Top(amount) {
		wanted[e.Key] = true
	}

	t := NewTally()
	for _, r := range rows {
		if r.Meta == nil {
			continue
		}
		st := r.Meta.ShowType
		if st != flow.ShowTypeSerie && st != flow.ShowTypeTV && st != flow.ShowTypeMovie {
			continue
		}
		category := mainCategory(r.Meta.Category)
		if !wanted[category] {
			continue
		}
		t.Add(category + keySep + st)
	}
	out := []CategoryViews{}
	for _, e := range t.Top(0) {
		parts := strings.SplitN(e.Key, keySep, 2)
		out = append(out, CategoryViews{Category: parts[0], ShowType: parts[1], Views: e.Count})
	}
	return out
}

type CountryViews struct {
	Code    string `json:"code"`
	Country string `json:"country"`
	Views   int    `json:"views"`
}

// CountryOfOrigin counts views per alpha-2 country code of the watched
// content. Codes missing from the name table keep their count with an
// empty name.
func CountryOfOrigin(rows []JoinedRow, names flow.CountryNames) []CountryViews {
	t := NewTally()
	for _, r := range rows {
		if r.Meta == nil {
			continue
		}
		t.Add(r.Meta.CountryOfOrigin)
	}
	out := []CountryViews{}
	for _, e := range t.Top(0) {
		out = append(out, CountryViews{Code: e.Key, Country: names[e.Key], Views: e.Count})
	}
	return out
}

type DroppedContent struct {
	ContentID  string `json:"content_id"`
	Title      string `json:"title"`
	CleanTitle string `json:"clean_title"`
	Drops      int    `json:"drops"`
}

// timestamps are truncated to the minute before subtracting, the
// upstream pipeline never looked at the seconds.
const minuteLayout = "2006-01-02 15:04"

func secondsWatched(e flow.ViewingEvent) (int64, error) {
	if len(e.Tunein) < len(minuteLayout) || len(e.Tuneout) < len(minuteLayout) {
		return 0, fmt.Errorf("timestamp too short in session %q - %q", e.Tunein, e.Tuneout)
	}
	in, err := time.Parse(minuteLayout, e.Tunein[:len(minuteLayout)])
	if err != nil {
		return 0, err
	}
	out, err := time.Parse(minuteLayout, e.Tuneout[:len(minuteLayout)])
	if err != nil {
		return 0, err
	}
	return int64(out.Sub(in) / time.Second), nil
}

// PotentiallyDropped counts sessions that ended after more than 60 but
// fewer than 300 seconds, per content. Callers restrict rows to one
// show type first when they want the movie/series split.
func PotentiallyDropped(rows []JoinedRow, metadata []flow.ContentMetadata, amount int) ([]DroppedContent, error) {
	t := NewTally()
	for _, r := range rows {
		if r.Meta == nil {
			continue
		}
		secs, err := secondsWatched(r.Event)
		if err != nil {
			return nil, err
		}
		if secs <= 60 || secs >= 300 {
			continue
		}
		t.Add(r.Meta.ContentID)
	}
	perContent := firstPerContent(metadata)
	out := []DroppedContent{}
	for _, e := range t.Top(amount) {
		d := DroppedContent{ContentID: e.Key, Drops: e.Count}
		if m := perContent[e.Key]; m != nil {
			d.Title = m.Title
			d.CleanTitle = flow.CleanSeriesTitle(m.Title)
		}
		out = append(out, d)
	}
	return out, nil
}
