package main

import (
	"flag"
	"fmt"

	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"

	"github.com/flowtv/mirador/pkg/chart"
	"github.com/flowtv/mirador/pkg/flow"
	"github.com/flowtv/mirador/pkg/reports"
)

func ranked(title string, labels []string, values []float64) {
	fmt.Print(chart.Banner(title))
	fmt.Println(chart.HorizontalBar(values, labels, '▒', 80, "    ", 50))
}

func main() {
	var eventsFile = flag.String("events", "data/train.csv", "viewing event log")
	var metadataFile = flag.String("metadata", "data/metadata.csv", "content metadata table")
	var countriesFile = flag.String("countries", "data/iso_3166_1.json", "iso 3166-1 table")
	var day = flag.String("date", "", "scope to one day, YYYY-MM-DD")
	var month = flag.String("month", "", "scope to one month, YYYY-MM")
	var amount = flag.Int("amount", 5, "how many rows per ranking")
	flag.Parse()

	events, err := flow.LoadEvents(*eventsFile)
	if err != nil {
		log.Fatal(err)
	}
	metadata, err := flow.LoadMetadata(*metadataFile)
	if err != nil {
		log.Fatal(err)
	}
	countries, err := flow.LoadCountryNames(*countriesFile)
	if err != nil {
		log.Fatal(err)
	}

	scoped := events
	if *day != "" {
		scoped, err = reports.ByDay(events, *day)
	} else if *month != "" {
		scoped, err = reports.ByMonth(events, *month)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("%d of %d events in scope", len(scoped), len(events))

	joined := reports.Join(scoped, metadata)

	labels := []string{}
	values := []float64{}
	for _, m := range reports.TopMovies(joined, *amount) {
		labels = append(labels, m.Title)
		values = append(values, float64(m.Views))
	}
	ranked("most watched movies", labels, values)

	labels, values = nil, nil
	for _, s := range reports.TopSeries(joined, metadata, *amount) {
		labels = append(labels, s.CleanTitle)
		values = append(values, float64(s.Views))
	}
	ranked("most watched series", labels, values)

	labels, values = nil, nil
	for _, s := range reports.TopShows(joined, metadata, *amount) {
		labels = append(labels, s.Title)
		values = append(values, float64(s.Views))
	}
	ranked("most watched tv shows", labels, values)

	labels, values = nil, nil
	for _, e := range reports.TopEpisodes(joined, *amount) {
		labels = append(labels, e.Title)
		values = append(values, float64(e.Views))
	}
	ranked("most watched episodes", labels, values)

	labels, values = nil, nil
	for _, c := range reports.CategoryPerShowType(joined, *amount) {
		labels = append(labels, fmt.Sprintf("%s (%s)", c.Category, c.ShowType))
		values = append(values, float64(c.Views))
	}
	ranked("categories per show type", labels, values)

	labels, values = nil, nil
	for _, c := range reports.CountryOfOrigin(joined, countries) {
		name := c.Country
		if name == "" {
			name = c.Code
		}
		labels = append(labels, name)
		values = append(values, float64(c.Views))
	}
	ranked("country of origin of views", labels, values)

	dropped, err := reports.PotentiallyDropped(joined, metadata, *amount)
	if err != nil {
		log.Fatal(err)
	}
	labels, values = nil, nil
	for _, d := range dropped {
		labels = append(labels, d.CleanTitle)
		values = append(values, float64(d.Drops))
	}
	ranked("potentially dropped content", labels, values)

	perDevice, err := reports.DeviceUsageByHour(scoped, events)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(chart.Banner("device usage by hour"))
	data := []float64{}
	for _, row := range perDevice {
		data = append(data, float64(row.Views))
		if len(data) == 24 {
			fmt.Println(asciigraph.Plot(data, asciigraph.Caption(row.Device), asciigraph.Height(10), asciigraph.Width(72)))
			fmt.Println()
			data = nil
		}
	}

	fmt.Print(chart.Banner("session length per device"))
	for _, s := range reports.SessionStatsPerDevice(scoped) {
		fmt.Printf("    %-12s sessions: %6d mean: %8.1fs p50: %8.1fs p90: %8.1fs\n",
			s.Device, s.Sessions, s.MeanSeconds, s.P50Seconds, s.P90Seconds)
	}
}
