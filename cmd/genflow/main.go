package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/bxcodec/faker"
	log "github.com/sirupsen/logrus"

	"github.com/flowtv/mirador/pkg/flow"
)

var devices = []string{"STB", "CLOUD", "STATIONARY", "PHONE", "TABLET"}
var countries = []string{"US", "AR", "GB", "ES", "KR", "JP", "FR", "MX", "ZZ"}
var categories = []string{
	"Drama/Suspenso",
	"Comedia",
	"Acción/Aventura",
	"Infantil",
	"Documental/Historia",
	"Terror/Suspenso",
}

type fakeContent struct {
	AssetID   string `faker:"uuid_digit"`
	ContentID string `faker:"uuid_digit"`
	Name      string `faker:"word"`
}

func genContent() fakeContent {
	var s fakeContent
	if err := faker.FakeData(&s); err != nil {
		panic(err)
	}
	s.Name = strings.Title(s.Name)
	return s
}

func pick(list []string) string {
	return list[rand.Intn(len(list))]
}

func genMovies(n int) []flow.ContentMetadata {
	out := []flow.ContentMetadata{}
	for i := 0; i < n; i++ {
		s := genContent()
		out = append(out, flow.ContentMetadata{
			AssetID:         s.AssetID,
			ContentID:       s.ContentID,
			Title:           s.Name,
			ShowType:        flow.ShowTypeMovie,
			Category:        pick(categories),
			CountryOfOrigin: pick(countries),
		})
	}
	return out
}

// one metadata row per episode, all sharing the series content_id, the
// season and episode markers embedded in the title the way the real
// dump has them.
func genEpisodic(n, episodes int, showType string) []flow.ContentMetadata {
	out := []flow.ContentMetadata{}
	for i := 0; i < n; i++ {
		s := genContent()
		category := pick(categories)
		country := pick(countries)
		for ep := 1; ep <= episodes; ep++ {
			var e fakeContent
			if err := faker.FakeData(&e); err != nil {
				panic(err)
			}
			out = append(out, flow.ContentMetadata{
				AssetID:         e.AssetID,
				ContentID:       s.ContentID,
				Title:           fmt.Sprintf("T:%d Ep:%02d %s", 1+rand.Intn(3), ep, s.Name),
				ShowType:        showType,
				Category:        category,
				CountryOfOrigin: country,
			})
		}
	}
	return out
}

func genEvents(n int, metadata []flow.ContentMetadata, from time.Time, days int) []flow.ViewingEvent {
	out := []flow.ViewingEvent{}
	for i := 0; i < n; i++ {
		m := metadata[rand.Intn(len(metadata))]
		tunein := from.AddDate(0, 0, rand.Intn(days)).
			Add(time.Duration(rand.Intn(24*60*60)) * time.Second)
		tuneout := tunein.Add(time.Duration(30+rand.Intn(3*60*60)) * time.Second)
		out = append(out, flow.ViewingEvent{
			AssetID:    m.AssetID,
			DeviceType: pick(devices),
			Tunein:     tunein.Format("2006-01-02 15:04:05"),
			Tuneout:    tuneout.Format("2006-01-02 15:04:05"),
		})
	}
	return out
}

func writeCSV(path string, comma rune, header []string, rows [][]string) {
	fd, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer fd.Close()
	w := csv.NewWriter(fd)
	w.Comma = comma
	if err := w.Write(header); err != nil {
		log.Fatal(err)
	}
	if err := w.WriteAll(rows); err != nil {
		log.Fatal(err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatal(err)
	}
}

func main() {
	var nMovies = flag.Int("n-movies", 50, "number of movies")
	var nSeries = flag.Int("n-series", 30, "number of series (10 episodes each)")
	var nShows = flag.Int("n-shows", 10, "number of tv shows (10 episodes each)")
	var nEvents = flag.Int("n-events", 10000, "number of viewing events")
	var from = flag.String("from", "2021-01-01", "first day of the generated range")
	var days = flag.Int("days", 90, "number of days in the generated range")
	var out = flag.String("out", "data", "output directory")
	flag.Parse()

	start, err := time.Parse("2006-01-02", *from)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*out, 0755); err != nil {
		log.Fatal(err)
	}

	metadata := genMovies(*nMovies)
	metadata = append(metadata, genEpisodic(*nSeries, 10, flow.ShowTypeSerie)...)
	metadata = append(metadata, genEpisodic(*nShows, 10, flow.ShowTypeTV)...)
	events := genEvents(*nEvents, metadata, start, *days)

	metaRows := [][]string{}
	for _, m := range metadata {
		metaRows = append(metaRows, []string{m.AssetID, m.ContentID, m.Title, m.ShowType, m.Category, m.CountryOfOrigin})
	}
	writeCSV(*out+"/metadata.csv", ';',
		[]string{"asset_id", "content_id", "title", "show_type", "category", "country_of_origin"}, metaRows)

	eventRows := [][]string{}
	for _, e := range events {
		eventRows = append(eventRows, []string{e.AssetID, e.DeviceType, e.Tunein, e.Tuneout})
	}
	writeCSV(*out+"/train.csv", ',',
		[]string{"asset_id", "device_type", "tunein", "tuneout"}, eventRows)

	log.Printf("wrote %d metadata rows and %d events to %s", len(metadata), len(events), *out)
}
