package flow

import (
	"io/ioutil"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/golang/snappy"
)

const eventsCSV = `asset_id,device_type,tunein,tuneout
A1,STB,2021-02-18 20:00:00,2021-02-18 21:30:00
A2,PHONE,2021-02-18 23:52:06,2021-02-19 00:52:06
`

const metadataCSV = `asset_id;content_id;title;show_type;category;country_of_origin
A1;C1;Some Movie;Película;Drama/Suspenso;US
A2;C2;T:1 Ep:01 Some Serie;Serie;Comedia;AR
`

func TestReadEvents(t *testing.T) {
	events, err := ReadEvents(strings.NewReader(eventsCSV))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].AssetID != "A1" || events[0].DeviceType != "STB" {
		t.Errorf("bad first event: %+v", events[0])
	}
	if events[1].Tuneout != "2021-02-19 00:52:06" {
		t.Errorf("bad tuneout: %q", events[1].Tuneout)
	}
}

func TestReadEventsShuffledColumns(t *testing.T) {
	events, err := ReadEvents(strings.NewReader(`tunein,asset_id,tuneout,device_type
2021-02-18 20:00:00,A1,2021-02-18 21:30:00,STB
`))
	if err != nil {
		t.Fatal(err)
	}
	if events[0].AssetID != "A1" || events[0].Tunein != "2021-02-18 20:00:00" {
		t.Errorf("columns not mapped by header: %+v", events[0])
	}
}

func TestReadEventsRejectsBadRows(t *testing.T) {
	bad := []string{
		"asset_id,device_type,tunein\nA1,STB,2021-02-18 20:00:00\n",
		"asset_id,device_type,tunein,tuneout\n,STB,2021-02-18 20:00:00,2021-02-18 21:00:00\n",
		"asset_id,device_type,tunein,tuneout\nA1,STB,2021-02-18,2021-02-18 21:00:00\n",
	}
	for _, in := range bad {
		if _, err := ReadEvents(strings.NewReader(in)); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestReadMetadata(t *testing.T) {
	metadata, err := ReadMetadata(strings.NewReader(metadataCSV))
	if err != nil {
		t.Fatal(err)
	}
	if len(metadata) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(metadata))
	}
	if metadata[0].ShowType != ShowTypeMovie {
		t.Errorf("bad show_type: %q", metadata[0].ShowType)
	}
	if metadata[1].Title != "T:1 Ep:01 Some Serie" {
		t.Errorf("bad title: %q", metadata[1].Title)
	}
}

func TestLoadSnappyCompressed(t *testing.T) {
	dir, err := ioutil.TempDir("", "load")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	fn := path.Join(dir, "train.csv.sz")
	fd, err := os.Create(fn)
	if err != nil {
		t.Fatal(err)
	}
	w := snappy.NewBufferedWriter(fd)
	if _, err := w.Write([]byte(eventsCSV)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	fd.Close()

	events, err := LoadEvents(fn)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events from snappy file, got %d", len(events))
	}
}

func TestLoadCountryNames(t *testing.T) {
	dir, err := ioutil.TempDir("", "countries")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	fn := path.Join(dir, "iso_3166_1.json")
	if err := ioutil.WriteFile(fn, []byte(`{"AR": "Argentina", "US": "United States"}`), 0644); err != nil {
		t.Fatal(err)
	}
	names, err := LoadCountryNames(fn)
	if err != nil {
		t.Fatal(err)
	}
	if names["AR"] != "Argentina" {
		t.Errorf("bad name for AR: %q", names["AR"])
	}
	if names["ZZ"] != "" {
		t.Errorf("unknown code should resolve to empty, got %q", names["ZZ"])
	}
}
