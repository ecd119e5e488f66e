package flow

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/golang/snappy"
)

// openInput opens path for reading, transparently decompressing
// snappy-framed files (.sz).
func openInput(path string) (io.ReadCloser, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".sz") {
		return &snappyReadCloser{r: snappy.NewReader(fd), fd: fd}, nil
	}
	return fd, nil
}

type snappyReadCloser struct {
	r  *snappy.Reader
	fd *os.File
}

func (s *snappyReadCloser) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

func (s *snappyReadCloser) Close() error {
	return s.fd.Close()
}

func headerIndex(header []string, required ...string) (map[string]int, error) {
	idx := map[string]int{}
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q in header %v", name, header)
		}
	}
	return idx, nil
}

// LoadEvents reads the viewing event log (comma separated, header
// row). Rows failing validation are rejected with their line number.
func LoadEvents(path string) ([]ViewingEvent, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return ReadEvents(in)
}

func ReadEvents(in io.Reader) ([]ViewingEvent, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, err
	}
	idx, err := headerIndex(header, "asset_id", "device_type", "tunein", "tuneout")
	if err != nil {
		return nil, err
	}
	out := []ViewingEvent{}
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		e := ViewingEvent{
			AssetID:    row[idx["asset_id"]],
			DeviceType: row[idx["device_type"]],
			Tunein:     row[idx["tunein"]],
			Tuneout:    row[idx["tuneout"]],
		}
		if err := ValidateEvent(&e); err != nil {
			return nil, fmt.Errorf("line %d: %s", line, err.Error())
		}
		out = append(out, e)
	}
	return out, nil
}

// LoadMetadata reads the content metadata table. The upstream dump is
// semicolon separated.
func LoadMetadata(path string) ([]ContentMetadata, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return ReadMetadata(in)
}

func ReadMetadata(in io.Reader) ([]ContentMetadata, error) {
	r := csv.NewReader(in)
	r.Comma = ';'
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, err
	}
	idx, err := headerIndex(header, "asset_id", "content_id", "title", "show_type", "category", "country_of_origin")
	if err != nil {
		return nil, err
	}
	out := []ContentMetadata{}
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		m := ContentMetadata{
			AssetID:         row[idx["asset_id"]],
			ContentID:       row[idx["content_id"]],
			Title:           row[idx["title"]],
			ShowType:        row[idx["show_type"]],
			Category:        row[idx["category"]],
			CountryOfOrigin: row[idx["country_of_origin"]],
		}
		if err := ValidateMetadata(&m); err != nil {
			return nil, fmt.Errorf("line %d: %s", line, err.Error())
		}
		out = append(out, m)
	}
	return out, nil
}

// LoadCountryNames reads the static ISO 3166-1 table, a json object of
// alpha-2 code to country name.
func LoadCountryNames(path string) (CountryNames, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, err
	}
	out := CountryNames{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
