package flow

import (
	"errors"
	"fmt"
)

// show_type values as they appear in the metadata dump. Serie, Web and
// Rolling are all series-like and must be counted together.
const (
	ShowTypeMovie   = "Película"
	ShowTypeSerie   = "Serie"
	ShowTypeWeb     = "Web"
	ShowTypeRolling = "Rolling"
	ShowTypeTV      = "TV"
)

func IsSeriesLike(showType string) bool {
	return showType == ShowTypeSerie || showType == ShowTypeWeb || showType == ShowTypeRolling
}

// ViewingEvent is one tune-in session. Timestamps are kept as strings
// in 'YYYY-MM-DD HH:MM:SS(.f)' form, the same representation the dump
// uses, so day and month scoping is a plain prefix match.
type ViewingEvent struct {
	AssetID    string `json:"asset_id"`
	DeviceType string `json:"device_type"`
	Tunein     string `json:"tunein"`
	Tuneout    string `json:"tuneout"`
}

// ContentMetadata describes one asset. For episodic content many
// asset_ids (episodes) share one content_id (the series).
type ContentMetadata struct {
	AssetID         string `json:"asset_id"`
	ContentID       string `json:"content_id"`
	Title           string `json:"title"`
	ShowType        string `json:"show_type"`
	Category        string `json:"category"`
	CountryOfOrigin string `json:"country_of_origin"`
}

// CountryNames maps ISO 3166-1 alpha-2 codes to display names.
type CountryNames map[string]string

// minimum tunein shape is 'YYYY-MM-DD HH:MM', hour digits at a fixed
// offset. Everything downstream (day scoping, hour extraction, drop
// windows) slices into this, so it is rejected at the boundary.
const minTimestampLen = 16

func validTimestamp(s string) bool {
	if len(s) < minTimestampLen {
		return false
	}
	if s[4] != '-' || s[7] != '-' || s[10] != ' ' || s[13] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6, 8, 9, 11, 12, 14, 15} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func ValidateEvent(e *ViewingEvent) error {
	if e.AssetID == "" {
		return errors.New("need asset_id")
	}
	if e.DeviceType == "" {
		return errors.New("need device_type")
	}
	if !validTimestamp(e.Tunein) {
		return fmt.Errorf("bad tunein timestamp: %q", e.Tunein)
	}
	return nil
}

func ValidateMetadata(m *ContentMetadata) error {
	if m.AssetID == "" {
		return errors.New("need asset_id")
	}
	if m.ContentID == "" {
		return errors.New("need content_id")
	}
	return nil
}
