// Package override defines the user-supplied metadata overrides layered on
// top of the immutable base records.
//
// Overrides are sparse: a record without an entry, or an entry whose field is
// empty, simply falls back to the base value during resolution. The JSON field
// names match the v3 browser localStorage layout exactly so exported state
// imports cleanly.
package override

import "context"

// Override holds the editable metadata fields for one record, plus the
// categories the user added beyond the record's base tags.
type Override struct {
	Year            string `json:"year,omitempty"`
	Period          string `json:"period,omitempty"`
	Author          string `json:"author,omitempty"`
	ProductionPlace string `json:"productionPlace,omitempty"`
	Region          string `json:"region,omitempty"`
	Style           string `json:"style,omitempty"`
	Material        string `json:"material,omitempty"`

	// HistoricalBackground is the legacy unified background field from the
	// pre-split layout. Resolution consults it only as a fallback for the
	// Chinese background; it is never written by new saves.
	HistoricalBackground   string `json:"historicalBackground,omitempty"`
	HistoricalBackgroundZh string `json:"historicalBackgroundZh,omitempty"`
	HistoricalBackgroundEn string `json:"historicalBackgroundEn,omitempty"`

	// Categories holds only user-added categories. Categories already present
	// in the base record's tags are never duplicated here.
	Categories []string `json:"categories,omitempty"`
}

// Repository persists the full record-id -> Override map as one document.
//
// Load must treat a missing or malformed stored document as an empty map,
// never as an error.
type Repository interface {
	Load(ctx context.Context) (map[string]Override, error)
	Save(ctx context.Context, overrides map[string]Override) error
}
