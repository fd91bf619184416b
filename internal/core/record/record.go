// Package record holds the immutable base collection of artwork and
// reference-image records and resolves them against user overrides into
// effective views.
package record

import "strings"

// # Record Types

const (
	// RecordTypeArtwork marks a primary artwork slide.
	RecordTypeArtwork = "artwork"
	// RecordTypeReference marks a supporting reference image.
	RecordTypeReference = "reference"
)

// # Display Sentinels

const (
	// NotStatedZh replaces an empty field in Chinese display strings.
	NotStatedZh = "未标注"
	// NotStatedEn replaces an empty field in English display strings.
	NotStatedEn = "Not stated in source slide."
)

// Metadata is the scholarly metadata attached to a base record, as loaded
// from the dataset payload.
type Metadata struct {
	RecordType             string `json:"recordType,omitempty"`
	Year                   string `json:"year,omitempty"`
	Period                 string `json:"period,omitempty"`
	Author                 string `json:"author,omitempty"`
	ProductionPlace        string `json:"productionPlace,omitempty"`
	Region                 string `json:"region,omitempty"`
	Style                  string `json:"style,omitempty"`
	Material               string `json:"material,omitempty"`
	HistoricalBackgroundZh string `json:"historicalBackgroundZh,omitempty"`
	HistoricalBackgroundEn string `json:"historicalBackgroundEn,omitempty"`

	// HistoricalBackgroundSources is an ordered list of source URIs. Order is
	// meaningful and duplicates are preserved.
	HistoricalBackgroundSources []string `json:"historicalBackgroundSources,omitempty"`
}

// BaseRecord is one immutable entry of the study collection, created once at
// load time and never mutated afterward.
type BaseRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	DeckTitle   string   `json:"deckTitle,omitempty"`
	SlideNumber int      `json:"slideNumber,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Metadata    Metadata `json:"metadata"`
}

// ResolvedMetadata is the post-fallback metadata of an effective view.
// Every field is already trimmed; RecordType and Author are never empty.
type ResolvedMetadata struct {
	RecordType             string `json:"recordType"`
	Year                   string `json:"year"`
	Period                 string `json:"period"`
	Author                 string `json:"author"`
	ProductionPlace        string `json:"productionPlace"`
	Region                 string `json:"region"`
	Style                  string `json:"style"`
	Material               string `json:"material"`
	HistoricalBackground   string `json:"historicalBackground"`
	HistoricalBackgroundZh string `json:"historicalBackgroundZh"`
	HistoricalBackgroundEn string `json:"historicalBackgroundEn"`

	HistoricalBackgroundSources []string `json:"historicalBackgroundSources"`
}

// EffectiveView is the fully-resolved, display-ready form of a record:
// base fields merged with the user's override, derived category set, and the
// generated bilingual study text. It is recomputed on demand, never persisted.
type EffectiveView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	DeckTitle   string `json:"deckTitle"`
	SlideNumber int    `json:"slideNumber"`

	Metadata         ResolvedMetadata `json:"metadata"`
	Categories       []string         `json:"categories"`
	StudyDescription string           `json:"studyDescription"`
}

// MetaSummary renders the one-line metadata caption shown under the current
// image: present fields joined with " | ", reference records flagged by type,
// or the no-metadata placeholder when nothing is set.
func (view EffectiveView) MetaSummary() string {
	meta := view.Metadata
	var parts []string

	if meta.Year != "" {
		parts = append(parts, "年份: "+meta.Year)
	}
	if meta.Period != "" {
		parts = append(parts, "时期: "+meta.Period)
	}
	if meta.Author != "" {
		parts = append(parts, "作者: "+meta.Author)
	}
	if meta.ProductionPlace != "" {
		parts = append(parts, "生产地: "+meta.ProductionPlace)
	}
	if meta.Region != "" {
		parts = append(parts, "地区: "+meta.Region)
	}
	if meta.Style != "" {
		parts = append(parts, "风格: "+meta.Style)
	}
	if meta.RecordType == RecordTypeReference {
		parts = append(parts, "类型: 参考图")
	}

	if len(parts) == 0 {
		return "暂无元数据"
	}
	return strings.Join(parts, " | ")
}
