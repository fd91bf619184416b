// Package browse implements the filter/search pipeline over the resolved
// record views and the single navigation cursor the study frontend drives.
package browse

import (
	"strings"

	"github.com/linwanqing/artstudy/internal/core/record"
)

// # Facet "All" Sentinels
//
// The frontend selects use these Chinese labels as their pass-everything
// option. The empty string and "all" are accepted as equivalents so API
// clients are not forced to send the labels.

const (
	AllDecks      = "全部课程"
	AllTypes      = "全部类型"
	AllRegions    = "全部地区"
	AllStyles     = "全部风格"
	AllCategories = "全部分类"
)

// Record-type filter labels as shown in the UI.
const (
	TypeLabelArtwork   = "作品"
	TypeLabelReference = "参考图"
)

// FilterSpec captures the current facet selections and search text. It is
// transient UI state; only the session holds it between requests.
type FilterSpec struct {
	Search     string `json:"search"`
	Deck       string `json:"deck"`
	RecordType string `json:"recordType"`
	Region     string `json:"region"`
	Style      string `json:"style"`
	Category   string `json:"category"`
}

// isAll reports whether value means "no restriction" for a facet with the
// given label sentinel.
func isAll(value, sentinel string) bool {
	return value == "" || value == "all" || value == sentinel
}

// wantedRecordType maps the record-type selection to a canonical record type,
// or "" when the selection passes everything.
func (spec FilterSpec) wantedRecordType() string {
	switch spec.RecordType {
	case TypeLabelArtwork, record.RecordTypeArtwork:
		return record.RecordTypeArtwork
	case TypeLabelReference, record.RecordTypeReference:
		return record.RecordTypeReference
	default:
		return ""
	}
}

// normalizedSearch returns the trimmed, lowercased search needle.
func (spec FilterSpec) normalizedSearch() string {
	return strings.ToLower(strings.TrimSpace(spec.Search))
}

// ResetFilter is the spec every facet reset returns to: all sentinels
// selected, empty search.
func ResetFilter() FilterSpec {
	return FilterSpec{
		Deck:       AllDecks,
		RecordType: AllTypes,
		Region:     AllRegions,
		Style:      AllStyles,
		Category:   AllCategories,
	}
}
