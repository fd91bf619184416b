package browse

import (
	"strings"

	"github.com/linwanqing/artstudy/internal/core/record"
	"github.com/linwanqing/artstudy/pkg/slice"
	"github.com/linwanqing/artstudy/pkg/zhcollate"
)

// FilterAndSearch returns the views matching spec, preserving input order.
// The filter is stable and idempotent: it never re-sorts, and applying the
// same spec twice yields the same result.
func FilterAndSearch(views []record.EffectiveView, spec FilterSpec) []record.EffectiveView {
	wantedType := spec.wantedRecordType()
	needle := spec.normalizedSearch()

	return slice.Filter(views, func(view record.EffectiveView) bool {
		if !isAll(spec.Deck, AllDecks) && view.DeckTitle != spec.Deck {
			return false
		}
		if wantedType != "" && view.Metadata.RecordType != wantedType {
			return false
		}
		if !isAll(spec.Region, AllRegions) && view.Metadata.Region != spec.Region {
			return false
		}
		if !isAll(spec.Style, AllStyles) && view.Metadata.Style != spec.Style {
			return false
		}
		if !isAll(spec.Category, AllCategories) && !containsString(view.Categories, spec.Category) {
			return false
		}

		if needle == "" {
			return true
		}
		return strings.Contains(haystack(view), needle)
	})
}

// haystack flattens every searchable field of a view into one lowercased,
// space-separated string for substring matching.
func haystack(view record.EffectiveView) string {
	meta := view.Metadata

	fields := []string{
		view.Title,
		view.Description,
		view.StudyDescription,
		meta.Year,
		meta.Period,
		meta.Author,
		meta.ProductionPlace,
		meta.Region,
		meta.Style,
		meta.Material,
		meta.RecordType,
		meta.HistoricalBackground,
		meta.HistoricalBackgroundZh,
		meta.HistoricalBackgroundEn,
	}
	fields = append(fields, meta.HistoricalBackgroundSources...)
	fields = append(fields, view.Categories...)

	return strings.ToLower(strings.Join(fields, " "))
}

// Facets holds the distinct option values for each filter select, in
// zh-collated order.
type Facets struct {
	Decks      []string `json:"decks"`
	Regions    []string `json:"regions"`
	Styles     []string `json:"styles"`
	Categories []string `json:"categories"`
}

// DeriveFacets computes the facet option lists from the resolved views.
// Values are trimmed, de-emptied, deduplicated, and sorted with Chinese
// collation; the category facet flattens every view's category set.
func DeriveFacets(views []record.EffectiveView) Facets {
	var categories []string
	for _, view := range views {
		categories = append(categories, view.Categories...)
	}

	return Facets{
		Decks:      zhcollate.Unique(slice.Map(views, func(v record.EffectiveView) string { return v.DeckTitle })),
		Regions:    zhcollate.Unique(slice.Map(views, func(v record.EffectiveView) string { return v.Metadata.Region })),
		Styles:     zhcollate.Unique(slice.Map(views, func(v record.EffectiveView) string { return v.Metadata.Style })),
		Categories: zhcollate.Unique(categories),
	}
}

func containsString(values []string, wanted string) bool {
	for _, value := range values {
		if value == wanted {
			return true
		}
	}
	return false
}
