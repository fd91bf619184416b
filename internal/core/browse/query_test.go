package browse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linwanqing/artstudy/internal/core/browse"
	"github.com/linwanqing/artstudy/internal/core/override"
	"github.com/linwanqing/artstudy/internal/core/record"
)

// studyViews resolves a small five-record collection covering two decks,
// two regions, and both record types.
func studyViews() []record.EffectiveView {
	bases := []record.BaseRecord{
		{
			ID: "r1", Title: "青花瓷瓶", Description: "Ming porcelain vase", DeckTitle: "明代工艺",
			Tags: []string{"Porcelain"},
			Metadata: record.Metadata{
				Region: "Jiangnan", Style: "青花", Material: "瓷",
				HistoricalBackgroundSources: []string{"https://example.org/kiln"},
			},
		},
		{
			ID: "r2", Title: "富春山居图", DeckTitle: "元代绘画",
			Tags:     []string{"Landscape"},
			Metadata: record.Metadata{Region: "Jiangnan", Style: "水墨", Author: "黄公望"},
		},
		{
			ID: "r3", Title: "浮世绘参考", DeckTitle: "明代工艺",
			Metadata: record.Metadata{RecordType: record.RecordTypeReference, Region: "Kyoto", Style: "浮世绘"},
		},
		{
			ID: "r4", Title: "掐丝珐琅", DeckTitle: "明代工艺",
			Tags:     []string{"Enamel"},
			Metadata: record.Metadata{Region: "北京", Style: "珐琅"},
		},
		{
			ID: "r5", Title: "仕女图", DeckTitle: "元代绘画",
			Tags:     []string{"Portrait"},
			Metadata: record.Metadata{Region: "北京", Style: "工笔"},
		},
	}

	views := make([]record.EffectiveView, len(bases))
	for i, base := range bases {
		views[i] = record.Resolve(base, override.Override{})
	}
	return views
}

func ids(views []record.EffectiveView) []string {
	out := make([]string, len(views))
	for i, view := range views {
		out[i] = view.ID
	}
	return out
}

/*
TestFilterAndSearch_AllSentinelsPassEverything verifies the reset filter
returns the full input in original order, and that applying it twice is
idempotent.
*/
func TestFilterAndSearch_AllSentinelsPassEverything(t *testing.T) {
	views := studyViews()

	once := browse.FilterAndSearch(views, browse.ResetFilter())
	assert.Equal(t, []string{"r1", "r2", "r3", "r4", "r5"}, ids(once))

	twice := browse.FilterAndSearch(once, browse.ResetFilter())
	assert.Equal(t, once, twice)
}

/*
TestFilterAndSearch_FacetConjunction verifies every facet must match.
*/
func TestFilterAndSearch_FacetConjunction(t *testing.T) {
	views := studyViews()

	tests := []struct {
		name string
		spec browse.FilterSpec
		want []string
	}{
		{"deck", browse.FilterSpec{Deck: "明代工艺"}, []string{"r1", "r3", "r4"}},
		{"region", browse.FilterSpec{Region: "北京"}, []string{"r4", "r5"}},
		{"style", browse.FilterSpec{Style: "水墨"}, []string{"r2"}},
		{"category", browse.FilterSpec{Category: "Portrait"}, []string{"r5"}},
		{"type_reference_label", browse.FilterSpec{RecordType: "参考图"}, []string{"r3"}},
		{"type_artwork_canonical", browse.FilterSpec{RecordType: "artwork"}, []string{"r1", "r2", "r4", "r5"}},
		{"deck_and_region", browse.FilterSpec{Deck: "明代工艺", Region: "北京"}, []string{"r4"}},
		{"no_match", browse.FilterSpec{Deck: "元代绘画", Region: "Kyoto"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := browse.FilterAndSearch(views, tt.spec)
			assert.Equal(t, tt.want, append([]string{}, ids(got)...))
		})
	}
}

/*
TestFilterAndSearch_CaseInsensitiveSearch verifies substring matching ignores
case and reaches every searchable field, including source URIs and categories.
*/
func TestFilterAndSearch_CaseInsensitiveSearch(t *testing.T) {
	views := studyViews()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"title_zh", "山居", []string{"r2"}},
		{"description_mixed_case", "MING PORCELAIN", []string{"r1"}},
		{"author", "黄公望", []string{"r2"}},
		{"source_uri", "example.org/kiln", []string{"r1"}},
		{"category", "landscape", []string{"r2"}},
		{"synthesized_author", "kyoto artist", []string{"r3"}},
		{"no_hit", "oracle bone", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := browse.FilterAndSearch(views, browse.FilterSpec{Search: tt.search})
			assert.Equal(t, tt.want, append([]string{}, ids(got)...))
		})
	}
}

/*
TestDeriveFacets verifies distinct facet values: trimmed, deduplicated, and
zh-collated, with categories flattened across views.
*/
func TestDeriveFacets(t *testing.T) {
	facets := browse.DeriveFacets(studyViews())

	assert.Equal(t, []string{"明代工艺", "元代绘画"}, facets.Decks)
	assert.ElementsMatch(t, []string{"北京", "Jiangnan", "Kyoto"}, facets.Regions)
	assert.Equal(t, []string{"珐琅", "浮世绘", "工笔", "青花", "水墨"}, facets.Styles)
	assert.Equal(t, []string{"Enamel", "Landscape", "Porcelain", "Portrait"}, facets.Categories)
}
