package compare_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linwanqing/artstudy/internal/core/compare"
	"github.com/linwanqing/artstudy/internal/core/override"
	"github.com/linwanqing/artstudy/internal/core/record"
)

/*
TestNewPairKey_Symmetric verifies both id orders produce the same key and
that Split round-trips the sorted ids.
*/
func TestNewPairKey_Symmetric(t *testing.T) {
	assert.Equal(t, compare.NewPairKey("r2", "r1"), compare.NewPairKey("r1", "r2"))
	assert.Equal(t, compare.PairKey("r1__r2"), compare.NewPairKey("r2", "r1"))

	idA, idB, ok := compare.NewPairKey("r9", "r3").Split()
	assert.True(t, ok)
	assert.Equal(t, "r3", idA)
	assert.Equal(t, "r9", idB)

	_, _, ok = compare.PairKey("garbage").Split()
	assert.False(t, ok)
}

func resolvedView(base record.BaseRecord) record.EffectiveView {
	return record.Resolve(base, override.Override{})
}

/*
TestDiff_FixedRowOrder verifies the table rows come out in the study layout
order with the Chinese labels, and that equality is computed per row.
*/
func TestDiff_FixedRowOrder(t *testing.T) {
	viewA := resolvedView(record.BaseRecord{
		ID: "r1", Title: "青花瓷瓶", DeckTitle: "明代工艺",
		Metadata: record.Metadata{
			Year: "1430", Period: "明代", Author: "佚名",
			ProductionPlace: "景德镇", Region: "Jiangnan", Style: "青花", Material: "瓷",
			HistoricalBackgroundZh: "御窑兴盛", HistoricalBackgroundEn: "Imperial kilns flourished",
		},
	})
	viewB := resolvedView(record.BaseRecord{
		ID: "r2", Title: "富春山居图", DeckTitle: "明代工艺",
		Metadata: record.Metadata{
			Year: "1350", Period: "元代", Author: "黄公望",
			ProductionPlace: "富春江", Region: "Jiangnan", Style: "水墨", Material: "纸本",
		},
	})

	entries := compare.Diff(viewA, viewB)

	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.Label
	}
	assert.Equal(t, []string{"年份", "时期", "作者", "生产地", "地区", "风格", "材质", "历史背景（中英）", "课程"}, labels)

	assert.Equal(t, "1430", entries[0].ValueA)
	assert.Equal(t, "1350", entries[0].ValueB)
	assert.False(t, entries[0].Equal)

	assert.True(t, entries[4].Equal, "regions match")
	assert.True(t, entries[8].Equal, "decks match")

	assert.Equal(t, "御窑兴盛 | Imperial kilns flourished", entries[7].ValueA)
	assert.Equal(t, record.NotStatedZh, entries[7].ValueB, "empty background shows the sentinel")
	assert.False(t, entries[7].Equal)
}

/*
TestDiff_Symmetric verifies swapping the arguments swaps the value columns
row for row without changing labels or equality.
*/
func TestDiff_Symmetric(t *testing.T) {
	viewA := resolvedView(record.BaseRecord{
		ID: "r1", DeckTitle: "明代工艺",
		Metadata: record.Metadata{Year: "1430", Style: "青花"},
	})
	viewB := resolvedView(record.BaseRecord{
		ID: "r2", DeckTitle: "元代绘画",
		Metadata: record.Metadata{Year: "1350", Style: "水墨"},
	})

	forward := compare.Diff(viewA, viewB)
	backward := compare.Diff(viewB, viewA)
	assert.Len(t, backward, len(forward))

	for i := range forward {
		assert.Equal(t, forward[i].Label, backward[i].Label)
		assert.Equal(t, forward[i].ValueA, backward[i].ValueB)
		assert.Equal(t, forward[i].ValueB, backward[i].ValueA)
		assert.Equal(t, forward[i].Equal, backward[i].Equal)
	}
}

/*
TestDiff_BothEmptyRowsAreEqual verifies two missing values compare equal
through the shared sentinel.
*/
func TestDiff_BothEmptyRowsAreEqual(t *testing.T) {
	viewA := resolvedView(record.BaseRecord{ID: "r1", Title: "A"})
	viewB := resolvedView(record.BaseRecord{ID: "r2", Title: "B"})

	for _, entry := range compare.Diff(viewA, viewB) {
		if entry.Label == "作者" {
			// Author never resolves empty, so the synthesized values differ
			// only when the regions differ.
			assert.True(t, entry.Equal)
			continue
		}
		assert.Equal(t, record.NotStatedZh, entry.ValueA, entry.Label)
		assert.Equal(t, record.NotStatedZh, entry.ValueB, entry.Label)
		assert.True(t, entry.Equal, entry.Label)
	}
}

/*
TestDiff_BackgroundTruncation verifies the combined bilingual background is
cut at 120 runes with an ellipsis marker.
*/
func TestDiff_BackgroundTruncation(t *testing.T) {
	long := strings.Repeat("史", 150)
	viewA := resolvedView(record.BaseRecord{
		ID:       "r1",
		Metadata: record.Metadata{HistoricalBackgroundZh: long},
	})
	viewB := resolvedView(record.BaseRecord{ID: "r2"})

	entries := compare.Diff(viewA, viewB)
	background := entries[7]

	assert.Equal(t, "历史背景（中英）", background.Label)
	assert.True(t, strings.HasSuffix(background.ValueA, "..."))
	assert.Equal(t, 123, len([]rune(background.ValueA)))
	assert.Equal(t, strings.Repeat("史", 120), strings.TrimSuffix(background.ValueA, "..."))
}
