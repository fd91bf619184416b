// Package compare builds side-by-side difference tables for record pairs and
// keeps the user's per-pair comparison notes.
package compare

import (
	"strings"

	"github.com/linwanqing/artstudy/internal/core/record"
)

// WritingPrompt is the fixed guidance shown above every comparison.
const WritingPrompt = "写作建议：先写共性，再写差异。差异至少覆盖 1) 形式语言 2) 材质与工艺 3) 历史背景与社会语境。"

// backgroundRuneLimit caps the combined bilingual background cell.
const backgroundRuneLimit = 120

// PairKey identifies an unordered record pair. The two ids are sorted before
// joining so (a, b) and (b, a) address the same note.
type PairKey string

// NewPairKey builds the canonical key for two record ids.
func NewPairKey(idA, idB string) PairKey {
	if idB < idA {
		idA, idB = idB, idA
	}
	return PairKey(idA + "__" + idB)
}

// Split returns the two record ids of the key in sorted order. The second
// return is false when the key is not two ids joined by the separator.
func (key PairKey) Split() (string, string, bool) {
	idA, idB, found := strings.Cut(string(key), "__")
	if !found || idA == "" || idB == "" {
		return "", "", false
	}
	return idA, idB, true
}

// DiffEntry is one row of the comparison table: a Chinese field label and the
// display value on each side. Empty values are already replaced by the
// not-stated sentinel before the equality check.
type DiffEntry struct {
	Label  string `json:"label"`
	ValueA string `json:"valueA"`
	ValueB string `json:"valueB"`
	Equal  bool   `json:"equal"`
}

// Diff builds the fixed-order comparison table for two effective views. Row
// order and labels follow the study table layout: year, period, author,
// production place, region, style, material, bilingual background, deck.
func Diff(viewA, viewB record.EffectiveView) []DiffEntry {
	rows := []struct {
		label  string
		valueA string
		valueB string
	}{
		{"年份", viewA.Metadata.Year, viewB.Metadata.Year},
		{"时期", viewA.Metadata.Period, viewB.Metadata.Period},
		{"作者", viewA.Metadata.Author, viewB.Metadata.Author},
		{"生产地", viewA.Metadata.ProductionPlace, viewB.Metadata.ProductionPlace},
		{"地区", viewA.Metadata.Region, viewB.Metadata.Region},
		{"风格", viewA.Metadata.Style, viewB.Metadata.Style},
		{"材质", viewA.Metadata.Material, viewB.Metadata.Material},
		{"历史背景（中英）", backgroundCell(viewA), backgroundCell(viewB)},
		{"课程", viewA.DeckTitle, viewB.DeckTitle},
	}

	entries := make([]DiffEntry, len(rows))
	for i, row := range rows {
		valueA := orNotStated(row.valueA)
		valueB := orNotStated(row.valueB)
		entries[i] = DiffEntry{
			Label:  row.label,
			ValueA: valueA,
			ValueB: valueB,
			Equal:  valueA == valueB,
		}
	}
	return entries
}

// backgroundCell joins the Chinese and English backgrounds with " | " and
// truncates the result so the table row stays scannable.
func backgroundCell(view record.EffectiveView) string {
	var parts []string
	for _, part := range []string{view.Metadata.HistoricalBackgroundZh, view.Metadata.HistoricalBackgroundEn} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return truncateRunes(strings.Join(parts, " | "), backgroundRuneLimit)
}

// truncateRunes shortens text to at most limit runes, appending an ellipsis
// marker when anything was cut.
func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// orNotStated substitutes the Chinese not-stated sentinel for empty cells.
func orNotStated(value string) string {
	if strings.TrimSpace(value) == "" {
		return record.NotStatedZh
	}
	return value
}
