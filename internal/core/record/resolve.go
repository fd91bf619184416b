package record

import (
	"fmt"
	"strings"

	"github.com/linwanqing/artstudy/internal/core/override"
	"github.com/linwanqing/artstudy/pkg/zhcollate"
)

// studyTemplate renders the bilingual study paragraph. Both halves use the
// same resolved values; each language substitutes its own not-stated sentinel.
const studyTemplate = "材质：%s。时期：%s。历史背景：%s\nMaterial: %s. Period: %s. Historical background: %s"

// firstNonEmpty walks an ordered fallback chain and returns the first
// candidate that is non-empty after trimming, or "".
//
// Keeping every per-field chain as one explicit call makes the merge rules
// auditable field by field.
func firstNonEmpty(candidates ...string) string {
	for _, candidate := range candidates {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// authorFallback resolves the author field. When no explicit author exists it
// synthesizes "<place> artist" from the production place, the region, or the
// unknown-place placeholder, so the resolved author is never empty.
func authorFallback(author, productionPlace, region string) string {
	if trimmed := strings.TrimSpace(author); trimmed != "" {
		return trimmed
	}
	place := firstNonEmpty(productionPlace, region, "Unknown place")
	return place + " artist"
}

// buildStudyDescription generates the fixed-template bilingual paragraph from
// resolved material, period, and background fields.
func buildStudyDescription(meta ResolvedMetadata) string {
	return fmt.Sprintf(studyTemplate,
		firstNonEmpty(meta.Material, NotStatedZh),
		firstNonEmpty(meta.Period, NotStatedZh),
		firstNonEmpty(meta.HistoricalBackgroundZh, NotStatedZh),
		firstNonEmpty(meta.Material, NotStatedEn),
		firstNonEmpty(meta.Period, NotStatedEn),
		firstNonEmpty(meta.HistoricalBackgroundEn, NotStatedEn),
	)
}

// Resolve merges a base record with its override (zero value means no
// override) into an effective view.
//
// Resolution is pure and deterministic: identical inputs always produce a
// structurally identical view, and no error path exists — every field
// degrades to a defined sentinel or the empty string.
//
// Fallback chains, in evaluation order per field:
//
//   - year/period/region/style/material: override -> base
//   - productionPlace: override -> base -> base region (but never the
//     reverse; the region chain does not consult productionPlace)
//   - historicalBackgroundZh: override -> legacy unified override field -> base
//   - historicalBackgroundEn: override -> base (no legacy fallback)
//   - recordType: base -> "artwork"
//   - author: override -> base -> synthesized "<place> artist"
//   - historicalBackgroundSources: base only, order preserved, duplicates kept
func Resolve(base BaseRecord, ov override.Override) EffectiveView {
	baseMeta := base.Metadata

	productionPlace := firstNonEmpty(ov.ProductionPlace, baseMeta.ProductionPlace, baseMeta.Region)
	region := firstNonEmpty(ov.Region, baseMeta.Region)

	backgroundZh := firstNonEmpty(ov.HistoricalBackgroundZh, ov.HistoricalBackground, baseMeta.HistoricalBackgroundZh)
	backgroundEn := firstNonEmpty(ov.HistoricalBackgroundEn, baseMeta.HistoricalBackgroundEn)

	meta := ResolvedMetadata{
		RecordType:             firstNonEmpty(baseMeta.RecordType, RecordTypeArtwork),
		Year:                   firstNonEmpty(ov.Year, baseMeta.Year),
		Period:                 firstNonEmpty(ov.Period, baseMeta.Period),
		Author:                 authorFallback(firstNonEmpty(ov.Author, baseMeta.Author), productionPlace, region),
		ProductionPlace:        productionPlace,
		Region:                 region,
		Style:                  firstNonEmpty(ov.Style, baseMeta.Style),
		Material:               firstNonEmpty(ov.Material, baseMeta.Material),
		HistoricalBackground:   joinNonEmpty("\n", backgroundZh, backgroundEn),
		HistoricalBackgroundZh: backgroundZh,
		HistoricalBackgroundEn: backgroundEn,

		HistoricalBackgroundSources: baseMeta.HistoricalBackgroundSources,
	}

	categories := zhcollate.Unique(append(append([]string{}, base.Tags...), ov.Categories...))

	return EffectiveView{
		ID:          base.ID,
		Title:       base.Title,
		Description: base.Description,
		Image:       base.Image,
		DeckTitle:   base.DeckTitle,
		SlideNumber: base.SlideNumber,

		Metadata:         meta,
		Categories:       categories,
		StudyDescription: buildStudyDescription(meta),
	}
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
