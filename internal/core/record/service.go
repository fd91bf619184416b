package record

import (
	"context"
	"log/slog"
	"strings"

	"github.com/linwanqing/artstudy/internal/core/override"
	"github.com/linwanqing/artstudy/internal/platform/apperr"
	"github.com/linwanqing/artstudy/pkg/slice"
	"github.com/linwanqing/artstudy/pkg/zhcollate"
)

// Service resolves base records against the persisted override map and owns
// the save-override operation.
type Service struct {
	collection *Collection
	overrides  override.Repository
	logger     *slog.Logger
}

// NewService constructs a record [Service].
func NewService(collection *Collection, overrides override.Repository, logger *slog.Logger) *Service {
	return &Service{
		collection: collection,
		overrides:  overrides,
		logger:     logger,
	}
}

// Collection exposes the immutable base store for read-only lookups.
func (service *Service) Collection() *Collection {
	return service.collection
}

// GetEffective resolves one record by id against the current override map.
func (service *Service) GetEffective(ctx context.Context, id string) (EffectiveView, error) {
	base, found := service.collection.Get(id)
	if !found {
		return EffectiveView{}, apperr.NotFound("Record")
	}

	overrides, err := service.overrides.Load(ctx)
	if err != nil {
		return EffectiveView{}, apperr.Internal(err)
	}

	return Resolve(base, overrides[id]), nil
}

// AllEffective resolves the whole collection in load order.
func (service *Service) AllEffective(ctx context.Context) ([]EffectiveView, error) {
	overrides, err := service.overrides.Load(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return slice.Map(service.collection.All(), func(base BaseRecord) EffectiveView {
		return Resolve(base, overrides[base.ID])
	}), nil
}

// OverrideDraft carries the detail-edit form fields for one record.
//
// Categories holds the full category set as shown in the edit dialog; the
// service keeps only the user-added ones (those not already base tags).
type OverrideDraft struct {
	Year                   string   `json:"year"`
	Period                 string   `json:"period"`
	Author                 string   `json:"author"`
	ProductionPlace        string   `json:"productionPlace"`
	Region                 string   `json:"region"`
	Style                  string   `json:"style"`
	Material               string   `json:"material"`
	HistoricalBackgroundZh string   `json:"historicalBackgroundZh"`
	HistoricalBackgroundEn string   `json:"historicalBackgroundEn"`
	Categories             []string `json:"categories"`
}

// SaveOverride trims and stores the draft as the record's override, persists
// the full override map immediately, and returns the freshly resolved view.
//
// Empty fields are stored empty; they fall back to base values on the next
// resolution rather than erasing them. Base tags are filtered out of the
// category list so overrides never duplicate them.
func (service *Service) SaveOverride(ctx context.Context, id string, draft OverrideDraft) (EffectiveView, error) {
	base, found := service.collection.Get(id)
	if !found {
		return EffectiveView{}, apperr.NotFound("Record")
	}

	overrides, err := service.overrides.Load(ctx)
	if err != nil {
		return EffectiveView{}, apperr.Internal(err)
	}

	baseTags := make(map[string]struct{}, len(base.Tags))
	for _, tag := range base.Tags {
		baseTags[strings.TrimSpace(tag)] = struct{}{}
	}

	custom := slice.Filter(zhcollate.Unique(draft.Categories), func(category string) bool {
		_, isBaseTag := baseTags[category]
		return !isBaseTag
	})

	overrides[id] = override.Override{
		Year:                   strings.TrimSpace(draft.Year),
		Period:                 strings.TrimSpace(draft.Period),
		Author:                 strings.TrimSpace(draft.Author),
		ProductionPlace:        strings.TrimSpace(draft.ProductionPlace),
		Region:                 strings.TrimSpace(draft.Region),
		Style:                  strings.TrimSpace(draft.Style),
		Material:               strings.TrimSpace(draft.Material),
		HistoricalBackgroundZh: strings.TrimSpace(draft.HistoricalBackgroundZh),
		HistoricalBackgroundEn: strings.TrimSpace(draft.HistoricalBackgroundEn),
		Categories:             custom,
	}

	if err := service.overrides.Save(ctx, overrides); err != nil {
		return EffectiveView{}, apperr.Internal(err)
	}

	service.logger.InfoContext(ctx, "override_saved",
		slog.String("record_id", id),
		slog.Int("custom_categories", len(custom)),
	)

	return Resolve(base, overrides[id]), nil
}
