package browse

import (
	"context"
	"log/slog"

	"github.com/linwanqing/artstudy/internal/core/record"
)

// Service composes the record resolver, the query pipeline, and the
// navigation session into the browsing operations the frontend drives.
type Service struct {
	records *record.Service
	session *Session
	logger  *slog.Logger
}

// NewService constructs a browse [Service].
func NewService(records *record.Service, session *Session, logger *slog.Logger) *Service {
	return &Service{
		records: records,
		session: session,
		logger:  logger,
	}
}

// State is the full browsing snapshot returned to the frontend: the active
// filter, the filtered ordered views, and the cursor with its current view.
type State struct {
	Filter  FilterSpec             `json:"filter"`
	Total   int                    `json:"total"`
	Cursor  int                    `json:"cursor"`
	Current *record.EffectiveView  `json:"current"`
	Items   []record.EffectiveView `json:"items"`
}

// SetFilter replaces the session filter and returns the recomputed state.
// The cursor clamps to the new set (last valid index when the set shrank,
// the empty sentinel when nothing matches).
func (service *Service) SetFilter(ctx context.Context, spec FilterSpec) (State, error) {
	views, err := service.records.AllEffective(ctx)
	if err != nil {
		return State{}, err
	}

	filtered := FilterAndSearch(views, spec)
	cursor := service.session.SetFilter(spec, len(filtered))

	service.logger.DebugContext(ctx, "filter_applied",
		slog.Int("matched", len(filtered)),
		slog.Int("cursor", cursor),
	)

	return service.snapshot(spec, filtered, cursor), nil
}

// Step moves the cursor by delta, wrapping at both ends of the filtered set.
func (service *Service) Step(ctx context.Context, delta int) (State, error) {
	filtered, spec, err := service.filteredViews(ctx)
	if err != nil {
		return State{}, err
	}

	cursor := service.session.Step(delta, len(filtered))
	return service.snapshot(spec, filtered, cursor), nil
}

// Current re-derives the state under the unchanged session filter, clamping
// the cursor in case overrides changed the filtered set since the last call.
func (service *Service) Current(ctx context.Context) (State, error) {
	filtered, spec, err := service.filteredViews(ctx)
	if err != nil {
		return State{}, err
	}

	cursor := service.session.Clamp(len(filtered))
	return service.snapshot(spec, filtered, cursor), nil
}

// Reset restores the all-sentinel filter with the cursor on the first record.
func (service *Service) Reset(ctx context.Context) (State, error) {
	service.session.Reset()
	return service.Current(ctx)
}

// Facets derives the filter option lists from the current resolved views.
func (service *Service) Facets(ctx context.Context) (Facets, error) {
	views, err := service.records.AllEffective(ctx)
	if err != nil {
		return Facets{}, err
	}
	return DeriveFacets(views), nil
}

// filteredViews resolves the collection and applies the session filter.
func (service *Service) filteredViews(ctx context.Context) ([]record.EffectiveView, FilterSpec, error) {
	views, err := service.records.AllEffective(ctx)
	if err != nil {
		return nil, FilterSpec{}, err
	}
	spec := service.session.Filter()
	return FilterAndSearch(views, spec), spec, nil
}

// snapshot assembles a [State] from the filtered set and cursor.
func (service *Service) snapshot(spec FilterSpec, filtered []record.EffectiveView, cursor int) State {
	state := State{
		Filter: spec,
		Total:  len(filtered),
		Cursor: cursor,
		Items:  filtered,
	}
	if cursor >= 0 && cursor < len(filtered) {
		current := filtered[cursor]
		state.Current = &current
	}
	return state
}
