package compare

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/linwanqing/artstudy/internal/core/record"
	"github.com/linwanqing/artstudy/internal/platform/apperr"
)

// Service drives pair comparison and note keeping on top of the record
// resolver and the notes store.
type Service struct {
	records *record.Service
	notes   Repository
	logger  *slog.Logger
}

// NewService constructs a compare [Service].
func NewService(records *record.Service, notes Repository, logger *slog.Logger) *Service {
	return &Service{
		records: records,
		notes:   notes,
		logger:  logger,
	}
}

// Comparison is a full side-by-side view of two records: both effective
// views, the difference table, the saved note for the pair, and the fixed
// writing guidance.
type Comparison struct {
	PairKey       PairKey              `json:"pairKey"`
	A             record.EffectiveView `json:"a"`
	B             record.EffectiveView `json:"b"`
	Diff          []DiffEntry          `json:"diff"`
	Note          string               `json:"note"`
	WritingPrompt string               `json:"writingPrompt"`
}

// SavedNote is one entry of the notes overview: the pair it belongs to,
// both record titles for display, and the note text.
type SavedNote struct {
	PairKey PairKey `json:"pairKey"`
	IDA     string  `json:"idA"`
	IDB     string  `json:"idB"`
	TitleA  string  `json:"titleA"`
	TitleB  string  `json:"titleB"`
	Note    string  `json:"note"`
}

// Compare resolves both records, builds the difference table, and attaches
// the saved note for the pair. Comparing a record with itself is rejected.
func (service *Service) Compare(ctx context.Context, idA, idB string) (Comparison, error) {
	if err := validatePair(idA, idB); err != nil {
		return Comparison{}, err
	}

	viewA, err := service.records.GetEffective(ctx, idA)
	if err != nil {
		return Comparison{}, err
	}
	viewB, err := service.records.GetEffective(ctx, idB)
	if err != nil {
		return Comparison{}, err
	}

	note, err := service.NoteFor(ctx, idA, idB)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{
		PairKey:       NewPairKey(idA, idB),
		A:             viewA,
		B:             viewB,
		Diff:          Diff(viewA, viewB),
		Note:          note,
		WritingPrompt: WritingPrompt,
	}, nil
}

// NoteFor returns the saved note for the pair, or "" when none was saved.
func (service *Service) NoteFor(ctx context.Context, idA, idB string) (string, error) {
	notes, err := service.notes.Load(ctx)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return notes[NewPairKey(idA, idB)], nil
}

// SaveNote stores the trimmed note text under the pair key. Saving an empty
// or whitespace-only note deletes the entry. Both records must exist.
func (service *Service) SaveNote(ctx context.Context, idA, idB, text string) (string, error) {
	if err := validatePair(idA, idB); err != nil {
		return "", err
	}
	if _, found := service.records.Collection().Get(idA); !found {
		return "", apperr.NotFound("Record")
	}
	if _, found := service.records.Collection().Get(idB); !found {
		return "", apperr.NotFound("Record")
	}

	notes, err := service.notes.Load(ctx)
	if err != nil {
		return "", apperr.Internal(err)
	}

	key := NewPairKey(idA, idB)
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		delete(notes, key)
	} else {
		notes[key] = trimmed
	}

	if err := service.notes.Save(ctx, notes); err != nil {
		return "", apperr.Internal(err)
	}

	service.logger.InfoContext(ctx, "comparison_note_saved",
		slog.String("pair_key", string(key)),
		slog.Bool("deleted", trimmed == ""),
	)
	return trimmed, nil
}

// SavedNotes lists every stored note ordered by pair key. Entries whose pair
// key no longer resolves to two known records are skipped, not deleted, so a
// later dataset fix brings them back.
func (service *Service) SavedNotes(ctx context.Context) ([]SavedNote, error) {
	notes, err := service.notes.Load(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	saved := make([]SavedNote, 0, len(notes))
	for key, note := range notes {
		idA, idB, ok := key.Split()
		if !ok {
			continue
		}
		recordA, foundA := service.records.Collection().Get(idA)
		recordB, foundB := service.records.Collection().Get(idB)
		if !foundA || !foundB {
			continue
		}
		saved = append(saved, SavedNote{
			PairKey: key,
			IDA:     idA,
			IDB:     idB,
			TitleA:  recordA.Title,
			TitleB:  recordB.Title,
			Note:    note,
		})
	}

	sort.Slice(saved, func(i, j int) bool { return saved[i].PairKey < saved[j].PairKey })
	return saved, nil
}

// validatePair rejects empty or identical record ids.
func validatePair(idA, idB string) error {
	if idA == "" || idB == "" {
		return apperr.ValidationError("Both record ids are required")
	}
	if idA == idB {
		return apperr.ValidationError("Cannot compare a record with itself")
	}
	return nil
}
