package compare_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linwanqing/artstudy/internal/core/compare"
	"github.com/linwanqing/artstudy/internal/core/override"
	"github.com/linwanqing/artstudy/internal/core/record"
	"github.com/linwanqing/artstudy/internal/platform/apperr"
	"github.com/linwanqing/artstudy/internal/platform/kvstore"
)

func newCompareService(t *testing.T, items ...record.BaseRecord) *compare.Service {
	t.Helper()
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	records := record.NewService(
		record.NewCollection(items),
		override.NewKVRepository(store, slog.Default()),
		slog.Default(),
	)
	return compare.NewService(records, compare.NewKVRepository(store, slog.Default()), slog.Default())
}

func studyPair() []record.BaseRecord {
	return []record.BaseRecord{
		{ID: "r1", Title: "青花瓷瓶", DeckTitle: "明代工艺", Metadata: record.Metadata{Year: "1430"}},
		{ID: "r2", Title: "富春山居图", DeckTitle: "元代绘画", Metadata: record.Metadata{Year: "1350"}},
		{ID: "r3", Title: "仕女图"},
	}
}

/*
TestService_Compare verifies the assembled comparison carries both views, the
writing guidance, and the saved note regardless of argument order.
*/
func TestService_Compare(t *testing.T) {
	service := newCompareService(t, studyPair()...)
	ctx := context.Background()

	_, err := service.SaveNote(ctx, "r1", "r2", "共性：江南题材。")
	require.NoError(t, err)

	comparison, err := service.Compare(ctx, "r2", "r1")
	require.NoError(t, err)

	assert.Equal(t, compare.PairKey("r1__r2"), comparison.PairKey)
	assert.Equal(t, "富春山居图", comparison.A.Title)
	assert.Equal(t, "青花瓷瓶", comparison.B.Title)
	assert.Equal(t, "共性：江南题材。", comparison.Note)
	assert.Equal(t, compare.WritingPrompt, comparison.WritingPrompt)
	assert.Len(t, comparison.Diff, 9)
}

/*
TestService_Compare_RejectsBadPairs verifies identical, empty, and unknown
ids are rejected with the expected error codes.
*/
func TestService_Compare_RejectsBadPairs(t *testing.T) {
	service := newCompareService(t, studyPair()...)
	ctx := context.Background()

	tests := []struct {
		name     string
		idA, idB string
		code     string
	}{
		{"identical", "r1", "r1", "VALIDATION_ERROR"},
		{"empty_a", "", "r2", "VALIDATION_ERROR"},
		{"empty_b", "r1", "", "VALIDATION_ERROR"},
		{"unknown", "r1", "missing", "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Compare(ctx, tt.idA, tt.idB)
			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.code, ae.Code)
		})
	}
}

/*
TestService_SaveNote_RoundTripAndDelete verifies the note is trimmed on save,
readable from either id order, and removed when saved empty.
*/
func TestService_SaveNote_RoundTripAndDelete(t *testing.T) {
	service := newCompareService(t, studyPair()...)
	ctx := context.Background()

	stored, err := service.SaveNote(ctx, "r1", "r2", "  差异：材质与工艺。  ")
	require.NoError(t, err)
	assert.Equal(t, "差异：材质与工艺。", stored)

	note, err := service.NoteFor(ctx, "r2", "r1")
	require.NoError(t, err)
	assert.Equal(t, "差异：材质与工艺。", note)

	stored, err = service.SaveNote(ctx, "r2", "r1", "   ")
	require.NoError(t, err)
	assert.Empty(t, stored)

	note, err = service.NoteFor(ctx, "r1", "r2")
	require.NoError(t, err)
	assert.Empty(t, note)

	saved, err := service.SavedNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

/*
TestService_SaveNote_UnknownRecord verifies notes cannot be attached to ids
outside the dataset.
*/
func TestService_SaveNote_UnknownRecord(t *testing.T) {
	service := newCompareService(t, studyPair()...)

	_, err := service.SaveNote(context.Background(), "r1", "missing", "text")
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestService_SavedNotes verifies the overview is ordered by pair key, carries
both titles, and skips pairs that no longer resolve.
*/
func TestService_SavedNotes(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	notes := compare.NewKVRepository(store, slog.Default())

	records := record.NewService(
		record.NewCollection(studyPair()),
		override.NewKVRepository(store, slog.Default()),
		slog.Default(),
	)
	service := compare.NewService(records, notes, slog.Default())
	ctx := context.Background()

	_, err = service.SaveNote(ctx, "r3", "r1", "note a")
	require.NoError(t, err)
	_, err = service.SaveNote(ctx, "r2", "r3", "note b")
	require.NoError(t, err)

	// A stale entry written by an older dataset stays in storage but is
	// hidden from the overview.
	stale, err := notes.Load(ctx)
	require.NoError(t, err)
	stale[compare.NewPairKey("r1", "gone")] = "orphaned"
	require.NoError(t, notes.Save(ctx, stale))

	saved, err := service.SavedNotes(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 2)

	assert.Equal(t, compare.PairKey("r1__r3"), saved[0].PairKey)
	assert.Equal(t, "青花瓷瓶", saved[0].TitleA)
	assert.Equal(t, "仕女图", saved[0].TitleB)
	assert.Equal(t, "note a", saved[0].Note)

	assert.Equal(t, compare.PairKey("r2__r3"), saved[1].PairKey)
	assert.Equal(t, "note b", saved[1].Note)
}
