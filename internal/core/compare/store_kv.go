package compare

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/linwanqing/artstudy/internal/platform/constants"
	"github.com/linwanqing/artstudy/internal/platform/kvstore"
)

// KVRepository implements Repository on top of the platform key-value store,
// under the fixed artStudy.notes.v3 key.
type KVRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

// NewKVRepository creates a new kvstore-backed notes Repository.
func NewKVRepository(store kvstore.Store, logger *slog.Logger) *KVRepository {
	return &KVRepository{store: store, logger: logger}
}

/*
Load reads the full notes map from storage.

Description: A missing key or a document that fails to parse yields an empty
map. Corrupt state is logged and discarded rather than surfaced, matching the
tolerant read policy of the override store.

Returns:
  - map[PairKey]string: The stored map (possibly empty), never nil
  - error: Storage connectivity errors only
*/
func (repository *KVRepository) Load(ctx context.Context) (map[PairKey]string, error) {
	data, found, err := repository.store.Get(ctx, constants.StorageKeyNotes)
	if err != nil {
		return nil, fmt.Errorf("notes_load_failed: %w", err)
	}
	if !found {
		return map[PairKey]string{}, nil
	}

	notes := map[PairKey]string{}
	if err := json.Unmarshal(data, &notes); err != nil {
		repository.logger.Warn("notes_state_malformed_reset",
			slog.String("key", constants.StorageKeyNotes),
			slog.Any("error", err),
		)
		return map[PairKey]string{}, nil
	}

	return notes, nil
}

/*
Save writes the full notes map to storage, replacing the previous document.

Returns:
  - error: Marshal or storage failures
*/
func (repository *KVRepository) Save(ctx context.Context, notes map[PairKey]string) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("notes_marshal_failed: %w", err)
	}

	if err := repository.store.Set(ctx, constants.StorageKeyNotes, data); err != nil {
		return fmt.Errorf("notes_save_failed: %w", err)
	}

	return nil
}
