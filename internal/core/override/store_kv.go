package override

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/linwanqing/artstudy/internal/platform/constants"
	"github.com/linwanqing/artstudy/internal/platform/kvstore"
)

// KVRepository implements Repository on top of the platform key-value store,
// under the fixed artStudy.overrides.v3 key.
type KVRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

// NewKVRepository creates a new kvstore-backed override Repository.
func NewKVRepository(store kvstore.Store, logger *slog.Logger) *KVRepository {
	return &KVRepository{store: store, logger: logger}
}

/*
Load reads the full override map from storage.

Description: A missing key or a document that fails to parse yields an empty
map. Corrupt state is logged and discarded rather than surfaced, matching the
tolerant read policy of the original tool.

Returns:
  - map[string]Override: The stored map (possibly empty), never nil
  - error: Storage connectivity errors only
*/
func (repository *KVRepository) Load(ctx context.Context) (map[string]Override, error) {
	data, found, err := repository.store.Get(ctx, constants.StorageKeyOverrides)
	if err != nil {
		return nil, fmt.Errorf("override_load_failed: %w", err)
	}
	if !found {
		return map[string]Override{}, nil
	}

	overrides := map[string]Override{}
	if err := json.Unmarshal(data, &overrides); err != nil {
		repository.logger.Warn("override_state_malformed_reset",
			slog.String("key", constants.StorageKeyOverrides),
			slog.Any("error", err),
		)
		return map[string]Override{}, nil
	}

	return overrides, nil
}

/*
Save writes the full override map to storage, replacing the previous document.

Returns:
  - error: Marshal or storage failures
*/
func (repository *KVRepository) Save(ctx context.Context, overrides map[string]Override) error {
	data, err := json.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("override_marshal_failed: %w", err)
	}

	if err := repository.store.Set(ctx, constants.StorageKeyOverrides, data); err != nil {
		return fmt.Errorf("override_save_failed: %w", err)
	}

	return nil
}
