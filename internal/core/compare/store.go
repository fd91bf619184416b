package compare

import "context"

// Repository persists the pair-key -> note map as one whole document, the
// same read-everything write-everything contract the override store uses.
type Repository interface {
	Load(ctx context.Context) (map[PairKey]string, error)
	Save(ctx context.Context, notes map[PairKey]string) error
}
