package snapshot

import "context"

// Repository describes snapshot persistence needs from use cases.
type Repository interface {
	Save(ctx context.Context, s Snapshot) (int64, error)
	Latest(ctx context.Context) (Snapshot, bool, error)
}
