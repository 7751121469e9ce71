package cart

import (
	"context"
	"errors"
)

// ErrNoSavedCart is returned by a Store when nothing has been persisted yet.
var ErrNoSavedCart = errors.New("no saved cart")

// Store persists the serialized cart blob under a single well-known key.
// The manager is the sole writer of that key; the store treats the value as
// an opaque blob.
type Store interface {
	// Load reads the persisted blob. Returns ErrNoSavedCart if the key has
	// never been written (or was deleted).
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the persisted blob with a full snapshot.
	Save(ctx context.Context, blob []byte) error
}
