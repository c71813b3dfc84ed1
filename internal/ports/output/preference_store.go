package output

import "context"

// PreferenceStore is an opaque key-value persistence boundary. Any local
// mechanism qualifies as long as Get returns the previously Set value across
// process restarts, or the provided default otherwise.
type PreferenceStore interface {
	// Get returns the stored value for key, or def when key is absent.
	Get(ctx context.Context, key, def string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
