// Package records is the raw durable key/value table of the client.
//
// Values are opaque text; the encrypted store in internal/client/storage is
// the only intended caller and is responsible for what the text means.
package records

import "context"

// Repository is the persistence contract of the local records table.
//
// Get reports found=false (and a nil error) when the key is absent.
// Delete and Clear are idempotent. DeleteIf removes the key only while it
// still holds value and reports whether it did.
type Repository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	DeleteIf(ctx context.Context, key string, value string) (bool, error)
	Clear(ctx context.Context) error
}
