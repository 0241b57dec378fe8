// Package blob stores audio attachment payloads in object storage. Rows in
// the notes table only hold metadata; the bytes live here.
package blob

import "context"

type Store interface {
	// Put uploads an object under key.
	Put(ctx context.Context, key string, data []byte, contentType string) error
	// Get returns the object bytes and stored content type. A missing key
	// fails with common.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, string, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
