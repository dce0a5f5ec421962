// Package metadata persists small client-local key/value state, most
// importantly the bearer credential issued at login. It plays the role the
// browser's local storage plays for the web client: durable state owned by
// no single object, injected wherever it is needed so tests can substitute
// an in-memory fake.
package metadata

import "context"

// Repository is the injected storage capability. A missing key is not an
// error: Get returns the empty string.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
