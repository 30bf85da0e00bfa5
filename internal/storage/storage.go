// Package storage provides key-value state storage for pokedex-cli.
//
// It stands in for the browser's local and session storage: small JSON
// blobs addressed by a fixed key. Persistent backends (file, sqlite) back
// the favorites and locale stores; the in-memory backend scopes state to a
// single browsing session.
package storage

import "errors"

// ErrNotFound indicates the key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Store defines the interface for key-value state storage.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set stores value under key, replacing any prior value.
	Set(key string, value []byte) error
	// Delete removes the value stored under key. Deleting a missing key
	// is not an error.
	Delete(key string) error
	// Close releases any resources held by the store.
	Close() error
}
