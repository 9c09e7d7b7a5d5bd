// Package localstore provides the durable key-value storage the entity
// store persists into: a handful of namespaced string keys, each holding a
// JSON-encoded blob. Backends are interchangeable and selected by config.
package localstore

// KV is a synchronous string key-value store.
type KV interface {
	// Get returns the value for key; the second return reports presence.
	Get(key string) (string, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
