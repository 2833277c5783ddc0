// Package store is the in-memory dataset backing the mock API. It is seeded
// from an embedded YAML fixture at startup and guarded by a single mutex;
// all state is lost on restart, which is fine for a demo backend.
package store
