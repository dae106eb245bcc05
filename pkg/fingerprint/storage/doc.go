// Package storage persists fingerprint records.
//
// Two backends implement the Store interface: SQLiteStore for durable
// storage (selectable between the cgo sqlite3 driver and the pure-Go
// modernc driver) and MemoryStore for tests and throwaway runs. Both are
// safe for concurrent use.
package storage
