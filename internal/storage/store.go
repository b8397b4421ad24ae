// Package storage provides the persistent key-value store the expense
// tracker saves its state to, with sqlite, file and in-memory backends.
package storage

import "context"

// Keys used by the application.
const (
	KeyExpenses = "expenses"
	KeyDarkMode = "darkMode"
)

// Store is a string-keyed blob store. Get reports absence through its second
// return value; an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// BackendType selects a Store implementation.
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	FileBackend   BackendType = "file"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, FileBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
