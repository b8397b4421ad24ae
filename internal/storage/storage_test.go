package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// roundTrip exercises the Store contract every backend must satisfy.
func roundTrip(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("absent key: expected (nil, false, nil), got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "expenses", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := s.Get(ctx, "expenses")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(got) != `[{"id":1}]` {
		t.Fatalf("round-trip mismatch: %q", got)
	}

	// Overwrite replaces the blob.
	if err := s.Set(ctx, "expenses", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = s.Get(ctx, "expenses")
	if string(got) != `[]` {
		t.Fatalf("overwrite mismatch: %q", got)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	roundTrip(t, s)

	// Mutating a returned blob must not corrupt the stored value.
	ctx := context.Background()
	if err := s.Set(ctx, "k", []byte("abc")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _, _ := s.Get(ctx, "k")
	got[0] = 'x'
	again, _, _ := s.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("stored value mutated via returned slice: %q", again)
	}
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	roundTrip(t, s)

	if _, err := os.Stat(filepath.Join(dir, "expenses.json")); err != nil {
		t.Fatalf("expected expenses.json on disk: %v", err)
	}
}

func TestSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "expenzo.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	roundTrip(t, s)

	// Values survive reopening the database.
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	reopened, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get(context.Background(), "expenses")
	if err != nil || !ok {
		t.Fatalf("get after reopen: ok=%v err=%v", ok, err)
	}
	if string(got) != `[]` {
		t.Fatalf("unexpected value after reopen: %q", got)
	}
}

func TestOpenFactory(t *testing.T) {
	if _, err := Open(Config{Type: BackendType("redis")}, nil); err == nil {
		t.Fatal("expected error for unknown backend type")
	}

	s, err := Open(Config{Type: MemoryBackend}, nil)
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Fatalf("expected *MemoryStore, got %T", s)
	}

	s, err = Open(Config{Type: FileBackend, DataDir: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("open file: %v", err)
	}
	if _, ok := s.(*FileStore); !ok {
		t.Fatalf("expected *FileStore, got %T", s)
	}
}
