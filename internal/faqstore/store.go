// Package faqstore persists the FAQ collection as a UTF-8 JSON array file,
// the only on-disk format the admin tooling understands. Reads are served
// from an immutable in-memory snapshot; Replace rewrites the file and swaps
// the snapshot atomically, so readers always observe a full old or new
// collection.
package faqstore

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/apmshow/apm-chatbot/internal/engine"
)

// Store is a JSON-file-backed FAQ collection.
type Store struct {
	path string

	mu       sync.Mutex // serializes Replace
	snapshot atomic.Pointer[[]engine.FaqEntry]
}

// Open loads the FAQ file at path. A missing or unreadable file degrades to
// an empty collection rather than failing; the error is logged only.
func Open(path string) *Store {
	s := &Store{path: path}

	entries, err := readFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("faqstore: reading %s: %v (starting empty)", path, err)
		}
		entries = []engine.FaqEntry{}
	}
	s.snapshot.Store(&entries)
	return s
}

// Snapshot returns the current FAQ collection. Callers must treat the
// returned slice as read-only.
func (s *Store) Snapshot() []engine.FaqEntry {
	return *s.snapshot.Load()
}

// Count returns the number of stored entries.
func (s *Store) Count() int {
	return len(s.Snapshot())
}

// Replace overwrites the stored collection wholesale: the file is written
// to a temp file and renamed into place, then the in-memory snapshot is
// swapped. On write failure the previous snapshot stays visible.
func (s *Store) Replace(entries []engine.FaqEntry) error {
	if entries == nil {
		entries = []engine.FaqEntry{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling FAQ entries: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".faq-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}

	s.snapshot.Store(&entries)
	return nil
}

func readFile(path string) ([]engine.FaqEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []engine.FaqEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if entries == nil {
		entries = []engine.FaqEntry{}
	}
	return entries, nil
}
