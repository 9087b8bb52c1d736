package faqstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/apmshow/apm-chatbot/internal/engine"
)

func TestOpenMissingFile(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "faq.json"))
	if got := s.Count(); got != 0 {
		t.Errorf("missing file should start empty, got %d entries", got)
	}
}

func TestOpenCorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s := Open(path)
	if got := s.Count(); got != 0 {
		t.Errorf("corrupt file should degrade to empty, got %d entries", got)
	}
}

func TestReplaceAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.json")
	s := Open(path)

	entries := []engine.FaqEntry{
		{Question: "چطور سایز مناسب را انتخاب کنم؟", Answer: "از جدول سایز استفاده کنید"},
		{Question: "زمان ارسال چقدره؟", Answer: "۲ تا ۵ روز کاری"},
	}
	if err := s.Replace(entries); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if got := s.Count(); got != 2 {
		t.Errorf("snapshot count = %d, want 2", got)
	}

	// The file must be a plain JSON array readable by external tooling.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var onDisk []engine.FaqEntry
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("on-disk format is not a JSON array: %v", err)
	}
	if len(onDisk) != 2 || onDisk[0].Question != entries[0].Question {
		t.Errorf("on-disk entries = %+v", onDisk)
	}

	// A fresh store over the same file sees the same data.
	reopened := Open(path)
	if got := reopened.Count(); got != 2 {
		t.Errorf("reopened count = %d, want 2", got)
	}
}

func TestReplaceNilClearsCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.json")
	s := Open(path)

	if err := s.Replace([]engine.FaqEntry{{Question: "q", Answer: "a"}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Replace(nil); err != nil {
		t.Fatal(err)
	}
	if got := s.Count(); got != 0 {
		t.Errorf("count after nil replace = %d, want 0", got)
	}
	if s.Snapshot() == nil {
		t.Error("snapshot must never be a nil slice")
	}
}

func TestConcurrentReadersSeeFullSnapshots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.json")
	s := Open(path)

	old := []engine.FaqEntry{{Question: "q1", Answer: "a1"}}
	next := []engine.FaqEntry{
		{Question: "q1", Answer: "a1"},
		{Question: "q2", Answer: "a2"},
	}
	if err := s.Replace(old); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				snap := s.Snapshot()
				if n := len(snap); n != 1 && n != 2 {
					t.Errorf("observed partial snapshot of length %d", n)
					return
				}
			}
		}()
	}
	if err := s.Replace(next); err != nil {
		t.Fatal(err)
	}
	wg.Wait()
}
