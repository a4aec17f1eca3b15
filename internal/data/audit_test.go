package data

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/agentics/gatekeeper/internal/biz/domain"
)

func TestNewJSONLAudit_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	if _, err := NewJSONLAudit(dir); err != nil {
		t.Fatalf("Failed to create audit repo: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Expected log directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}
}

func TestAppend_OneLinePerEntry(t *testing.T) {
	r := &jsonlAudit{dir: t.TempDir()}

	v := domain.NewParsedVerdict(map[string]any{"decision": "approve", "reason": "ok"}, 12)
	if err := r.Append(domain.NewJoinAudit("John Doe", v)); err != nil {
		t.Fatalf("Failed to append: %v", err)
	}
	if err := r.Append(domain.NewJoinAudit("Jane", v)); err != nil {
		t.Fatalf("Failed to append: %v", err)
	}

	data, err := os.ReadFile(r.fileFor(time.Now()))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Failed to unmarshal line: %v", err)
	}
	if entry["type"] != "join" {
		t.Errorf("Expected type 'join', got %v", entry["type"])
	}
	if entry["contact"] != "John Doe" {
		t.Errorf("Expected contact 'John Doe', got %v", entry["contact"])
	}
	if entry["decision"] != "approve" {
		t.Errorf("Expected decision 'approve', got %v", entry["decision"])
	}
	if entry["fallback"] != false {
		t.Errorf("Expected fallback false, got %v", entry["fallback"])
	}
	if entry["latency_ms"].(float64) != 12 {
		t.Errorf("Expected latency_ms 12, got %v", entry["latency_ms"])
	}
}

func TestAppend_MessageFallbackDecisionIsNull(t *testing.T) {
	r := &jsonlAudit{dir: t.TempDir()}

	// The fallback mapping has no is_spam key, so the message audit
	// records a null decision while the join audit records "reject"
	v := domain.NewFallbackVerdict(5)
	if err := r.Append(domain.NewMessageAudit("123", v)); err != nil {
		t.Fatalf("Failed to append: %v", err)
	}

	data, err := os.ReadFile(r.fileFor(time.Now()))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("Failed to unmarshal line: %v", err)
	}
	if entry["decision"] != nil {
		t.Errorf("Expected null decision, got %v", entry["decision"])
	}
	if entry["fallback"] != true {
		t.Errorf("Expected fallback true, got %v", entry["fallback"])
	}
	if entry["reason"] != "parse error" {
		t.Errorf("Expected reason 'parse error', got %v", entry["reason"])
	}
}

func TestAppend_ConcurrentWritesKeepLinesIntact(t *testing.T) {
	r := &jsonlAudit{dir: t.TempDir()}
	v := domain.NewParsedVerdict(map[string]any{"decision": "approve", "reason": "ok"}, 1)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.Append(domain.NewJoinAudit("concurrent", v)); err != nil {
				t.Errorf("Append failed: %v", err)
			}
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(r.fileFor(time.Now()))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("Expected 10 lines, got %d", len(lines))
	}
	for i, line := range lines {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Errorf("Line %d is not valid JSON: %v", i, err)
		}
	}
}

func TestFileFor_DailyRollover(t *testing.T) {
	r := &jsonlAudit{dir: "/var/log/gatekeeper"}

	before := time.Date(2025, 3, 1, 23, 59, 0, 0, time.Local)
	after := time.Date(2025, 3, 2, 0, 1, 0, 0, time.Local)

	f1 := r.fileFor(before)
	f2 := r.fileFor(after)

	if f1 == f2 {
		t.Error("Expected different files across the date rollover")
	}
	if filepath.Base(f1) != "llm-2025-03-01.jsonl" {
		t.Errorf("Expected 'llm-2025-03-01.jsonl', got '%s'", filepath.Base(f1))
	}
	if filepath.Base(f2) != "llm-2025-03-02.jsonl" {
		t.Errorf("Expected 'llm-2025-03-02.jsonl', got '%s'", filepath.Base(f2))
	}
}
