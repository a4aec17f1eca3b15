package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agentics/gatekeeper/internal/biz/domain"
	"github.com/agentics/gatekeeper/internal/biz/repo"
)

// jsonlAudit implements the append-only audit log
// One file per calendar day, one JSON line per entry
type jsonlAudit struct {
	dir string
}

// NewJSONLAudit creates the audit repository and its log directory
func NewJSONLAudit(dir string) (repo.AuditRepo, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return &jsonlAudit{dir: dir}, nil
}

// Append writes one entry to the current day's file.
// The file is opened and closed per call; concurrent appends rely on
// O_APPEND semantics and are not locked.
func (r *jsonlAudit) Append(entry domain.AuditEntry) error {
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}

	f, err := os.OpenFile(r.fileFor(time.Now()), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}

	return nil
}

// fileFor derives the log file path for a given date
func (r *jsonlAudit) fileFor(t time.Time) string {
	return filepath.Join(r.dir, fmt.Sprintf("llm-%s.jsonl", t.Format("2006-01-02")))
}
