package repo

import "github.com/agentics/gatekeeper/internal/biz/domain"

// AuditRepo appends vet outcomes to the audit log
type AuditRepo interface {
	// Append writes one entry as a single JSON line to the current
	// day's log file
	Append(entry domain.AuditEntry) error
}
