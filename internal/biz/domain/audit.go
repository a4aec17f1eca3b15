package domain

import "time"

// Vet kinds recorded in the audit log
const (
	VetKindJoin    = "join"
	VetKindMessage = "message"
)

// AuditEntry represents one line of the append-only vet audit log.
// Field order matches the serialized line layout.
type AuditEntry struct {
	TS        int64  `json:"ts"`
	Type      string `json:"type"`
	Contact   string `json:"contact"`
	Decision  any    `json:"decision"`
	Reason    any    `json:"reason"`
	LatencyMS int    `json:"latency_ms"`
	Fallback  bool   `json:"fallback"`
}

// NewJoinAudit builds the audit entry for a join vet
func NewJoinAudit(contact string, v *Verdict) AuditEntry {
	return AuditEntry{
		TS:        time.Now().UnixMilli(),
		Type:      VetKindJoin,
		Contact:   contact,
		Decision:  v.Decision(),
		Reason:    v.Reason(),
		LatencyMS: v.LatencyMS,
		Fallback:  v.Fallback,
	}
}

// NewMessageAudit builds the audit entry for a message vet.
// The decision column records the raw is_spam value, null when the
// model omitted it.
func NewMessageAudit(contact string, v *Verdict) AuditEntry {
	return AuditEntry{
		TS:        time.Now().UnixMilli(),
		Type:      VetKindMessage,
		Contact:   contact,
		Decision:  v.IsSpamRaw(),
		Reason:    v.Reason(),
		LatencyMS: v.LatencyMS,
		Fallback:  v.Fallback,
	}
}
