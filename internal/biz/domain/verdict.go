package domain

// Verdict represents the moderation outcome produced once per vet request.
// Fields holds the mapping parsed from the model output; on the fallback
// path it holds the fixed safe default instead.
type Verdict struct {
	Fields    map[string]any
	LatencyMS int
	Fallback  bool
}

// NewParsedVerdict wraps a successfully parsed model mapping
func NewParsedVerdict(fields map[string]any, latencyMS int) *Verdict {
	if fields == nil {
		fields = map[string]any{}
	}
	return &Verdict{Fields: fields, LatencyMS: latencyMS}
}

// NewFallbackVerdict returns the safe default substituted when the
// completion backend cannot be reached or its output cannot be parsed
func NewFallbackVerdict(latencyMS int) *Verdict {
	return &Verdict{
		Fields: map[string]any{
			"decision": "reject",
			"reason":   "parse error",
		},
		LatencyMS: latencyMS,
		Fallback:  true,
	}
}

// Decision returns the decision value, nil when absent
func (v *Verdict) Decision() any {
	return v.Fields["decision"]
}

// Reason returns the reason value, nil when absent
func (v *Verdict) Reason() any {
	return v.Fields["reason"]
}

// IsSpamRaw returns the is_spam value exactly as the model provided it,
// nil when absent. Audit records keep the raw value.
func (v *Verdict) IsSpamRaw() any {
	return v.Fields["is_spam"]
}

// IsSpamOrFalse returns the is_spam value, defaulting to false when the
// key is absent. The value itself is passed through untouched.
func (v *Verdict) IsSpamOrFalse() any {
	if val, ok := v.Fields["is_spam"]; ok {
		return val
	}
	return false
}

// Rejected checks whether the decision value equals "reject"
func (v *Verdict) Rejected() bool {
	d, _ := v.Fields["decision"].(string)
	return d == "reject"
}

// Spam checks whether is_spam is boolean true
func (v *Verdict) Spam() bool {
	b, _ := v.Fields["is_spam"].(bool)
	return b
}
