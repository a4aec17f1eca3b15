package repo

import (
	"context"

	"github.com/agentics/gatekeeper/internal/biz/domain"
)

// JudgeRepo is the completion backend interface
// One chat completion per call; backend failures never surface as
// errors, they collapse to the fallback verdict
type JudgeRepo interface {
	// Vet sends a system/user prompt pair and returns the parsed
	// verdict, or the fallback verdict on any backend or parse failure
	Vet(ctx context.Context, systemPrompt, userPrompt string) *domain.Verdict
}
