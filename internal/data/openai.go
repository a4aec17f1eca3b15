package data

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/agentics/gatekeeper/internal/biz/domain"
	"github.com/agentics/gatekeeper/internal/biz/repo"
	"github.com/agentics/gatekeeper/internal/infra/openai"
)

// openaiJudge implements the completion backend repository
type openaiJudge struct {
	client *openai.Client
}

// NewOpenAIJudge creates a judge repository
func NewOpenAIJudge(client *openai.Client) repo.JudgeRepo {
	return &openaiJudge{client: client}
}

// Vet sends the prompt pair and parses the model output into a verdict.
// Any backend or parse failure collapses to the fallback verdict.
// Latency covers the completion call and parse only.
func (r *openaiJudge) Vet(ctx context.Context, systemPrompt, userPrompt string) *domain.Verdict {
	start := time.Now()

	var fields map[string]any
	content, err := r.client.Complete(ctx, systemPrompt, userPrompt)
	if err == nil {
		err = json.Unmarshal([]byte(content), &fields)
	}

	latency := int(time.Since(start).Milliseconds())
	if err != nil {
		fmt.Printf("[Judge] Using fallback verdict: %v\n", err)
		return domain.NewFallbackVerdict(latency)
	}

	return domain.NewParsedVerdict(fields, latency)
}
