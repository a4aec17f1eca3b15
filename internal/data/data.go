package data

import (
	"github.com/agentics/gatekeeper/internal/biz/repo"
	"github.com/agentics/gatekeeper/internal/infra/lark"
	"github.com/agentics/gatekeeper/internal/infra/openai"
)

// Repositories contains all repositories
type Repositories struct {
	Judge  repo.JudgeRepo
	Policy repo.PolicyRepo
	Audit  repo.AuditRepo
	Notify repo.NotifyRepo
}

// NewRepositories creates all repositories
// larkClient may be nil; moderator alerts are disabled in that case
func NewRepositories(
	judgeClient *openai.Client,
	larkClient *lark.Client,
	policyPath string,
	logDir string,
	alertChatID string,
) (*Repositories, error) {
	auditRepo, err := NewJSONLAudit(logDir)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Judge:  NewOpenAIJudge(judgeClient),
		Policy: NewFilePolicy(policyPath),
		Audit:  auditRepo,
		Notify: NewLarkNotifier(larkClient, alertChatID),
	}, nil
}
