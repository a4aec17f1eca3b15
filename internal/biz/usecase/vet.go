package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agentics/gatekeeper/internal/biz/domain"
	"github.com/agentics/gatekeeper/internal/biz/repo"
)

// VetPrompts contains prompt templates for both vet kinds
type VetPrompts struct {
	JoinSystem    string // supports {{policy}}
	JoinUser      string // supports {{name}}, {{note}}
	MessageSystem string // supports {{policy}}
	MessageUser   string // supports {{body}}
}

// DefaultVetPrompts contains the default prompt templates
var DefaultVetPrompts = VetPrompts{
	JoinSystem:    "Policy:\n{{policy}}\nReturn JSON with decision approve/reject and reason.",
	JoinUser:      "Name: {{name}}\nNote: {{note}}",
	MessageSystem: "Policy:\n{{policy}}\nReturn JSON with is_spam true/false and reason.",
	MessageUser:   "Message: {{body}}",
}

// VetUsecase handles the vetting workflow
type VetUsecase struct {
	judgeRepo  repo.JudgeRepo
	policyRepo repo.PolicyRepo
	auditRepo  repo.AuditRepo
	notifyRepo repo.NotifyRepo
	prompts    VetPrompts
}

// NewVetUsecase creates a new vet usecase
// notifyRepo may be nil; moderator alerts are skipped in that case
func NewVetUsecase(
	judgeRepo repo.JudgeRepo,
	policyRepo repo.PolicyRepo,
	auditRepo repo.AuditRepo,
	notifyRepo repo.NotifyRepo,
	prompts VetPrompts,
) *VetUsecase {
	return &VetUsecase{
		judgeRepo:  judgeRepo,
		policyRepo: policyRepo,
		auditRepo:  auditRepo,
		notifyRepo: notifyRepo,
		prompts:    prompts,
	}
}

// VetJoin vets a prospective member against the policy.
// Exactly one audit entry is appended per call, fallback included.
func (uc *VetUsecase) VetJoin(ctx context.Context, req domain.JoinRequest) (*domain.Verdict, error) {
	policy, err := uc.policyRepo.Load()
	if err != nil {
		return nil, err
	}

	system := strings.ReplaceAll(uc.prompts.JoinSystem, "{{policy}}", policy)
	user := strings.ReplaceAll(uc.prompts.JoinUser, "{{name}}", req.Name)
	user = strings.ReplaceAll(user, "{{note}}", req.Note)

	verdict := uc.judgeRepo.Vet(ctx, system, user)

	if err := uc.auditRepo.Append(domain.NewJoinAudit(req.Name, verdict)); err != nil {
		return nil, err
	}

	if verdict.Rejected() {
		uc.alert(fmt.Sprintf("Join rejected: %s (%v)", req.Name, verdict.Reason()))
	}

	return verdict, nil
}

// VetMessage vets an incoming message against the policy.
// Exactly one audit entry is appended per call, fallback included.
func (uc *VetUsecase) VetMessage(ctx context.Context, req domain.MessageRequest) (*domain.Verdict, error) {
	policy, err := uc.policyRepo.Load()
	if err != nil {
		return nil, err
	}

	system := strings.ReplaceAll(uc.prompts.MessageSystem, "{{policy}}", policy)
	user := strings.ReplaceAll(uc.prompts.MessageUser, "{{body}}", req.Body)

	verdict := uc.judgeRepo.Vet(ctx, system, user)

	if err := uc.auditRepo.Append(domain.NewMessageAudit(req.Author, verdict)); err != nil {
		return nil, err
	}

	if verdict.Spam() {
		uc.alert(fmt.Sprintf("Spam flagged from %s: %v", req.Author, verdict.Reason()))
	}

	return verdict, nil
}

// alert notifies moderators without blocking the request
func (uc *VetUsecase) alert(text string) {
	if uc.notifyRepo == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := uc.notifyRepo.Alert(ctx, truncate(text, 200)); err != nil {
			fmt.Printf("[Vet] Alert failed: %v\n", err)
		}
	}()
}

// truncate shortens alert text to at most n bytes
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
