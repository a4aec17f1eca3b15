package data

import (
	"context"

	"github.com/agentics/gatekeeper/internal/biz/repo"
	"github.com/agentics/gatekeeper/internal/infra/lark"
)

// larkNotifier implements moderator alerts over Lark
type larkNotifier struct {
	client *lark.Client
	chatID string
}

// NewLarkNotifier creates a notify repository
// Returns nil when the client is nil or no alert chat is configured;
// callers treat a nil repository as alerts disabled
func NewLarkNotifier(client *lark.Client, chatID string) repo.NotifyRepo {
	if client == nil || chatID == "" {
		return nil
	}
	return &larkNotifier{client: client, chatID: chatID}
}

// Alert sends a short text notification to the moderators chat
func (r *larkNotifier) Alert(ctx context.Context, text string) error {
	return r.client.SendText(ctx, r.chatID, text)
}
