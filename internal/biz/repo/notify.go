package repo

import "context"

// NotifyRepo pushes moderation alerts to an external channel
type NotifyRepo interface {
	// Alert sends a short text notification to the moderators chat
	Alert(ctx context.Context, text string) error
}
