package usecase

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncOutput reports how many items a sync touched.
type SyncOutput struct {
	Synced int
}

// SummarizeOutput returns the generated email summary.
type SummarizeOutput struct {
	Summary string
}

// MailboxUsecase defines mailbox aggregation and its AI conveniences.
type MailboxUsecase interface {
	// Sync pulls recent messages from every connected mail service into the
	// local cache. Simulated connections contribute fixture messages.
	Sync(ctx context.Context, userID uuid.UUID) (*SyncOutput, error)

	// List returns the user's cached messages, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Email, error)

	// Summarize generates (and persists) an AI summary for one message.
	Summarize(ctx context.Context, userID, emailID uuid.UUID) (*SummarizeOutput, error)

	// SuggestReplies generates (and persists) one reply suggestion per tone.
	SuggestReplies(ctx context.Context, userID, emailID uuid.UUID) ([]*entity.SmartReply, error)
}
