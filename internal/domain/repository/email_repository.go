package repository

import (
	"context"
	"errors"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEmailNotFound is returned when a cached email is not found.
var ErrEmailNotFound = errors.New("email not found")

// EmailRepository defines the operations for the cached mailbox and its
// AI-generated annotations (summaries, smart replies).
type EmailRepository interface {
	// Upsert inserts the message or, when a row already exists for the same
	// (user, service, external id), refreshes its mutable fields.
	Upsert(ctx context.Context, email *entity.Email) error

	// FindByID retrieves a single cached message owned by the given user.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Email, error)

	// FindByUserID retrieves the user's cached messages, newest first.
	// A non-positive limit means no limit.
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Email, error)

	// FindUnreadByUserID retrieves the user's unread messages, newest first.
	FindUnreadByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Email, error)

	// UpdateSummary stores the AI summary on an existing message.
	UpdateSummary(ctx context.Context, id uuid.UUID, summary string) error

	// ReplaceReplies deletes any previous suggestions for the email and
	// stores the new set atomically with respect to the ambient transaction.
	ReplaceReplies(ctx context.Context, emailID uuid.UUID, replies []*entity.SmartReply) error

	// FindRepliesByEmailID retrieves stored reply suggestions in creation order.
	FindRepliesByEmailID(ctx context.Context, emailID uuid.UUID) ([]*entity.SmartReply, error)
}
