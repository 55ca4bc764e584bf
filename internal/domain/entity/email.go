package entity

import (
	"time"

	"github.com/google/uuid"
)

// Email is a cached copy of one mailbox message, pulled from a provider
// during sync. (user, service, external id) is unique.
type Email struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Service    ServiceType // Which mail service this message came from.
	ExternalID string      // The provider-side message ID.
	From       string
	Subject    string
	Snippet    string
	Body       string
	ReceivedAt time.Time
	Unread     bool
	Summary    string // AI-generated summary; empty until requested.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ReplyTone labels the register of a suggested reply.
type ReplyTone string

const (
	ToneProfessional ReplyTone = "professional"
	ToneFriendly     ReplyTone = "friendly"
	ToneBrief        ReplyTone = "brief"
)

// ReplyTones lists the tones generated for every suggestion request, in
// presentation order.
func ReplyTones() []ReplyTone {
	return []ReplyTone{ToneProfessional, ToneFriendly, ToneBrief}
}

// SmartReply is one AI-suggested reply to a cached email.
type SmartReply struct {
	ID        uuid.UUID
	EmailID   uuid.UUID
	Tone      ReplyTone
	Body      string
	CreatedAt time.Time
}
