package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	EmailExchange = "email"

	EmailLifecycleQueue = "email.lifecycle"

	RoutingKeyDraftSent    = "draft.sent"
	RoutingKeyFollowupSent = "followup.sent"
)

// EmailSentMessage is published on the event bus after a successful
// non-test send. Best effort: publication failures never fail the send.
type EmailSentMessage struct {
	EventID    uuid.UUID `json:"event_id" validate:"required"`
	DraftID    string    `json:"draft_id,omitempty"`
	FollowupID string    `json:"followup_id,omitempty"`
	Recipient  string    `json:"recipient" validate:"required"`
	MessageID  string    `json:"message_id" validate:"required"`
	ThreadID   string    `json:"thread_id" validate:"required"`
	SentAt     time.Time `json:"sent_at" validate:"required"`
}
