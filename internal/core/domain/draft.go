package domain

import "time"

// Status of a draft or follow-up record. A record transitions
// pending -> sent exactly once and never backward.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusSent     Status = "sent"
	StatusBounced  Status = "bounced"
	StatusReplied  Status = "replied"
)

// Mode selects what the inbound draft endpoint does with a new email.
type Mode string

const (
	ModeDraft Mode = "draft"
	ModeSend  Mode = "send"
)

// Draft is a persisted outbound email record keyed by its document ID.
// GmailMessageID and GmailThreadID are set if and only if Status is sent.
type Draft struct {
	ID             string
	Subject        string
	Body           string
	RecipientEmail string
	RecipientName  string
	SenderEmail    string
	SenderName     string
	CompanyName    string
	ExternalID     string
	Status         Status
	CreatedAt      time.Time
	SentAt         *time.Time
	GmailMessageID string
	GmailThreadID  string
	GmailDraftID   string
	PixelID        string
	VersionGroupID string
	FollowupNumber int
	Notes          string
}

// Followup is a draft linked to an earlier sent draft's thread.
type Followup struct {
	ID              string
	OriginalDraftID string
	Subject         string
	Body            string
	RecipientEmail  string
	RecipientName   string
	SenderEmail     string
	SenderName      string
	FollowupNumber  int
	Status          Status
	CreatedAt       time.Time
	SentAt          *time.Time
	GmailMessageID  string
	GmailThreadID   string
	PixelID         string
}

// OutgoingEmail is what the orchestration layer hands to a Mailer.
// The sender address is implied by the mailer's delegated user.
type OutgoingEmail struct {
	To         string
	ToName     string
	FromName   string
	Subject    string
	HTMLBody   string
	ThreadID   string
	References string
	InReplyTo  string
}

// SendResult is the transport acknowledgment of a sent message.
type SendResult struct {
	MessageID string
	ThreadID  string
	LabelIDs  []string
}

// DraftHandle identifies a draft created in the remote mailbox.
type DraftHandle struct {
	DraftID   string
	MessageID string
	ThreadID  string
}

// Thread is the message listing of a mailbox conversation.
type Thread struct {
	ID       string
	Messages []ThreadMessage
}

type ThreadMessage struct {
	ID      string
	Snippet string
}

// CreateEmailInput is the normalized payload of the inbound draft endpoint.
type CreateEmailInput struct {
	Mode           Mode
	RecipientEmail string
	RecipientName  string
	Subject        string
	Body           string
	SenderEmail    string
	SenderName     string
	CompanyName    string
	ExternalID     string
}

// CreateEmailResult reports what the inbound draft endpoint produced.
type CreateEmailResult struct {
	Mode         Mode
	DraftID      string
	GmailDraftID string
	MessageID    string
	ThreadID     string
	Existing     bool
}

// SendOutcome reports a completed send operation.
type SendOutcome struct {
	DraftID    string
	FollowupID string
	MessageID  string
	ThreadID   string
	Recipient  string
	PixelID    string
	TestMode   bool
}
