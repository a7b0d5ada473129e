package port

import (
	"context"

	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
)

// Mailer sends messages on behalf of one delegated mailbox user.
type Mailer interface {
	SendEmail(ctx context.Context, email domain.OutgoingEmail) (*domain.SendResult, error)
	CreateDraft(ctx context.Context, email domain.OutgoingEmail) (*domain.DraftHandle, error)
	GetThread(ctx context.Context, threadID string) (*domain.Thread, error)
	MessageHeaders(ctx context.Context, messageID string) (map[string]string, error)
	// UserSignature is best effort and returns "" when unavailable.
	UserSignature(ctx context.Context) string
}

// MailerProvider hands out one cached Mailer per delegated sender address.
type MailerProvider interface {
	MailerFor(senderEmail string) Mailer
}

type FollowupScheduler interface {
	ScheduleInitialFollowups(ctx context.Context, draftID string) error
}

type EventNotifier interface {
	NotifyDraftSent(ctx context.Context, message *domain.EmailSentMessage) error
	NotifyFollowupSent(ctx context.Context, message *domain.EmailSentMessage) error
}
