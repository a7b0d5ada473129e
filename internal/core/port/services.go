package port

import (
	"context"

	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
)

type DraftService interface {
	CreateEmail(ctx context.Context, in domain.CreateEmailInput) (*domain.CreateEmailResult, error)
	SendDraft(ctx context.Context, draftID string, testMode bool, testEmail string) (*domain.SendOutcome, error)
	SendFollowup(ctx context.Context, followupID string, testMode bool, testEmail string) (*domain.SendOutcome, error)
	ResendToAnother(ctx context.Context, draftID, newEmail, newName string) (*domain.SendOutcome, error)
	GetDraft(ctx context.Context, id string) (*domain.Draft, error)
	DraftsByStatus(ctx context.Context, status domain.Status, limit int) ([]domain.Draft, error)
	DraftThread(ctx context.Context, draftID string) (*domain.Thread, error)
}
