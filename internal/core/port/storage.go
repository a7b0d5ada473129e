package port

import (
	"context"
	"time"

	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
)

type DraftStorage interface {
	GetDraft(ctx context.Context, id string) (*domain.Draft, error)
	CreateDraft(ctx context.Context, draft *domain.Draft) (string, error)
	UpdateDraft(ctx context.Context, id string, fields map[string]any) error
	// MarkDraftSent is the only sanctioned path to the sent status. It sets
	// status, both Gmail ids and the timestamp in a single document write.
	MarkDraftSent(ctx context.Context, id, messageID, threadID string, sentAt time.Time) error
	DraftsByStatus(ctx context.Context, status domain.Status, limit int) ([]domain.Draft, error)
	DraftsByExternalKey(ctx context.Context, key, value string) ([]domain.Draft, error)

	GetFollowup(ctx context.Context, id string) (*domain.Followup, error)
	CreateFollowup(ctx context.Context, followup *domain.Followup) (string, error)
	MarkFollowupSent(ctx context.Context, id, messageID, threadID string, sentAt time.Time) error
	FollowupsForDraft(ctx context.Context, draftID string) ([]domain.Followup, error)
}

// OpenTracking registers pixel documents so the tracker service can
// increment open counts against them.
type OpenTracking interface {
	RegisterPixel(ctx context.Context, pixelID, recipient, subject string) error
}
