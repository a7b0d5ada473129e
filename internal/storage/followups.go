package storage

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
)

func (s *DraftsStorage) GetFollowup(ctx context.Context, id string) (*domain.Followup, error) {
	snap, err := s.db.Client.Collection(s.collections.Followups).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, &domain.NotFoundError{Resource: "followup", ID: id}
		}
		return nil, &domain.StorageError{Op: "get", Collection: s.collections.Followups, Err: err}
	}
	return followupFromDoc(snap.Ref.ID, snap.Data()), nil
}

func (s *DraftsStorage) CreateFollowup(ctx context.Context, followup *domain.Followup) (string, error) {
	if followup.CreatedAt.IsZero() {
		followup.CreatedAt = time.Now().UTC()
	}
	if followup.Status == "" {
		followup.Status = domain.StatusPending
	}

	ref := s.db.Client.Collection(s.collections.Followups).NewDoc()
	if _, err := ref.Create(ctx, followupToDoc(followup)); err != nil {
		return "", &domain.StorageError{Op: "create", Collection: s.collections.Followups, Err: err}
	}
	log.WithFields(log.Fields{
		"followup_id":       ref.ID,
		"original_draft_id": followup.OriginalDraftID,
	}).Info("Follow-up record created")
	return ref.ID, nil
}

func (s *DraftsStorage) MarkFollowupSent(ctx context.Context, id, messageID, threadID string, sentAt time.Time) error {
	_, err := s.db.Client.Collection(s.collections.Followups).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(domain.StatusSent)},
		{Path: "sent_at", Value: sentAt},
		{Path: "gmail_message_id", Value: messageID},
		{Path: "gmail_thread_id", Value: threadID},
		{Path: "message_id", Value: messageID},
		{Path: "thread_id", Value: threadID},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &domain.NotFoundError{Resource: "followup", ID: id}
		}
		return &domain.StorageError{Op: "update", Collection: s.collections.Followups, Err: err}
	}
	log.WithFields(log.Fields{
		"followup_id": id,
		"message_id":  messageID,
	}).Info("Follow-up marked sent")
	return nil
}

// FollowupsForDraft returns a draft's follow-ups ordered by sequence
// number. Sorted in memory so legacy documents without a created_at
// index still list correctly.
func (s *DraftsStorage) FollowupsForDraft(ctx context.Context, draftID string) ([]domain.Followup, error) {
	var followups []domain.Followup
	it := s.db.Client.Collection(s.collections.Followups).
		Where("original_draft_id", "==", draftID).
		Documents(ctx)
	defer it.Stop()
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &domain.StorageError{Op: "query", Collection: s.collections.Followups, Err: err}
		}
		followups = append(followups, *followupFromDoc(snap.Ref.ID, snap.Data()))
	}

	sort.Slice(followups, func(i, j int) bool {
		return followups[i].FollowupNumber < followups[j].FollowupNumber
	})
	return followups, nil
}
