package storage

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
)

// DraftsStorage persists drafts and follow-ups in Firestore.
type DraftsStorage struct {
	db          *FirestoreDB
	collections Collections
}

func NewDraftsStorage(db *FirestoreDB, collections Collections) *DraftsStorage {
	return &DraftsStorage{db: db, collections: collections}
}

func (s *DraftsStorage) GetDraft(ctx context.Context, id string) (*domain.Draft, error) {
	snap, err := s.db.Client.Collection(s.collections.Drafts).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, &domain.NotFoundError{Resource: "draft", ID: id}
		}
		return nil, &domain.StorageError{Op: "get", Collection: s.collections.Drafts, Err: err}
	}
	return draftFromDoc(snap.Ref.ID, snap.Data()), nil
}

func (s *DraftsStorage) CreateDraft(ctx context.Context, draft *domain.Draft) (string, error) {
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = time.Now().UTC()
	}
	if draft.Status == "" {
		draft.Status = domain.StatusPending
	}

	ref := s.db.Client.Collection(s.collections.Drafts).NewDoc()
	if _, err := ref.Create(ctx, draftToDoc(draft)); err != nil {
		return "", &domain.StorageError{Op: "create", Collection: s.collections.Drafts, Err: err}
	}
	log.WithFields(log.Fields{
		"draft_id":  ref.ID,
		"recipient": draft.RecipientEmail,
	}).Info("Draft record created")
	return ref.ID, nil
}

func (s *DraftsStorage) UpdateDraft(ctx context.Context, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	_, err := s.db.Client.Collection(s.collections.Drafts).Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &domain.NotFoundError{Resource: "draft", ID: id}
		}
		return &domain.StorageError{Op: "update", Collection: s.collections.Drafts, Err: err}
	}
	return nil
}

// MarkDraftSent flips the record to sent in one document write. The
// legacy message_id/thread_id duals are kept in step for readers that
// still query the old names.
func (s *DraftsStorage) MarkDraftSent(ctx context.Context, id, messageID, threadID string, sentAt time.Time) error {
	_, err := s.db.Client.Collection(s.collections.Drafts).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(domain.StatusSent)},
		{Path: "sent_at", Value: sentAt},
		{Path: "gmail_message_id", Value: messageID},
		{Path: "gmail_thread_id", Value: threadID},
		{Path: "message_id", Value: messageID},
		{Path: "thread_id", Value: threadID},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &domain.NotFoundError{Resource: "draft", ID: id}
		}
		return &domain.StorageError{Op: "update", Collection: s.collections.Drafts, Err: err}
	}
	log.WithFields(log.Fields{
		"draft_id":   id,
		"message_id": messageID,
		"thread_id":  threadID,
	}).Info("Draft marked sent")
	return nil
}

func (s *DraftsStorage) DraftsByStatus(ctx context.Context, st domain.Status, limit int) ([]domain.Draft, error) {
	q := s.db.Client.Collection(s.collections.Drafts).
		Where("status", "==", string(st)).
		OrderBy("created_at", firestore.Asc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	var drafts []domain.Draft
	it := q.Documents(ctx)
	defer it.Stop()
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &domain.StorageError{Op: "query", Collection: s.collections.Drafts, Err: err}
		}
		drafts = append(drafts, *draftFromDoc(snap.Ref.ID, snap.Data()))
	}
	return drafts, nil
}

// DraftsByExternalKey looks drafts up by an upstream correlation field,
// used for idempotent creation.
func (s *DraftsStorage) DraftsByExternalKey(ctx context.Context, key, value string) ([]domain.Draft, error) {
	var drafts []domain.Draft
	it := s.db.Client.Collection(s.collections.Drafts).Where(key, "==", value).Documents(ctx)
	defer it.Stop()
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &domain.StorageError{Op: "query", Collection: s.collections.Drafts, Err: err}
		}
		drafts = append(drafts, *draftFromDoc(snap.Ref.ID, snap.Data()))
	}
	return drafts, nil
}
