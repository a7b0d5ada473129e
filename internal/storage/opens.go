package storage

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
)

// OpensStorage registers tracking-pixel documents. The tracker service
// owns the open counts; this side only seeds the record at send time.
type OpensStorage struct {
	db          *FirestoreDB
	collections Collections
}

func NewOpensStorage(db *FirestoreDB, collections Collections) *OpensStorage {
	return &OpensStorage{db: db, collections: collections}
}

func (s *OpensStorage) RegisterPixel(ctx context.Context, pixelID, recipient, subject string) error {
	_, err := s.db.Client.Collection(s.collections.Opens).Doc(pixelID).Create(ctx, map[string]any{
		"recipient":  recipient,
		"subject":    subject,
		"open_count": 0,
		"created_at": time.Now().UTC(),
	})
	if err != nil {
		// A resend can mint the same pixel twice; the first registration wins.
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return &domain.StorageError{Op: "create", Collection: s.collections.Opens, Err: err}
	}
	log.WithFields(log.Fields{
		"pixel_id":  pixelID,
		"recipient": recipient,
	}).Debug("Tracking pixel registered")
	return nil
}
