package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

// Collections names the three document collections this service touches.
type Collections struct {
	Drafts    string
	Followups string
	Opens     string
}

type FirestoreDB struct {
	Client *firestore.Client
}

func NewFirestoreDB(ctx context.Context, projectID string) (*FirestoreDB, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("unable to create firestore client: %w", err)
	}
	return &FirestoreDB{Client: client}, nil
}

func (db *FirestoreDB) Close() error {
	if db.Client != nil {
		return db.Client.Close()
	}
	return nil
}
