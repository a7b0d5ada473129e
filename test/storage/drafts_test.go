package storage

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"

	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
	"github.com/wardrockay/mail-draft-creator/internal/storage"
	"github.com/wardrockay/mail-draft-creator/test"
)

func TestDraftsStorage(t *testing.T) {
	suite.Run(t, new(DraftsStorageSuite))
}

type DraftsStorageSuite struct {
	suite.Suite
	dockerPool       *dockertest.Pool
	emulatorResource *dockertest.Resource
	db               *storage.FirestoreDB
	drafts           *storage.DraftsStorage
	opens            *storage.OpensStorage
}

func (suite *DraftsStorageSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		suite.T().Fatalf("Could not connect to docker: %s", err)
	}
	suite.dockerPool = pool
	suite.emulatorResource, _ = test.RunFirestoreEmulator(suite.T(), pool)

	if !suite.T().Failed() {
		ctx := context.Background()
		db, err := storage.NewFirestoreDB(ctx, test.FirestoreProject)
		if err != nil {
			suite.T().Fatalf("Failed to connect to firestore emulator: %v", err)
		}
		suite.db = db

		collections := storage.Collections{
			Drafts:    "email_drafts",
			Followups: "email_followups",
			Opens:     "email_opens",
		}
		suite.drafts = storage.NewDraftsStorage(db, collections)
		suite.opens = storage.NewOpensStorage(db, collections)
	}
}

func (suite *DraftsStorageSuite) TearDownSuite() {
	if suite.db != nil {
		_ = suite.db.Close()
	}
	if suite.emulatorResource != nil {
		_ = suite.dockerPool.Purge(suite.emulatorResource)
	}
}

func (suite *DraftsStorageSuite) newDraft() *domain.Draft {
	return &domain.Draft{
		Subject:        "Quick question",
		Body:           "Hi there",
		RecipientEmail: "prospect@example.com",
		RecipientName:  "Jane Prospect",
		SenderEmail:    "sales@company.com",
	}
}

func (suite *DraftsStorageSuite) TestCreateAndGetDraft() {
	ctx := context.Background()

	id, err := suite.drafts.CreateDraft(ctx, suite.newDraft())
	suite.Require().NoError(err)
	suite.NotEmpty(id)

	got, err := suite.drafts.GetDraft(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("Quick question", got.Subject)
	suite.Equal("prospect@example.com", got.RecipientEmail)
	suite.Equal(domain.StatusPending, got.Status)
	suite.False(got.CreatedAt.IsZero())
	suite.Nil(got.SentAt)
}

func (suite *DraftsStorageSuite) TestGetDraft_NotFound() {
	_, err := suite.drafts.GetDraft(context.Background(), "no-such-id")

	var nfErr *domain.NotFoundError
	suite.Require().ErrorAs(err, &nfErr)
	suite.Equal("draft", nfErr.Resource)
}

func (suite *DraftsStorageSuite) TestMarkDraftSent() {
	ctx := context.Background()

	id, err := suite.drafts.CreateDraft(ctx, suite.newDraft())
	suite.Require().NoError(err)

	sentAt := time.Now().UTC().Truncate(time.Millisecond)
	err = suite.drafts.MarkDraftSent(ctx, id, "msg-1", "thread-1", sentAt)
	suite.Require().NoError(err)

	got, err := suite.drafts.GetDraft(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusSent, got.Status)
	suite.Equal("msg-1", got.GmailMessageID)
	suite.Equal("thread-1", got.GmailThreadID)
	suite.Require().NotNil(got.SentAt)
	suite.WithinDuration(sentAt, *got.SentAt, time.Second)
}

func (suite *DraftsStorageSuite) TestLegacyFieldFallbacks() {
	ctx := context.Background()

	// Simulate a document written by an earlier pipeline revision.
	ref := suite.db.Client.Collection("email_drafts").NewDoc()
	_, err := ref.Create(ctx, map[string]any{
		"subject":      "Old record",
		"content":      "legacy body",
		"to_address":   "legacy@example.com",
		"contact_name": "Legacy Contact",
		"from_address": "oldsender@company.com",
		"partner_name": "Legacy Corp",
		"message_id":   "legacy-msg",
		"thread_id":    "legacy-thread",
		"status":       "sent",
		"created_at":   time.Now().UTC(),
	})
	suite.Require().NoError(err)

	got, err := suite.drafts.GetDraft(ctx, ref.ID)
	suite.Require().NoError(err)
	suite.Equal("legacy body", got.Body)
	suite.Equal("legacy@example.com", got.RecipientEmail)
	suite.Equal("Legacy Contact", got.RecipientName)
	suite.Equal("oldsender@company.com", got.SenderEmail)
	suite.Equal("Legacy Corp", got.CompanyName)
	suite.Equal("legacy-msg", got.GmailMessageID)
	suite.Equal("legacy-thread", got.GmailThreadID)
}

func (suite *DraftsStorageSuite) TestDraftsByStatus() {
	ctx := context.Background()

	d := suite.newDraft()
	d.Status = domain.StatusApproved
	id, err := suite.drafts.CreateDraft(ctx, d)
	suite.Require().NoError(err)

	drafts, err := suite.drafts.DraftsByStatus(ctx, domain.StatusApproved, 10)
	suite.Require().NoError(err)

	found := false
	for _, got := range drafts {
		if got.ID == id {
			found = true
		}
		suite.Equal(domain.StatusApproved, got.Status)
	}
	suite.True(found)
}

func (suite *DraftsStorageSuite) TestDraftsByExternalKey() {
	ctx := context.Background()

	d := suite.newDraft()
	d.ExternalID = "crm-unique-99"
	id, err := suite.drafts.CreateDraft(ctx, d)
	suite.Require().NoError(err)

	drafts, err := suite.drafts.DraftsByExternalKey(ctx, "external_id", "crm-unique-99")
	suite.Require().NoError(err)
	suite.Require().Len(drafts, 1)
	suite.Equal(id, drafts[0].ID)
}

func (suite *DraftsStorageSuite) TestFollowupLifecycle() {
	ctx := context.Background()

	fid, err := suite.drafts.CreateFollowup(ctx, &domain.Followup{
		OriginalDraftID: "d-origin",
		Subject:         "Re: Quick question",
		Body:            "Checking in",
		FollowupNumber:  2,
	})
	suite.Require().NoError(err)

	_, err = suite.drafts.CreateFollowup(ctx, &domain.Followup{
		OriginalDraftID: "d-origin",
		Subject:         "Re: Quick question",
		Body:            "First nudge",
		FollowupNumber:  1,
	})
	suite.Require().NoError(err)

	followups, err := suite.drafts.FollowupsForDraft(ctx, "d-origin")
	suite.Require().NoError(err)
	suite.Require().Len(followups, 2)
	suite.Equal(1, followups[0].FollowupNumber)
	suite.Equal(2, followups[1].FollowupNumber)

	err = suite.drafts.MarkFollowupSent(ctx, fid, "msg-f", "thread-f", time.Now().UTC())
	suite.Require().NoError(err)

	got, err := suite.drafts.GetFollowup(ctx, fid)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusSent, got.Status)
	suite.Equal("msg-f", got.GmailMessageID)
}

func (suite *DraftsStorageSuite) TestRegisterPixel_Idempotent() {
	ctx := context.Background()

	err := suite.opens.RegisterPixel(ctx, "pixel-1", "prospect@example.com", "Quick question")
	suite.Require().NoError(err)

	// Second registration of the same pixel is a no-op.
	err = suite.opens.RegisterPixel(ctx, "pixel-1", "prospect@example.com", "Quick question")
	suite.Require().NoError(err)

	snap, err := suite.db.Client.Collection("email_opens").Doc("pixel-1").Get(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(0), snap.Data()["open_count"])
}
