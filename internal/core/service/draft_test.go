package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
	"github.com/wardrockay/mail-draft-creator/internal/markup"
	"github.com/wardrockay/mail-draft-creator/mocks"
)

type EmailDraftServiceSuite struct {
	suite.Suite
	storage   *mocks.DraftStorage
	opens     *mocks.OpenTracking
	mailers   *mocks.MailerProvider
	mailer    *mocks.Mailer
	scheduler *mocks.FollowupScheduler
	notifier  *mocks.EventNotifier
	service   *EmailDraftService
}

func TestEmailDraftService(t *testing.T) {
	suite.Run(t, new(EmailDraftServiceSuite))
}

func (suite *EmailDraftServiceSuite) SetupTest() {
	suite.storage = &mocks.DraftStorage{}
	suite.opens = &mocks.OpenTracking{}
	suite.mailers = &mocks.MailerProvider{}
	suite.mailer = &mocks.Mailer{}
	suite.scheduler = &mocks.FollowupScheduler{}
	suite.notifier = &mocks.EventNotifier{}
	suite.service = NewEmailDraftService(
		suite.storage,
		suite.opens,
		suite.mailers,
		suite.scheduler,
		suite.notifier,
		markup.NewRenderer("https://tracker.example.com/pixel.png"),
		Settings{
			DefaultSenderEmail:  "default@company.com",
			TrackingEnabled:     true,
			AutoFollowupEnabled: true,
			DefaultMode:         domain.ModeDraft,
		},
	)
}

func (suite *EmailDraftServiceSuite) TearDownTest() {
	suite.storage.AssertExpectations(suite.T())
	suite.opens.AssertExpectations(suite.T())
	suite.mailers.AssertExpectations(suite.T())
	suite.mailer.AssertExpectations(suite.T())
	suite.scheduler.AssertExpectations(suite.T())
	suite.notifier.AssertExpectations(suite.T())
}

func pendingDraft() *domain.Draft {
	return &domain.Draft{
		ID:             "d-1",
		Subject:        "Quick question",
		Body:           "Hi **there**",
		RecipientEmail: "prospect@example.com",
		RecipientName:  "Jane Prospect",
		SenderEmail:    "sales@company.com",
		SenderName:     "Sam Seller",
		Status:         domain.StatusPending,
	}
}

func sendResult() *domain.SendResult {
	return &domain.SendResult{MessageID: "msg-1", ThreadID: "thread-1"}
}

func (suite *EmailDraftServiceSuite) TestSendDraft_Success() {
	ctx := context.Background()

	suite.storage.EXPECT().GetDraft(ctx, "d-1").Return(pendingDraft(), nil)
	suite.storage.EXPECT().UpdateDraft(ctx, "d-1", mock.MatchedBy(func(fields map[string]any) bool {
		pixel, ok := fields["pixel_id"].(string)
		return ok && pixel != ""
	})).Return(nil)
	suite.mailers.EXPECT().MailerFor("sales@company.com").Return(suite.mailer)
	suite.mailer.EXPECT().SendEmail(ctx, mock.MatchedBy(func(email domain.OutgoingEmail) bool {
		return email.To == "prospect@example.com" &&
			email.Subject == "Quick question" &&
			strings.Contains(email.HTMLBody, "<strong>there</strong>") &&
			strings.Contains(email.HTMLBody, "type=draft")
	})).Return(sendResult(), nil)
	suite.storage.EXPECT().MarkDraftSent(ctx, "d-1", "msg-1", "thread-1", mock.Anything).Return(nil)
	suite.opens.EXPECT().RegisterPixel(ctx, mock.Anything, "prospect@example.com", "Quick question").Return(nil)
	suite.notifier.EXPECT().NotifyDraftSent(ctx, mock.Anything).Return(nil)
	// Scheduling runs off-request, it may or may not land before the assert
	suite.scheduler.EXPECT().ScheduleInitialFollowups(mock.Anything, "d-1").Return(nil).Maybe()

	outcome, err := suite.service.SendDraft(ctx, "d-1", false, "")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "msg-1", outcome.MessageID)
	assert.Equal(suite.T(), "prospect@example.com", outcome.Recipient)
	assert.NotEmpty(suite.T(), outcome.PixelID)
	assert.False(suite.T(), outcome.TestMode)
}

func (suite *EmailDraftServiceSuite) TestSendDraft_TestModeLeavesRecordUntouched() {
	ctx := context.Background()

	suite.storage.EXPECT().GetDraft(ctx, "d-1").Return(pendingDraft(), nil)
	suite.mailers.EXPECT().MailerFor("sales@company.com").Return(suite.mailer)
	suite.mailer.EXPECT().SendEmail(ctx, mock.MatchedBy(func(email domain.OutgoingEmail) bool {
		return email.To == "me@company.com" &&
			email.ToName == "Test Recipient" &&
			email.Subject == "[TEST] Quick question" &&
			!strings.Contains(email.HTMLBody, "pixel.png")
	})).Return(sendResult(), nil)

	outcome, err := suite.service.SendDraft(ctx, "d-1", true, "me@company.com")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), outcome.TestMode)
	assert.Empty(suite.T(), outcome.PixelID)
	suite.storage.AssertNotCalled(suite.T(), "MarkDraftSent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.storage.AssertNotCalled(suite.T(), "UpdateDraft", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmailDraftServiceSuite) TestSendDraft_TestModeCanRepeatOnSentDraft() {
	ctx := context.Background()
	sent := pendingDraft()
	sent.Status = domain.StatusSent

	suite.storage.EXPECT().GetDraft(ctx, "d-1").Return(sent, nil)
	suite.mailers.EXPECT().MailerFor("sales@company.com").Return(suite.mailer)
	suite.mailer.EXPECT().SendEmail(ctx, mock.Anything).Return(sendResult(), nil)

	_, err := suite.service.SendDraft(ctx, "d-1", true, "me@company.com")

	assert.NoError(suite.T(), err)
}

func (suite *EmailDraftServiceSuite) TestSendDraft_AlreadySent() {
	ctx := context.Background()
	sent := pendingDraft()
	sent.Status = domain.StatusSent

	suite.storage.EXPECT().GetDraft(ctx, "d-1").Return(sent, nil)

	_, err := suite.service.SendDraft(ctx, "d-1", false, "")

	var sentErr *domain.AlreadySentError
	assert.ErrorAs(suite.T(), err, &sentErr)
	suite.mailers.AssertNotCalled(suite.T(), "MailerFor", mock.Anything)
}

func (suite *EmailDraftServiceSuite) TestSendDraft_TestModeRequiresEmail() {
	_, err := suite.service.SendDraft(context.Background(), "d-1", true, "")

	var vErr *domain.ValidationError
	assert.ErrorAs(suite.T(), err, &vErr)
	assert.Equal(suite.T(), "test_email", vErr.Field)
}

func (suite *EmailDraftServiceSuite) TestSendDraft_DefaultSenderFallback() {
	ctx := context.Background()
	draft := pendingDraft()
	draft.SenderEmail = ""

	suite.storage.EXPECT().GetDraft(ctx, "d-1").Return(draft, nil)
	suite.storage.EXPECT().UpdateDraft(ctx, "d-1", mock.Anything).Return(nil)
	suite.mailers.EXPECT().MailerFor("default@company.com").Return(suite.mailer)
	suite.mailer.EXPECT().SendEmail(ctx, mock.Anything).Return(sendResult(), nil)
	suite.storage.EXPECT().MarkDraftSent(ctx, "d-1", "msg-1", "thread-1", mock.Anything).Return(nil)
	suite.opens.EXPECT().RegisterPixel(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	suite.notifier.EXPECT().NotifyDraftSent(ctx, mock.Anything).Return(nil)
	suite.scheduler.EXPECT().ScheduleInitialFollowups(mock.Anything, "d-1").Return(nil).Maybe()

	_, err := suite.service.SendDraft(ctx, "d-1", false, "")

	assert.NoError(suite.T(), err)
}

func (suite *EmailDraftServiceSuite) TestSendDraft_SendFailureLeavesStatus() {
	ctx := context.Background()

	suite.storage.EXPECT().GetDraft(ctx, "d-1").Return(pendingDraft(), nil)
	suite.storage.EXPECT().UpdateDraft(ctx, "d-1", mock.Anything).Return(nil)
	suite.mailers.EXPECT().MailerFor("sales@company.com").Return(suite.mailer)
	suite.mailer.EXPECT().SendEmail(ctx, mock.Anything).Return(nil, &domain.GmailError{Kind: domain.SendRejected})

	_, err := suite.service.SendDraft(ctx, "d-1", false, "")

	var gErr *domain.GmailError
	assert.ErrorAs(suite.T(), err, &gErr)
	suite.storage.AssertNotCalled(suite.T(), "MarkDraftSent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func sentOriginal() *domain.Draft {
	d := pendingDraft()
	d.Status = domain.StatusSent
	d.GmailMessageID = "orig-msg"
	d.GmailThreadID = "orig-thread"
	return d
}

func pendingFollowup() *domain.Followup {
	return &domain.Followup{
		ID:              "f-1",
		OriginalDraftID: "d-1",
		Subject:         "Re: Quick question",
		Body:            "Just checking in",
		FollowupNumber:  1,
		Status:          domain.StatusPending,
	}
}

func (suite *EmailDraftServiceSuite) TestSendFollowup_ThreadsOntoOriginal() {
	ctx := context.Background()

	suite.storage.EXPECT().GetFollowup(ctx, "f-1").Return(pendingFollowup(), nil)
	suite.storage.EXPECT().GetDraft(ctx, "d-1").Return(sentOriginal(), nil)
	suite.mailers.EXPECT().MailerFor("sales@company.com").Return(suite.mailer)
	suite.mailer.EXPECT().MessageHeaders(ctx, "orig-msg").Return(map[string]string{"message-id": "<orig@mail.gmail.com>"}, nil)
	suite.mailer.EXPECT().SendEmail(ctx, mock.MatchedBy(func(email domain.OutgoingEmail) bool {
		return email.ThreadID == "orig-thread" &&
			email.References == "<orig@mail.gmail.com>" &&
			email.InReplyTo == "<orig@mail.gmail.com>" &&
			email.To == "prospect@example.com" &&
			strings.Contains(email.HTMLBody, "type=followup")
	})).Return(sendResult(), nil)
	suite.storage.EXPECT().MarkFollowupSent(ctx, "f-1", "msg-1", "thread-1", mock.Anything).Return(nil)
	suite.opens.EXPECT().RegisterPixel(ctx, mock.Anything, "prospect@example.com", "Re: Quick question").Return(nil)
	suite.notifier.EXPECT().NotifyFollowupSent(ctx, mock.Anything).Return(nil)

	outcome, err := suite.service.SendFollowup(ctx, "f-1", false, "")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "f-1", outcome.FollowupID)
}

func (suite *EmailDraftServiceSuite) TestSendFollowup_TestModeSkipsThreading() {
	ctx := context.Background()

	suite.storage.EXPECT().GetFollowup(ctx, "f-1").Return(pendingFollowup(), nil)
	suite.storage.EXPECT().GetDraft(ctx, "d-1").Return(sentOriginal(), nil)
	suite.mailers.EXPECT().MailerFor("sales@company.com").Return(suite.mailer)
	suite.mailer.EXPECT().SendEmail(ctx, mock.MatchedBy(func(email domain.OutgoingEmail) bool {
		return email.ThreadID == "" &&
			email.References == "" &&
			email.To == "me@company.com" &&
			email.Subject == "[TEST] Re: Quick question"
	})).Return(sendResult(), nil)

	_, err := suite.service.SendFollowup(ctx, "f-1", true, "me@company.com")

	assert.NoError(suite.T(), err)
	suite.storage.AssertNotCalled(suite.T(), "MarkFollowupSent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmailDraftServiceSuite) TestSendFollowup_OriginalNeverSent() {
	ctx := context.Background()
	original := pendingDraft() // no thread id

	suite.storage.EXPECT().GetFollowup(ctx, "f-1").Return(pendingFollowup(), nil)
	suite.storage.EXPECT().GetDraft(ctx, "d-1").Return(original, nil)
	suite.mailers.EXPECT().MailerFor("sales@company.com").Return(suite.mailer)

	_, err := suite.service.SendFollowup(ctx, "f-1", false, "")

	var gErr *domain.GmailError
	assert.ErrorAs(suite.T(), err, &gErr)
	assert.Equal(suite.T(), domain.ThreadNotFound, gErr.Kind)
}

func (suite *EmailDraftServiceSuite) TestResendToAnother_NoMutation() {
	ctx := context.Background()

	suite.storage.EXPECT().GetDraft(ctx, "d-1").Return(sentOriginal(), nil)
	suite.mailers.EXPECT().MailerFor("sales@company.com").Return(suite.mailer)
	suite.mailer.EXPECT().SendEmail(ctx, mock.MatchedBy(func(email domain.OutgoingEmail) bool {
		return email.To == "other@example.com" && email.ToName == "Other Person"
	})).Return(sendResult(), nil)
	suite.opens.EXPECT().RegisterPixel(ctx, mock.Anything, "other@example.com", "Quick question").Return(nil)

	outcome, err := suite.service.ResendToAnother(ctx, "d-1", "other@example.com", "Other Person")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "other@example.com", outcome.Recipient)
	suite.storage.AssertNotCalled(suite.T(), "MarkDraftSent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.storage.AssertNotCalled(suite.T(), "UpdateDraft", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmailDraftServiceSuite) TestResendToAnother_RequiresEmail() {
	_, err := suite.service.ResendToAnother(context.Background(), "d-1", "", "")

	var vErr *domain.ValidationError
	assert.ErrorAs(suite.T(), err, &vErr)
}

func createInput() domain.CreateEmailInput {
	return domain.CreateEmailInput{
		RecipientEmail: "prospect@example.com",
		RecipientName:  "Jane Prospect",
		Subject:        "Quick question",
		Body:           "Hi **there**",
	}
}

func (suite *EmailDraftServiceSuite) TestCreateEmail_DraftMode() {
	ctx := context.Background()

	suite.mailers.EXPECT().MailerFor("default@company.com").Return(suite.mailer)
	suite.mailer.EXPECT().UserSignature(ctx).Return(`<p>Sam</p>`)
	suite.mailer.EXPECT().CreateDraft(ctx, mock.MatchedBy(func(email domain.OutgoingEmail) bool {
		return strings.Contains(email.HTMLBody, "<p>Sam</p>") &&
			strings.Contains(email.HTMLBody, "<strong>there</strong>")
	})).Return(&domain.DraftHandle{DraftID: "gmail-d-1", MessageID: "msg-1", ThreadID: "thread-1"}, nil)
	suite.storage.EXPECT().CreateDraft(ctx, mock.MatchedBy(func(d *domain.Draft) bool {
		return d.GmailDraftID == "gmail-d-1" && d.Status == domain.StatusPending
	})).Return("d-1", nil)

	result, err := suite.service.CreateEmail(ctx, createInput())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.ModeDraft, result.Mode)
	assert.Equal(suite.T(), "d-1", result.DraftID)
	assert.Equal(suite.T(), "gmail-d-1", result.GmailDraftID)
}

func (suite *EmailDraftServiceSuite) TestCreateEmail_SendMode() {
	ctx := context.Background()
	in := createInput()
	in.Mode = domain.ModeSend

	stored := pendingDraft()
	stored.SenderEmail = "default@company.com"

	suite.storage.EXPECT().CreateDraft(ctx, mock.Anything).Return("d-1", nil)
	suite.storage.EXPECT().GetDraft(ctx, "d-1").Return(stored, nil)
	suite.storage.EXPECT().UpdateDraft(ctx, "d-1", mock.Anything).Return(nil)
	suite.mailers.EXPECT().MailerFor("default@company.com").Return(suite.mailer)
	suite.mailer.EXPECT().SendEmail(ctx, mock.Anything).Return(sendResult(), nil)
	suite.storage.EXPECT().MarkDraftSent(ctx, "d-1", "msg-1", "thread-1", mock.Anything).Return(nil)
	suite.opens.EXPECT().RegisterPixel(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	suite.notifier.EXPECT().NotifyDraftSent(ctx, mock.Anything).Return(nil)
	suite.scheduler.EXPECT().ScheduleInitialFollowups(mock.Anything, "d-1").Return(nil).Maybe()

	result, err := suite.service.CreateEmail(ctx, in)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.ModeSend, result.Mode)
	assert.Equal(suite.T(), "msg-1", result.MessageID)
}

func (suite *EmailDraftServiceSuite) TestCreateEmail_IdempotentOnExternalID() {
	ctx := context.Background()
	in := createInput()
	in.ExternalID = "crm-42"

	suite.storage.EXPECT().DraftsByExternalKey(ctx, "external_id", "crm-42").Return([]domain.Draft{
		{ID: "d-1", GmailDraftID: "gmail-d-1"},
	}, nil)

	result, err := suite.service.CreateEmail(ctx, in)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), result.Existing)
	assert.Equal(suite.T(), "d-1", result.DraftID)
	suite.mailers.AssertNotCalled(suite.T(), "MailerFor", mock.Anything)
	suite.storage.AssertNotCalled(suite.T(), "CreateDraft", mock.Anything, mock.Anything)
}

func (suite *EmailDraftServiceSuite) TestCreateEmail_MissingFields() {
	in := createInput()
	in.Subject = ""

	_, err := suite.service.CreateEmail(context.Background(), in)

	var vErr *domain.ValidationError
	assert.ErrorAs(suite.T(), err, &vErr)
	assert.Equal(suite.T(), "subject", vErr.Field)
}

func (suite *EmailDraftServiceSuite) TestDraftThread_RequiresSentDraft() {
	ctx := context.Background()

	suite.storage.EXPECT().GetDraft(ctx, "d-1").Return(pendingDraft(), nil)

	_, err := suite.service.DraftThread(ctx, "d-1")

	var gErr *domain.GmailError
	assert.ErrorAs(suite.T(), err, &gErr)
	assert.Equal(suite.T(), domain.ThreadNotFound, gErr.Kind)
}

func (suite *EmailDraftServiceSuite) TestDraftThread_FetchesThread() {
	ctx := context.Background()

	suite.storage.EXPECT().GetDraft(ctx, "d-1").Return(sentOriginal(), nil)
	suite.mailers.EXPECT().MailerFor("sales@company.com").Return(suite.mailer)
	suite.mailer.EXPECT().GetThread(ctx, "orig-thread").Return(&domain.Thread{
		ID:       "orig-thread",
		Messages: []domain.ThreadMessage{{ID: "m1", Snippet: "hi"}},
	}, nil)

	thread, err := suite.service.DraftThread(ctx, "d-1")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), thread.Messages, 1)
}
