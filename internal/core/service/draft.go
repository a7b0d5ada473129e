package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
	"github.com/wardrockay/mail-draft-creator/internal/core/port"
	"github.com/wardrockay/mail-draft-creator/internal/markup"
)

const schedulingTimeout = 30 * time.Second

// Settings carries the orchestration knobs resolved at startup.
type Settings struct {
	DefaultSenderEmail  string
	DefaultSenderName   string
	TrackingEnabled     bool
	AutoFollowupEnabled bool
	DefaultMode         domain.Mode
}

// EmailDraftService orchestrates draft creation and sending: storage
// reads, Markdown rendering, pixel minting, the Gmail send and the
// post-send bookkeeping.
type EmailDraftService struct {
	storage   port.DraftStorage
	opens     port.OpenTracking
	mailers   port.MailerProvider
	scheduler port.FollowupScheduler
	notifier  port.EventNotifier
	renderer  *markup.Renderer
	settings  Settings
}

// NewEmailDraftService wires the orchestration service. scheduler and
// notifier may be nil; the corresponding post-send steps are skipped.
func NewEmailDraftService(
	storage port.DraftStorage,
	opens port.OpenTracking,
	mailers port.MailerProvider,
	scheduler port.FollowupScheduler,
	notifier port.EventNotifier,
	renderer *markup.Renderer,
	settings Settings,
) *EmailDraftService {
	return &EmailDraftService{
		storage:   storage,
		opens:     opens,
		mailers:   mailers,
		scheduler: scheduler,
		notifier:  notifier,
		renderer:  renderer,
		settings:  settings,
	}
}

func (s *EmailDraftService) senderFor(email, name string) (string, string) {
	if email == "" {
		email = s.settings.DefaultSenderEmail
	}
	if name == "" {
		name = s.settings.DefaultSenderName
	}
	return email, name
}

// SendDraft sends a stored draft. In test mode the message goes to
// testEmail and no record is mutated; a draft can be test-sent any
// number of times, sent for real exactly once.
func (s *EmailDraftService) SendDraft(ctx context.Context, draftID string, testMode bool, testEmail string) (*domain.SendOutcome, error) {
	if testMode && testEmail == "" {
		return nil, &domain.ValidationError{Field: "test_email", Message: "required in test mode"}
	}

	draft, err := s.storage.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if !testMode && draft.Status == domain.StatusSent {
		return nil, &domain.AlreadySentError{Resource: "draft", ID: draftID}
	}

	recipient, recipientName := draft.RecipientEmail, draft.RecipientName
	if testMode {
		recipient, recipientName = testEmail, "Test Recipient"
	}
	if recipient == "" {
		return nil, &domain.ValidationError{Field: "recipient_email", Message: "draft has no recipient"}
	}
	sender, senderName := s.senderFor(draft.SenderEmail, draft.SenderName)

	subject := draft.Subject
	if testMode {
		subject = "[TEST] " + subject
	}

	html, err := s.renderer.Render(draft.Body)
	if err != nil {
		return nil, err
	}

	var pixelID string
	if s.settings.TrackingEnabled && !testMode {
		pixelID = uuid.NewString()
		html = s.renderer.WithTrackingPixel(html, pixelID, false)
		if err := s.storage.UpdateDraft(ctx, draftID, map[string]any{"pixel_id": pixelID}); err != nil {
			log.WithError(err).WithField("draft_id", draftID).Warn("Could not persist pixel id before send")
		}
	}

	res, err := s.mailers.MailerFor(sender).SendEmail(ctx, domain.OutgoingEmail{
		To:       recipient,
		ToName:   recipientName,
		FromName: senderName,
		Subject:  subject,
		HTMLBody: html,
	})
	if err != nil {
		return nil, err
	}

	if testMode {
		log.WithFields(log.Fields{
			"draft_id":  draftID,
			"recipient": recipient,
		}).Info("Test email sent, draft left untouched")
		return &domain.SendOutcome{
			DraftID:   draftID,
			MessageID: res.MessageID,
			ThreadID:  res.ThreadID,
			Recipient: recipient,
			TestMode:  true,
		}, nil
	}

	sentAt := time.Now().UTC()
	if err := s.storage.MarkDraftSent(ctx, draftID, res.MessageID, res.ThreadID, sentAt); err != nil {
		return nil, err
	}

	s.registerPixel(ctx, pixelID, recipient, draft.Subject)
	s.scheduleFollowups(draft, draftID)
	s.notify(ctx, s.notifierDraftSent, &domain.EmailSentMessage{
		EventID:   uuid.New(),
		DraftID:   draftID,
		Recipient: recipient,
		MessageID: res.MessageID,
		ThreadID:  res.ThreadID,
		SentAt:    sentAt,
	})

	return &domain.SendOutcome{
		DraftID:   draftID,
		MessageID: res.MessageID,
		ThreadID:  res.ThreadID,
		Recipient: recipient,
		PixelID:   pixelID,
	}, nil
}

// SendFollowup sends a follow-up threaded onto its original draft's
// conversation. Test mode sends a standalone copy to testEmail without
// threading or mutation.
func (s *EmailDraftService) SendFollowup(ctx context.Context, followupID string, testMode bool, testEmail string) (*domain.SendOutcome, error) {
	if testMode && testEmail == "" {
		return nil, &domain.ValidationError{Field: "test_email", Message: "required in test mode"}
	}

	followup, err := s.storage.GetFollowup(ctx, followupID)
	if err != nil {
		return nil, err
	}
	if !testMode && followup.Status == domain.StatusSent {
		return nil, &domain.AlreadySentError{Resource: "followup", ID: followupID}
	}

	original, err := s.storage.GetDraft(ctx, followup.OriginalDraftID)
	if err != nil {
		return nil, err
	}

	recipient, recipientName := followup.RecipientEmail, followup.RecipientName
	if recipient == "" {
		recipient, recipientName = original.RecipientEmail, original.RecipientName
	}
	if testMode {
		recipient, recipientName = testEmail, "Test Recipient"
	}
	if recipient == "" {
		return nil, &domain.ValidationError{Field: "recipient_email", Message: "follow-up has no recipient"}
	}

	senderEmail := followup.SenderEmail
	if senderEmail == "" {
		senderEmail = original.SenderEmail
	}
	senderName := followup.SenderName
	if senderName == "" {
		senderName = original.SenderName
	}
	sender, senderName := s.senderFor(senderEmail, senderName)
	mailer := s.mailers.MailerFor(sender)

	subject := followup.Subject
	if testMode {
		subject = "[TEST] " + subject
	}

	html, err := s.renderer.Render(followup.Body)
	if err != nil {
		return nil, err
	}

	var pixelID string
	if s.settings.TrackingEnabled && !testMode {
		pixelID = uuid.NewString()
		html = s.renderer.WithTrackingPixel(html, pixelID, true)
	}

	email := domain.OutgoingEmail{
		To:       recipient,
		ToName:   recipientName,
		FromName: senderName,
		Subject:  subject,
		HTMLBody: html,
	}
	if !testMode {
		if original.GmailThreadID == "" {
			return nil, &domain.GmailError{
				Kind: domain.ThreadNotFound,
				Err:  fmt.Errorf("original draft %s has no thread", original.ID),
			}
		}
		email.ThreadID = original.GmailThreadID
		if original.GmailMessageID != "" {
			headers, err := mailer.MessageHeaders(ctx, original.GmailMessageID)
			if err != nil {
				log.WithError(err).WithField("draft_id", original.ID).Warn("Could not read original message headers, sending without reply headers")
			} else if msgID := headers["message-id"]; msgID != "" {
				email.References = msgID
				email.InReplyTo = msgID
			}
		}
	}

	res, err := mailer.SendEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if testMode {
		return &domain.SendOutcome{
			FollowupID: followupID,
			MessageID:  res.MessageID,
			ThreadID:   res.ThreadID,
			Recipient:  recipient,
			TestMode:   true,
		}, nil
	}

	sentAt := time.Now().UTC()
	if err := s.storage.MarkFollowupSent(ctx, followupID, res.MessageID, res.ThreadID, sentAt); err != nil {
		return nil, err
	}

	s.registerPixel(ctx, pixelID, recipient, followup.Subject)
	s.notify(ctx, s.notifierFollowupSent, &domain.EmailSentMessage{
		EventID:    uuid.New(),
		DraftID:    followup.OriginalDraftID,
		FollowupID: followupID,
		Recipient:  recipient,
		MessageID:  res.MessageID,
		ThreadID:   res.ThreadID,
		SentAt:     sentAt,
	})

	return &domain.SendOutcome{
		FollowupID: followupID,
		MessageID:  res.MessageID,
		ThreadID:   res.ThreadID,
		Recipient:  recipient,
		PixelID:    pixelID,
	}, nil
}

// ResendToAnother sends a copy of a draft to a different address. The
// stored record is never mutated; the copy gets its own pixel.
func (s *EmailDraftService) ResendToAnother(ctx context.Context, draftID, newEmail, newName string) (*domain.SendOutcome, error) {
	if newEmail == "" {
		return nil, &domain.ValidationError{Field: "new_email", Message: "required"}
	}

	draft, err := s.storage.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	sender, senderName := s.senderFor(draft.SenderEmail, draft.SenderName)

	html, err := s.renderer.Render(draft.Body)
	if err != nil {
		return nil, err
	}

	var pixelID string
	if s.settings.TrackingEnabled {
		pixelID = uuid.NewString()
		html = s.renderer.WithTrackingPixel(html, pixelID, false)
	}

	res, err := s.mailers.MailerFor(sender).SendEmail(ctx, domain.OutgoingEmail{
		To:       newEmail,
		ToName:   newName,
		FromName: senderName,
		Subject:  draft.Subject,
		HTMLBody: html,
	})
	if err != nil {
		return nil, err
	}

	s.registerPixel(ctx, pixelID, newEmail, draft.Subject)

	log.WithFields(log.Fields{
		"draft_id":  draftID,
		"recipient": newEmail,
	}).Info("Draft resent to another recipient")

	return &domain.SendOutcome{
		DraftID:   draftID,
		MessageID: res.MessageID,
		ThreadID:  res.ThreadID,
		Recipient: newEmail,
		PixelID:   pixelID,
	}, nil
}

// CreateEmail handles an inbound email request: store it as a pending
// record and either park it as a Gmail draft or send it right away.
// An ExternalID makes the call idempotent.
func (s *EmailDraftService) CreateEmail(ctx context.Context, in domain.CreateEmailInput) (*domain.CreateEmailResult, error) {
	if in.RecipientEmail == "" {
		return nil, &domain.ValidationError{Field: "to", Message: "required"}
	}
	if in.Subject == "" {
		return nil, &domain.ValidationError{Field: "subject", Message: "required"}
	}
	if in.Body == "" {
		return nil, &domain.ValidationError{Field: "message", Message: "required"}
	}

	mode := in.Mode
	if mode == "" {
		mode = s.settings.DefaultMode
	}
	if mode != domain.ModeDraft && mode != domain.ModeSend {
		return nil, &domain.ValidationError{Field: "mode", Message: fmt.Sprintf("unknown mode %q", mode)}
	}

	if in.ExternalID != "" {
		existing, err := s.storage.DraftsByExternalKey(ctx, "external_id", in.ExternalID)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			d := existing[0]
			log.WithFields(log.Fields{
				"external_id": in.ExternalID,
				"draft_id":    d.ID,
			}).Info("Email already created for external id, skipping")
			return &domain.CreateEmailResult{
				Mode:         mode,
				DraftID:      d.ID,
				GmailDraftID: d.GmailDraftID,
				MessageID:    d.GmailMessageID,
				ThreadID:     d.GmailThreadID,
				Existing:     true,
			}, nil
		}
	}

	sender, senderName := s.senderFor(in.SenderEmail, in.SenderName)
	record := &domain.Draft{
		Subject:        in.Subject,
		Body:           in.Body,
		RecipientEmail: in.RecipientEmail,
		RecipientName:  in.RecipientName,
		SenderEmail:    sender,
		SenderName:     senderName,
		CompanyName:    in.CompanyName,
		ExternalID:     in.ExternalID,
		Status:         domain.StatusPending,
	}

	if mode == domain.ModeSend {
		draftID, err := s.storage.CreateDraft(ctx, record)
		if err != nil {
			return nil, err
		}
		outcome, err := s.SendDraft(ctx, draftID, false, "")
		if err != nil {
			return nil, err
		}
		return &domain.CreateEmailResult{
			Mode:      domain.ModeSend,
			DraftID:   draftID,
			MessageID: outcome.MessageID,
			ThreadID:  outcome.ThreadID,
		}, nil
	}

	mailer := s.mailers.MailerFor(sender)
	html, err := s.renderer.Render(in.Body)
	if err != nil {
		return nil, err
	}
	if signature := mailer.UserSignature(ctx); signature != "" {
		html += "<br><br>" + signature
	}

	handle, err := mailer.CreateDraft(ctx, domain.OutgoingEmail{
		To:       in.RecipientEmail,
		ToName:   in.RecipientName,
		FromName: senderName,
		Subject:  in.Subject,
		HTMLBody: html,
	})
	if err != nil {
		return nil, err
	}

	record.GmailDraftID = handle.DraftID
	draftID, err := s.storage.CreateDraft(ctx, record)
	if err != nil {
		return nil, err
	}

	return &domain.CreateEmailResult{
		Mode:         domain.ModeDraft,
		DraftID:      draftID,
		GmailDraftID: handle.DraftID,
		MessageID:    handle.MessageID,
		ThreadID:     handle.ThreadID,
	}, nil
}

func (s *EmailDraftService) GetDraft(ctx context.Context, id string) (*domain.Draft, error) {
	return s.storage.GetDraft(ctx, id)
}

func (s *EmailDraftService) DraftsByStatus(ctx context.Context, status domain.Status, limit int) ([]domain.Draft, error) {
	return s.storage.DraftsByStatus(ctx, status, limit)
}

// DraftThread lists the mailbox conversation of a sent draft.
func (s *EmailDraftService) DraftThread(ctx context.Context, draftID string) (*domain.Thread, error) {
	draft, err := s.storage.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.GmailThreadID == "" {
		return nil, &domain.GmailError{
			Kind: domain.ThreadNotFound,
			Err:  fmt.Errorf("draft %s has not been sent to a thread", draftID),
		}
	}
	sender, _ := s.senderFor(draft.SenderEmail, draft.SenderName)
	return s.mailers.MailerFor(sender).GetThread(ctx, draft.GmailThreadID)
}

// registerPixel is best effort: the send already happened, a missing
// pixel document only costs open tracking for this one email.
func (s *EmailDraftService) registerPixel(ctx context.Context, pixelID, recipient, subject string) {
	if pixelID == "" || s.opens == nil {
		return
	}
	if err := s.opens.RegisterPixel(ctx, pixelID, recipient, subject); err != nil {
		log.WithError(err).WithField("pixel_id", pixelID).Warn("Could not register tracking pixel")
	}
}

// scheduleFollowups fires the scheduler call off-request. Only the
// first email of a sequence triggers it.
func (s *EmailDraftService) scheduleFollowups(draft *domain.Draft, draftID string) {
	if s.scheduler == nil || !s.settings.AutoFollowupEnabled || draft.FollowupNumber != 0 {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), schedulingTimeout)
		defer cancel()
		if err := s.scheduler.ScheduleInitialFollowups(ctx, draftID); err != nil {
			log.WithError(err).WithField("draft_id", draftID).Error("Follow-up scheduling failed")
		}
	}()
}

type notifyFunc func(ctx context.Context, message *domain.EmailSentMessage) error

func (s *EmailDraftService) notifierDraftSent(ctx context.Context, m *domain.EmailSentMessage) error {
	return s.notifier.NotifyDraftSent(ctx, m)
}

func (s *EmailDraftService) notifierFollowupSent(ctx context.Context, m *domain.EmailSentMessage) error {
	return s.notifier.NotifyFollowupSent(ctx, m)
}

func (s *EmailDraftService) notify(ctx context.Context, fn notifyFunc, message *domain.EmailSentMessage) {
	if s.notifier == nil {
		return
	}
	if err := fn(ctx, message); err != nil {
		log.WithError(err).Warn("Could not publish lifecycle event")
	}
}
