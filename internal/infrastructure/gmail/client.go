// Package gmail sends mail through the Gmail API on behalf of delegated
// Workspace users, acquiring tokens through the signed-assertion exchange.
package gmail

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
	"github.com/wardrockay/mail-draft-creator/internal/core/port"
)

const (
	sendAttempts      = 3
	signatureAttempts = 2
	sendBackoff       = time.Second
	signatureBackoff  = 500 * time.Millisecond
)

// transport is the slice of the Gmail API the client uses. Narrowed to an
// interface so tests can substitute a stub for the real service.
type transport interface {
	send(ctx context.Context, raw, threadID string) (*gmail.Message, error)
	createDraft(ctx context.Context, raw, threadID string) (*gmail.Draft, error)
	getThread(ctx context.Context, id string) (*gmail.Thread, error)
	getMessage(ctx context.Context, id string) (*gmail.Message, error)
	getSendAs(ctx context.Context, email string) (*gmail.SendAs, error)
}

type apiTransport struct {
	svc *gmail.Service
}

func newAPITransport(ctx context.Context, token string) (transport, error) {
	svc, err := gmail.NewService(ctx, option.WithTokenSource(
		oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
	))
	if err != nil {
		return nil, err
	}
	return &apiTransport{svc: svc}, nil
}

func (t *apiTransport) send(ctx context.Context, raw, threadID string) (*gmail.Message, error) {
	return t.svc.Users.Messages.Send("me", &gmail.Message{Raw: raw, ThreadId: threadID}).Context(ctx).Do()
}

func (t *apiTransport) createDraft(ctx context.Context, raw, threadID string) (*gmail.Draft, error) {
	draft := &gmail.Draft{Message: &gmail.Message{Raw: raw, ThreadId: threadID}}
	return t.svc.Users.Drafts.Create("me", draft).Context(ctx).Do()
}

func (t *apiTransport) getThread(ctx context.Context, id string) (*gmail.Thread, error) {
	return t.svc.Users.Threads.Get("me", id).Format("full").Context(ctx).Do()
}

func (t *apiTransport) getMessage(ctx context.Context, id string) (*gmail.Message, error) {
	return t.svc.Users.Messages.Get("me", id).Format("metadata").Context(ctx).Do()
}

func (t *apiTransport) getSendAs(ctx context.Context, email string) (*gmail.SendAs, error) {
	return t.svc.Users.Settings.SendAs.Get("me", email).Context(ctx).Do()
}

type tokenSource interface {
	DelegatedToken(ctx context.Context, identity DelegatedIdentity) (string, error)
}

// Client sends mail as one delegated user. The transport handle moves
// Uninitialized -> Active on first acquisition, -> Invalidated on a
// transient failure, -> Active again on the next acquisition. Exhausting
// retries surfaces an error to the caller but never poisons future calls.
type Client struct {
	identity     DelegatedIdentity
	tokens       tokenSource
	newTransport func(ctx context.Context, token string) (transport, error)
	sleep        func(time.Duration)

	mu     sync.Mutex
	handle transport
}

func NewClient(identity DelegatedIdentity, tokens *TokenExchanger) *Client {
	return &Client{
		identity:     identity,
		tokens:       tokens,
		newTransport: newAPITransport,
		sleep:        time.Sleep,
	}
}

func (c *Client) acquire(ctx context.Context) (transport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handle != nil {
		return c.handle, nil
	}
	token, err := c.tokens.DelegatedToken(ctx, c.identity)
	if err != nil {
		return nil, err
	}
	t, err := c.newTransport(ctx, token)
	if err != nil {
		return nil, &domain.GmailError{Kind: domain.TransportError, Err: err}
	}
	c.handle = t
	log.WithField("delegated_user", c.identity.User).Debug("Gmail transport handle active")
	return t, nil
}

func (c *Client) invalidate() {
	c.mu.Lock()
	c.handle = nil
	c.mu.Unlock()
	log.WithField("delegated_user", c.identity.User).Debug("Gmail transport handle invalidated")
}

// SendEmail sends a composed message. Transient connection failures
// invalidate the handle and retry up to sendAttempts; API rejections are
// terminal and surface immediately.
func (c *Client) SendEmail(ctx context.Context, email domain.OutgoingEmail) (*domain.SendResult, error) {
	raw := Compose(Message{
		To:         email.To,
		ToName:     email.ToName,
		From:       c.identity.User,
		FromName:   email.FromName,
		Subject:    email.Subject,
		HTMLBody:   email.HTMLBody,
		References: email.References,
		InReplyTo:  email.InReplyTo,
	})

	var lastErr error
	for attempt := 1; attempt <= sendAttempts; attempt++ {
		t, err := c.acquire(ctx)
		if err != nil {
			return nil, err
		}

		msg, err := t.send(ctx, raw, email.ThreadID)
		if err == nil {
			log.WithFields(log.Fields{
				"message_id": msg.Id,
				"thread_id":  msg.ThreadId,
				"recipient":  email.To,
				"attempt":    attempt,
			}).Info("Email sent")
			return &domain.SendResult{MessageID: msg.Id, ThreadID: msg.ThreadId, LabelIDs: msg.LabelIds}, nil
		}

		if asAPIError(err) != nil {
			log.WithError(err).WithField("recipient", email.To).Error("Gmail rejected send")
			return nil, &domain.GmailError{Kind: domain.SendRejected, Recipient: email.To, Err: err}
		}
		if !isTransient(err) {
			return nil, &domain.GmailError{Kind: domain.TransportError, Recipient: email.To, Err: err}
		}

		lastErr = err
		log.WithError(err).WithFields(log.Fields{
			"recipient": email.To,
			"attempt":   attempt,
		}).Warn("Transient error sending email")
		if attempt < sendAttempts {
			c.invalidate()
			c.sleep(sendBackoff)
		}
	}

	return nil, &domain.GmailError{Kind: domain.TransportError, Recipient: email.To, Err: lastErr}
}

// CreateDraft stores a composed message as a Gmail draft.
func (c *Client) CreateDraft(ctx context.Context, email domain.OutgoingEmail) (*domain.DraftHandle, error) {
	raw := Compose(Message{
		To:       email.To,
		ToName:   email.ToName,
		From:     c.identity.User,
		FromName: email.FromName,
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
	})

	t, err := c.acquire(ctx)
	if err != nil {
		return nil, err
	}
	d, err := t.createDraft(ctx, raw, email.ThreadID)
	if err != nil {
		if asAPIError(err) != nil {
			return nil, &domain.GmailError{Kind: domain.SendRejected, Recipient: email.To, Err: err}
		}
		return nil, &domain.GmailError{Kind: domain.TransportError, Recipient: email.To, Err: err}
	}

	handle := &domain.DraftHandle{DraftID: d.Id}
	if d.Message != nil {
		handle.MessageID = d.Message.Id
		handle.ThreadID = d.Message.ThreadId
	}
	log.WithFields(log.Fields{"draft_id": d.Id, "recipient": email.To}).Info("Gmail draft created")
	return handle, nil
}

func (c *Client) GetThread(ctx context.Context, threadID string) (*domain.Thread, error) {
	t, err := c.acquire(ctx)
	if err != nil {
		return nil, err
	}
	th, err := t.getThread(ctx, threadID)
	if err != nil {
		if apiErr := asAPIError(err); apiErr != nil && apiErr.Code == http.StatusNotFound {
			return nil, &domain.GmailError{Kind: domain.ThreadNotFound, Err: err}
		}
		return nil, &domain.GmailError{Kind: domain.TransportError, Err: err}
	}

	out := &domain.Thread{ID: th.Id}
	for _, m := range th.Messages {
		out.Messages = append(out.Messages, domain.ThreadMessage{ID: m.Id, Snippet: m.Snippet})
	}
	return out, nil
}

// MessageHeaders fetches a message's headers, keyed by lowercased name.
func (c *Client) MessageHeaders(ctx context.Context, messageID string) (map[string]string, error) {
	t, err := c.acquire(ctx)
	if err != nil {
		return nil, err
	}
	msg, err := t.getMessage(ctx, messageID)
	if err != nil {
		return nil, &domain.GmailError{Kind: domain.TransportError, Err: err}
	}

	headers := make(map[string]string)
	if msg.Payload != nil {
		for _, h := range msg.Payload.Headers {
			headers[strings.ToLower(h.Name)] = h.Value
		}
	}
	return headers, nil
}

// UserSignature fetches the delegated user's HTML signature. Best effort:
// two attempts on transient failures, then "" — a missing signature must
// never block a send.
func (c *Client) UserSignature(ctx context.Context) string {
	for attempt := 1; attempt <= signatureAttempts; attempt++ {
		t, err := c.acquire(ctx)
		if err != nil {
			log.WithError(err).Warn("Could not acquire Gmail handle for signature")
			return ""
		}

		sendAs, err := t.getSendAs(ctx, c.identity.User)
		if err == nil {
			return injectImgAlt(sendAs.Signature)
		}
		if !isTransient(err) {
			log.WithError(err).Warn("Could not retrieve signature")
			return ""
		}

		log.WithError(err).WithField("attempt", attempt).Warn("Transient error retrieving signature")
		if attempt < signatureAttempts {
			c.invalidate()
			c.sleep(signatureBackoff)
		}
	}
	log.Warn("Failed to retrieve signature after retries, continuing without it")
	return ""
}

var (
	imgTagRe  = regexp.MustCompile(`(?i)<img[^>]*>`)
	altAttrRe = regexp.MustCompile(`(?i)\balt\s*=`)
)

// injectImgAlt adds alt="" to img tags that lack an alt attribute.
// Tags that already declare one are left untouched.
func injectImgAlt(signature string) string {
	return imgTagRe.ReplaceAllStringFunc(signature, func(tag string) string {
		if altAttrRe.MatchString(tag) {
			return tag
		}
		return `<img alt=""` + tag[len("<img"):]
	})
}

func asAPIError(err error) *googleapi.Error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// isTransient reports whether err is a connection-level failure worth a
// retry. API-level rejections never are.
func isTransient(err error) bool {
	if asAPIError(err) != nil {
		return false
	}
	if errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// ClientPool hands out one lazily-built Client per delegated sender.
// Acquisition of the underlying transport happens on first use, not here.
type ClientPool struct {
	serviceAccount string
	scopes         []string
	tokens         *TokenExchanger

	mu      sync.Mutex
	clients map[string]*Client
}

func NewClientPool(serviceAccount string, scopes []string, tokens *TokenExchanger) *ClientPool {
	return &ClientPool{
		serviceAccount: serviceAccount,
		scopes:         scopes,
		tokens:         tokens,
		clients:        make(map[string]*Client),
	}
}

func (p *ClientPool) MailerFor(senderEmail string) port.Mailer {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.clients[senderEmail]; ok {
		return c
	}
	c := NewClient(DelegatedIdentity{
		ServiceAccount: p.serviceAccount,
		User:           senderEmail,
		Scopes:         p.scopes,
	}, p.tokens)
	p.clients[senderEmail] = c
	return c
}
