package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
	"github.com/wardrockay/mail-draft-creator/mocks"
)

func doRequest(t *testing.T, srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	srv := NewHTTPServer(mocks.NewDraftService(t))

	rec := doRequest(t, srv, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestSendDraft_Success(t *testing.T) {
	svc := mocks.NewDraftService(t)
	svc.EXPECT().SendDraft(mock.Anything, "d-1", false, "").Return(&domain.SendOutcome{
		DraftID:   "d-1",
		MessageID: "msg-1",
		ThreadID:  "thread-1",
		Recipient: "prospect@example.com",
	}, nil)
	srv := NewHTTPServer(svc)

	rec := doRequest(t, srv, http.MethodPost, "/send-draft", `{"draft_id":"d-1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message_id":"msg-1"`)
}

func TestSendDraft_TestModeRequiresEmail(t *testing.T) {
	srv := NewHTTPServer(mocks.NewDraftService(t))

	rec := doRequest(t, srv, http.MethodPost, "/send-draft", `{"draft_id":"d-1","test_mode":true}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := errorBody(t, rec)
	assert.True(t, body.Error)
	assert.Equal(t, "ERR_1001", body.Code)
}

func TestSendDraft_AlreadySent(t *testing.T) {
	svc := mocks.NewDraftService(t)
	svc.EXPECT().SendDraft(mock.Anything, "d-1", false, "").Return(nil, &domain.AlreadySentError{Resource: "draft", ID: "d-1"})
	srv := NewHTTPServer(svc)

	rec := doRequest(t, srv, http.MethodPost, "/send-draft", `{"draft_id":"d-1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ERR_1003", errorBody(t, rec).Code)
}

func TestSendDraft_DraftNotFound(t *testing.T) {
	svc := mocks.NewDraftService(t)
	svc.EXPECT().SendDraft(mock.Anything, "missing", false, "").Return(nil, &domain.NotFoundError{Resource: "draft", ID: "missing"})
	srv := NewHTTPServer(svc)

	rec := doRequest(t, srv, http.MethodPost, "/send-draft", `{"draft_id":"missing"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ERR_3003", errorBody(t, rec).Code)
}

func TestSendDraft_GmailFailureIsBadGateway(t *testing.T) {
	svc := mocks.NewDraftService(t)
	svc.EXPECT().SendDraft(mock.Anything, "d-1", false, "").Return(nil, &domain.GmailError{
		Kind:      domain.SendRejected,
		Recipient: "prospect@example.com",
		Err:       errors.New("quota exceeded for user secret@company.com"),
	})
	srv := NewHTTPServer(svc)

	rec := doRequest(t, srv, http.MethodPost, "/send-draft", `{"draft_id":"d-1"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := errorBody(t, rec)
	assert.Equal(t, "ERR_2001", body.Code)
	// Upstream detail must not leak to callers.
	assert.NotContains(t, body.Message, "secret@company.com")
}

func TestSendDraft_CredentialFailure(t *testing.T) {
	svc := mocks.NewDraftService(t)
	svc.EXPECT().SendDraft(mock.Anything, "d-1", false, "").Return(nil, &domain.CredentialError{
		Kind: domain.ExchangeFailed,
		User: "user@company.com",
		Err:  errors.New("invalid_grant"),
	})
	srv := NewHTTPServer(svc)

	rec := doRequest(t, srv, http.MethodPost, "/send-draft", `{"draft_id":"d-1"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "ERR_2000", errorBody(t, rec).Code)
}

func TestSendDraft_StorageFailure(t *testing.T) {
	svc := mocks.NewDraftService(t)
	svc.EXPECT().SendDraft(mock.Anything, "d-1", false, "").Return(nil, &domain.StorageError{
		Op:         "get",
		Collection: "email_drafts",
		Err:        errors.New("deadline exceeded"),
	})
	srv := NewHTTPServer(svc)

	rec := doRequest(t, srv, http.MethodPost, "/send-draft", `{"draft_id":"d-1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "ERR_3001", errorBody(t, rec).Code)
}

func TestCreateEmail_DraftMode(t *testing.T) {
	svc := mocks.NewDraftService(t)
	svc.EXPECT().CreateEmail(mock.Anything, mock.MatchedBy(func(in domain.CreateEmailInput) bool {
		return in.RecipientEmail == "prospect@example.com" &&
			in.Subject == "Quick question" &&
			in.ExternalID == "crm-42"
	})).Return(&domain.CreateEmailResult{
		Mode:         domain.ModeDraft,
		DraftID:      "d-1",
		GmailDraftID: "gmail-d-1",
	}, nil)
	srv := NewHTTPServer(svc)

	rec := doRequest(t, srv, http.MethodPost, "/", `{
		"to": "prospect@example.com",
		"subject": "Quick question",
		"message": "Hi **there**",
		"x_external_id": "crm-42"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"gmail_draft_id":"gmail-d-1"`)
}

func TestCreateEmail_ExistingReturnsOK(t *testing.T) {
	svc := mocks.NewDraftService(t)
	svc.EXPECT().CreateEmail(mock.Anything, mock.Anything).Return(&domain.CreateEmailResult{
		Mode:     domain.ModeDraft,
		DraftID:  "d-1",
		Existing: true,
	}, nil)
	srv := NewHTTPServer(svc)

	rec := doRequest(t, srv, http.MethodPost, "/", `{
		"to": "prospect@example.com",
		"subject": "Quick question",
		"message": "Hi"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"existing":true`)
}

func TestCreateEmail_SubjectNewlinesCleaned(t *testing.T) {
	svc := mocks.NewDraftService(t)
	svc.EXPECT().CreateEmail(mock.Anything, mock.MatchedBy(func(in domain.CreateEmailInput) bool {
		return in.Subject == "Quick question"
	})).Return(&domain.CreateEmailResult{Mode: domain.ModeDraft, DraftID: "d-1"}, nil)
	srv := NewHTTPServer(svc)

	rec := doRequest(t, srv, http.MethodPost, "/", `{
		"to": "prospect@example.com",
		"subject": "Quick\nquestion\n",
		"message": "Hi"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateEmail_InvalidRecipient(t *testing.T) {
	srv := NewHTTPServer(mocks.NewDraftService(t))

	rec := doRequest(t, srv, http.MethodPost, "/", `{
		"to": "not-an-email",
		"subject": "x",
		"message": "y"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ERR_1001", errorBody(t, rec).Code)
}

func TestGetDraft(t *testing.T) {
	svc := mocks.NewDraftService(t)
	svc.EXPECT().GetDraft(mock.Anything, "d-1").Return(&domain.Draft{
		ID:             "d-1",
		Subject:        "Quick question",
		RecipientEmail: "prospect@example.com",
		Status:         domain.StatusPending,
	}, nil)
	srv := NewHTTPServer(svc)

	rec := doRequest(t, srv, http.MethodGet, "/draft/d-1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"d-1"`)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestListDrafts_DefaultsToPending(t *testing.T) {
	svc := mocks.NewDraftService(t)
	svc.EXPECT().DraftsByStatus(mock.Anything, domain.StatusPending, 50).Return([]domain.Draft{
		{ID: "d-1", Status: domain.StatusPending},
	}, nil)
	srv := NewHTTPServer(svc)

	rec := doRequest(t, srv, http.MethodGet, "/drafts", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)
}

func TestListDrafts_BadLimit(t *testing.T) {
	srv := NewHTTPServer(mocks.NewDraftService(t))

	rec := doRequest(t, srv, http.MethodGet, "/drafts?limit=zero", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDraftThread_NotSent(t *testing.T) {
	svc := mocks.NewDraftService(t)
	svc.EXPECT().DraftThread(mock.Anything, "d-1").Return(nil, &domain.GmailError{
		Kind: domain.ThreadNotFound,
		Err:  errors.New("no thread"),
	})
	srv := NewHTTPServer(svc)

	rec := doRequest(t, srv, http.MethodGet, "/draft/d-1/thread", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ERR_2004", errorBody(t, rec).Code)
}

func TestResendToAnother(t *testing.T) {
	svc := mocks.NewDraftService(t)
	svc.EXPECT().ResendToAnother(mock.Anything, "d-1", "other@example.com", "Other").Return(&domain.SendOutcome{
		DraftID:   "d-1",
		MessageID: "msg-2",
		Recipient: "other@example.com",
	}, nil)
	srv := NewHTTPServer(svc)

	rec := doRequest(t, srv, http.MethodPost, "/resend-to-another", `{
		"draft_id": "d-1",
		"new_recipient_email": "other@example.com",
		"new_recipient_name": "Other"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message_id":"msg-2"`)
}

func TestResendToAnother_RequiresRecipientEmail(t *testing.T) {
	srv := NewHTTPServer(mocks.NewDraftService(t))

	rec := doRequest(t, srv, http.MethodPost, "/resend-to-another", `{"draft_id":"d-1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := errorBody(t, rec)
	assert.Equal(t, "ERR_1001", body.Code)
	assert.Contains(t, body.Message, "newemail")
}

func TestSendFollowup(t *testing.T) {
	svc := mocks.NewDraftService(t)
	svc.EXPECT().SendFollowup(mock.Anything, "f-1", false, "").Return(&domain.SendOutcome{
		FollowupID: "f-1",
		MessageID:  "msg-3",
		Recipient:  "prospect@example.com",
	}, nil)
	srv := NewHTTPServer(svc)

	rec := doRequest(t, srv, http.MethodPost, "/send-followup", `{"followup_id":"f-1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"followup_id":"f-1"`)
}

func TestUnknownRouteIsJSON(t *testing.T) {
	srv := NewHTTPServer(mocks.NewDraftService(t))

	rec := doRequest(t, srv, http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Error)
}
