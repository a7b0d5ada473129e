package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
	"github.com/wardrockay/mail-draft-creator/internal/core/port"
)

type DraftHTTPHandler struct {
	draftService port.DraftService
	validate     *validator.Validate
}

func NewDraftHTTPHandler(draftService port.DraftService, validate *validator.Validate) *DraftHTTPHandler {
	return &DraftHTTPHandler{
		draftService: draftService,
		validate:     validate,
	}
}

type CreateEmailRequest struct {
	To          string `json:"to" validate:"required,email"`
	ToName      string `json:"to_name"`
	Subject     string `json:"subject" validate:"required"`
	Message     string `json:"message" validate:"required"`
	SenderEmail string `json:"sender_email" validate:"omitempty,email"`
	SenderName  string `json:"sender_name"`
	CompanyName string `json:"company_name"`
	ExternalID  string `json:"x_external_id"`
	Mode        string `json:"mode" validate:"omitempty,oneof=draft send"`
}

type CreateEmailResponse struct {
	Success      bool   `json:"success"`
	Mode         string `json:"mode"`
	DraftID      string `json:"draft_id"`
	GmailDraftID string `json:"gmail_draft_id,omitempty"`
	MessageID    string `json:"message_id,omitempty"`
	ThreadID     string `json:"thread_id,omitempty"`
	Existing     bool   `json:"existing,omitempty"`
}

type SendDraftRequest struct {
	DraftID   string `json:"draft_id" validate:"required"`
	TestMode  bool   `json:"test_mode"`
	TestEmail string `json:"test_email" validate:"required_if=TestMode true,omitempty,email"`
}

type SendFollowupRequest struct {
	FollowupID string `json:"followup_id" validate:"required"`
	TestMode   bool   `json:"test_mode"`
	TestEmail  string `json:"test_email" validate:"required_if=TestMode true,omitempty,email"`
}

type ResendRequest struct {
	DraftID  string `json:"draft_id" validate:"required"`
	NewEmail string `json:"new_recipient_email" validate:"required,email"`
	NewName  string `json:"new_recipient_name"`
}

type SendResponse struct {
	Success    bool   `json:"success"`
	DraftID    string `json:"draft_id,omitempty"`
	FollowupID string `json:"followup_id,omitempty"`
	MessageID  string `json:"message_id"`
	ThreadID   string `json:"thread_id"`
	Recipient  string `json:"recipient"`
	TestMode   bool   `json:"test_mode,omitempty"`
}

// cleanSubject strips line breaks an upstream generator sometimes
// leaves in subjects; a raw newline would break the message headers.
func cleanSubject(subject string) string {
	subject = strings.ReplaceAll(subject, "\r", " ")
	subject = strings.ReplaceAll(subject, "\n", " ")
	return strings.TrimSpace(subject)
}

func (h *DraftHTTPHandler) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		log.WithError(err).Error("Failed to bind request")
		return &domain.ValidationError{Message: "invalid request payload"}
	}
	if err := h.validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
			return &domain.ValidationError{
				Field:   strings.ToLower(ve[0].Field()),
				Message: "failed validation on '" + ve[0].Tag() + "'",
			}
		}
		return &domain.ValidationError{Message: err.Error()}
	}
	return nil
}

// CreateEmail handles the inbound email request: create a Gmail draft
// or send right away, depending on the requested mode.
func (h *DraftHTTPHandler) CreateEmail() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req CreateEmailRequest
		if err := h.bind(c, &req); err != nil {
			return err
		}

		result, err := h.draftService.CreateEmail(c.Request().Context(), domain.CreateEmailInput{
			Mode:           domain.Mode(req.Mode),
			RecipientEmail: req.To,
			RecipientName:  req.ToName,
			Subject:        cleanSubject(req.Subject),
			Body:           req.Message,
			SenderEmail:    req.SenderEmail,
			SenderName:     req.SenderName,
			CompanyName:    req.CompanyName,
			ExternalID:     req.ExternalID,
		})
		if err != nil {
			return err
		}

		status := http.StatusCreated
		if result.Existing {
			status = http.StatusOK
		}
		return c.JSON(status, CreateEmailResponse{
			Success:      true,
			Mode:         string(result.Mode),
			DraftID:      result.DraftID,
			GmailDraftID: result.GmailDraftID,
			MessageID:    result.MessageID,
			ThreadID:     result.ThreadID,
			Existing:     result.Existing,
		})
	}
}

func (h *DraftHTTPHandler) SendDraft() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SendDraftRequest
		if err := h.bind(c, &req); err != nil {
			return err
		}

		outcome, err := h.draftService.SendDraft(c.Request().Context(), req.DraftID, req.TestMode, req.TestEmail)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, sendResponse(outcome))
	}
}

func (h *DraftHTTPHandler) SendFollowup() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SendFollowupRequest
		if err := h.bind(c, &req); err != nil {
			return err
		}

		outcome, err := h.draftService.SendFollowup(c.Request().Context(), req.FollowupID, req.TestMode, req.TestEmail)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, sendResponse(outcome))
	}
}

func (h *DraftHTTPHandler) ResendToAnother() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req ResendRequest
		if err := h.bind(c, &req); err != nil {
			return err
		}

		outcome, err := h.draftService.ResendToAnother(c.Request().Context(), req.DraftID, req.NewEmail, req.NewName)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, sendResponse(outcome))
	}
}

func sendResponse(outcome *domain.SendOutcome) SendResponse {
	return SendResponse{
		Success:    true,
		DraftID:    outcome.DraftID,
		FollowupID: outcome.FollowupID,
		MessageID:  outcome.MessageID,
		ThreadID:   outcome.ThreadID,
		Recipient:  outcome.Recipient,
		TestMode:   outcome.TestMode,
	}
}

type DraftResponse struct {
	ID             string `json:"id"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	RecipientEmail string `json:"recipient_email"`
	RecipientName  string `json:"recipient_name,omitempty"`
	SenderEmail    string `json:"sender_email,omitempty"`
	SenderName     string `json:"sender_name,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at,omitempty"`
	SentAt         string `json:"sent_at,omitempty"`
	GmailMessageID string `json:"gmail_message_id,omitempty"`
	GmailThreadID  string `json:"gmail_thread_id,omitempty"`
	GmailDraftID   string `json:"gmail_draft_id,omitempty"`
	PixelID        string `json:"pixel_id,omitempty"`
	FollowupNumber int    `json:"followup_number"`
}

func draftResponse(d *domain.Draft) DraftResponse {
	resp := DraftResponse{
		ID:             d.ID,
		Subject:        d.Subject,
		Body:           d.Body,
		RecipientEmail: d.RecipientEmail,
		RecipientName:  d.RecipientName,
		SenderEmail:    d.SenderEmail,
		SenderName:     d.SenderName,
		CompanyName:    d.CompanyName,
		Status:         string(d.Status),
		GmailMessageID: d.GmailMessageID,
		GmailThreadID:  d.GmailThreadID,
		GmailDraftID:   d.GmailDraftID,
		PixelID:        d.PixelID,
		FollowupNumber: d.FollowupNumber,
	}
	if !d.CreatedAt.IsZero() {
		resp.CreatedAt = d.CreatedAt.UTC().Format(time.RFC3339)
	}
	if d.SentAt != nil {
		resp.SentAt = d.SentAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func (h *DraftHTTPHandler) GetDraft() echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if id == "" {
			return &domain.ValidationError{Field: "id", Message: "required"}
		}

		draft, err := h.draftService.GetDraft(c.Request().Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, draftResponse(draft))
	}
}

func (h *DraftHTTPHandler) ListDrafts() echo.HandlerFunc {
	return func(c echo.Context) error {
		status := domain.Status(c.QueryParam("status"))
		if status == "" {
			status = domain.StatusPending
		}

		limit := 50
		if raw := c.QueryParam("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				return &domain.ValidationError{Field: "limit", Message: "must be a positive integer"}
			}
			limit = n
		}

		drafts, err := h.draftService.DraftsByStatus(c.Request().Context(), status, limit)
		if err != nil {
			return err
		}

		out := make([]DraftResponse, 0, len(drafts))
		for i := range drafts {
			out = append(out, draftResponse(&drafts[i]))
		}
		return c.JSON(http.StatusOK, map[string]any{
			"count":  len(out),
			"drafts": out,
		})
	}
}

func (h *DraftHTTPHandler) DraftThread() echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if id == "" {
			return &domain.ValidationError{Field: "id", Message: "required"}
		}

		thread, err := h.draftService.DraftThread(c.Request().Context(), id)
		if err != nil {
			return err
		}

		messages := make([]map[string]string, 0, len(thread.Messages))
		for _, m := range thread.Messages {
			messages = append(messages, map[string]string{
				"id":      m.ID,
				"snippet": m.Snippet,
			})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"thread_id": thread.ID,
			"messages":  messages,
		})
	}
}
