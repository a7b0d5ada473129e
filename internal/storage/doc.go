package storage

import (
	"time"

	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
)

// Documents written by earlier revisions of the pipeline use older field
// names (content/to_address/from_address/...). All fallback lookups live
// here, in one decode step at the store boundary; the rest of the code
// only ever sees the canonical names.

func strField(data map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := data[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func intField(data map[string]any, keys ...string) int {
	for _, k := range keys {
		switch v := data[k].(type) {
		case int64:
			return int(v)
		case int:
			return v
		case float64:
			return int(v)
		}
	}
	return 0
}

func timeField(data map[string]any, key string) time.Time {
	if t, ok := data[key].(time.Time); ok {
		return t
	}
	return time.Time{}
}

func timePtrField(data map[string]any, key string) *time.Time {
	if t, ok := data[key].(time.Time); ok {
		return &t
	}
	return nil
}

func draftFromDoc(id string, data map[string]any) *domain.Draft {
	status := domain.Status(strField(data, "status"))
	if status == "" {
		status = domain.StatusPending
	}
	return &domain.Draft{
		ID:             id,
		Subject:        strField(data, "subject"),
		Body:           strField(data, "body", "content"),
		RecipientEmail: strField(data, "recipient_email", "to_address", "to"),
		RecipientName:  strField(data, "recipient_name", "to_name", "contact_name"),
		SenderEmail:    strField(data, "sender_email", "from_address"),
		SenderName:     strField(data, "sender_name", "from_name"),
		CompanyName:    strField(data, "company_name", "partner_name"),
		ExternalID:     strField(data, "external_id", "x_external_id"),
		Status:         status,
		CreatedAt:      timeField(data, "created_at"),
		SentAt:         timePtrField(data, "sent_at"),
		GmailMessageID: strField(data, "gmail_message_id", "message_id"),
		GmailThreadID:  strField(data, "gmail_thread_id", "thread_id"),
		GmailDraftID:   strField(data, "gmail_draft_id"),
		PixelID:        strField(data, "pixel_id"),
		VersionGroupID: strField(data, "version_group_id"),
		FollowupNumber: intField(data, "followup_number"),
		Notes:          strField(data, "notes"),
	}
}

func followupFromDoc(id string, data map[string]any) *domain.Followup {
	status := domain.Status(strField(data, "status"))
	if status == "" {
		status = domain.StatusPending
	}
	return &domain.Followup{
		ID:              id,
		OriginalDraftID: strField(data, "original_draft_id"),
		Subject:         strField(data, "subject"),
		Body:            strField(data, "body", "content"),
		RecipientEmail:  strField(data, "recipient_email", "to_address", "to"),
		RecipientName:   strField(data, "recipient_name", "to_name", "contact_name"),
		SenderEmail:     strField(data, "sender_email", "from_address"),
		SenderName:      strField(data, "sender_name", "from_name"),
		FollowupNumber:  intField(data, "followup_number"),
		Status:          status,
		CreatedAt:       timeField(data, "created_at"),
		SentAt:          timePtrField(data, "sent_at"),
		GmailMessageID:  strField(data, "gmail_message_id", "message_id"),
		GmailThreadID:   strField(data, "gmail_thread_id", "thread_id"),
		PixelID:         strField(data, "pixel_id"),
	}
}

func draftToDoc(d *domain.Draft) map[string]any {
	doc := map[string]any{
		"subject":         d.Subject,
		"body":            d.Body,
		"recipient_email": d.RecipientEmail,
		"recipient_name":  d.RecipientName,
		"sender_email":    d.SenderEmail,
		"sender_name":     d.SenderName,
		"status":          string(d.Status),
		"created_at":      d.CreatedAt,
		"followup_number": d.FollowupNumber,
	}
	if d.CompanyName != "" {
		doc["company_name"] = d.CompanyName
	}
	if d.ExternalID != "" {
		doc["external_id"] = d.ExternalID
	}
	if d.GmailDraftID != "" {
		doc["gmail_draft_id"] = d.GmailDraftID
	}
	if d.PixelID != "" {
		doc["pixel_id"] = d.PixelID
	}
	if d.VersionGroupID != "" {
		doc["version_group_id"] = d.VersionGroupID
	}
	if d.Notes != "" {
		doc["notes"] = d.Notes
	}
	return doc
}

func followupToDoc(f *domain.Followup) map[string]any {
	doc := map[string]any{
		"original_draft_id": f.OriginalDraftID,
		"subject":           f.Subject,
		"body":              f.Body,
		"recipient_email":   f.RecipientEmail,
		"recipient_name":    f.RecipientName,
		"sender_email":      f.SenderEmail,
		"sender_name":       f.SenderName,
		"status":            string(f.Status),
		"created_at":        f.CreatedAt,
		"followup_number":   f.FollowupNumber,
	}
	if f.PixelID != "" {
		doc["pixel_id"] = f.PixelID
	}
	return doc
}
