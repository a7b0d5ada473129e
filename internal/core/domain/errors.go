package domain

import "fmt"

// ErrorCode is the stable machine-readable code surfaced in error responses.
type ErrorCode string

const (
	CodeInternal   ErrorCode = "ERR_1000"
	CodeValidation ErrorCode = "ERR_1001"
	CodeNotFound   ErrorCode = "ERR_1002"
	CodeConflict   ErrorCode = "ERR_1003"

	CodeGmailAuth           ErrorCode = "ERR_2000"
	CodeGmailSend           ErrorCode = "ERR_2001"
	CodeGmailThreadNotFound ErrorCode = "ERR_2004"

	CodeFirestoreRead    ErrorCode = "ERR_3001"
	CodeFirestoreWrite   ErrorCode = "ERR_3002"
	CodeDraftNotFound    ErrorCode = "ERR_3003"
	CodeFollowupNotFound ErrorCode = "ERR_3004"

	CodeSchedulerUnavailable ErrorCode = "ERR_4002"
)

// ValidationError reports a malformed or missing request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Code() ErrorCode { return CodeValidation }

// AlreadySentError rejects a second send of a draft that already went out.
type AlreadySentError struct {
	Resource string
	ID       string
}

func (e *AlreadySentError) Error() string {
	return fmt.Sprintf("%s %s has already been sent", e.Resource, e.ID)
}

func (e *AlreadySentError) Code() ErrorCode { return CodeConflict }

// NotFoundError reports an unknown draft or follow-up identifier.
type NotFoundError struct {
	Resource string // "draft" or "followup"
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Code() ErrorCode {
	if e.Resource == "followup" {
		return CodeFollowupNotFound
	}
	return CodeDraftNotFound
}

// CredentialErrorKind distinguishes the two steps of the delegated
// token acquisition.
type CredentialErrorKind string

const (
	SigningFailed  CredentialErrorKind = "signing_failed"
	ExchangeFailed CredentialErrorKind = "exchange_failed"
)

// CredentialError reports a failed delegated-credential acquisition.
// The orchestration layer treats it as an upstream auth failure.
type CredentialError struct {
	Kind CredentialErrorKind
	User string
	Err  error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("credential acquisition for %s: %s: %v", e.User, e.Kind, e.Err)
}

func (e *CredentialError) Unwrap() error   { return e.Err }
func (e *CredentialError) Code() ErrorCode { return CodeGmailAuth }

// GmailErrorKind classifies mailbox-provider failures.
type GmailErrorKind string

const (
	SendRejected   GmailErrorKind = "send_rejected"
	ThreadNotFound GmailErrorKind = "thread_not_found"
	TransportError GmailErrorKind = "transport_error"
)

// GmailError reports a mailbox-provider failure. SendRejected is terminal;
// TransportError may already have been retried by the mailbox client.
type GmailError struct {
	Kind      GmailErrorKind
	Recipient string
	Err       error
}

func (e *GmailError) Error() string {
	if e.Recipient != "" {
		return fmt.Sprintf("gmail %s (recipient %s): %v", e.Kind, e.Recipient, e.Err)
	}
	return fmt.Sprintf("gmail %s: %v", e.Kind, e.Err)
}

func (e *GmailError) Unwrap() error { return e.Err }

func (e *GmailError) Code() ErrorCode {
	if e.Kind == ThreadNotFound {
		return CodeGmailThreadNotFound
	}
	return CodeGmailSend
}

// StorageError reports a document-store read or write failure.
type StorageError struct {
	Op         string // "get", "create", "update", "query"
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s on %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Code() ErrorCode {
	switch e.Op {
	case "create", "update":
		return CodeFirestoreWrite
	default:
		return CodeFirestoreRead
	}
}
