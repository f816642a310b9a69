package usecase

import (
	"errors"
	"strings"
)

var (
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrInvalidStatus        = errors.New("invalid quote status")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrQuoteStorage         = errors.New("quote storage failure")
	ErrNotificationDisabled = errors.New("notification not configured")
)

// Validation codes carried by ValidationError.
const (
	CodeInvalidRequestBody = "invalid_request_body"
	CodeMissingRequired    = "missing_required_field"
	CodeInvalidServiceType = "invalid_service_type"
	CodeInvalidPhoneFormat = "invalid_phone_format"
)

// ValidationError rejects a submission before anything is persisted.
// Fields lists every offending field (dotted JSON path) when Code is
// CodeMissingRequired.
type ValidationError struct {
	Code    string
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return e.Code + ": " + strings.Join(e.Fields, ", ")
	}
	return e.Code
}

func NewInvalidBodyError() *ValidationError {
	return &ValidationError{Code: CodeInvalidRequestBody, Message: "요청 형식이 올바르지 않습니다."}
}
