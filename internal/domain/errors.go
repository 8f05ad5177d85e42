package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Quiz generation errors
	CodeMissingAPIKey   ErrorCode = "MISSING_API_KEY"
	CodeLLMServiceError ErrorCode = "LLM_SERVICE_ERROR"
	CodeLLMOutputError  ErrorCode = "LLM_OUTPUT_ERROR"
	CodeNoQuizzes       ErrorCode = "NO_QUIZZES"
)

// Messages returned to API callers. Clients match on them, keep them stable.
const (
	MsgTextRequired    = "text is required"
	MsgTextEmpty       = "text must not be empty"
	MsgMissingAPIKey   = "missing API key"
	MsgLLMServiceError = "OpenAI API error"
	MsgParseFailed     = "Failed to parse model output"
	MsgNoQuizzes       = "No quizzes generated"
	MsgUnexpected      = "Unexpected server error"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	// Details carries upstream diagnostics such as the provider error body.
	Details string `json:"details,omitempty"`
	// Raw is the unparsed model output, attached for output errors.
	Raw string `json:"raw,omitempty"`
	Err error  `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details,omitempty"`
		Raw     string `json:"raw,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Details: e.Details,
		Raw:     e.Raw,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewMissingAPIKeyError() *DomainError {
	return NewError(CodeMissingAPIKey, MsgMissingAPIKey, nil)
}

// NewLLMServiceError wraps a failed provider call. The provider's error text
// is exposed as Details.
func NewLLMServiceError(err error) *DomainError {
	e := NewError(CodeLLMServiceError, MsgLLMServiceError, err)
	if err != nil {
		e.Details = err.Error()
	}
	return e
}

func NewParseOutputError(raw string) *DomainError {
	e := NewError(CodeLLMOutputError, MsgParseFailed, nil)
	e.Raw = raw
	return e
}

func NewNoQuizzesError(raw string) *DomainError {
	e := NewError(CodeNoQuizzes, MsgNoQuizzes, nil)
	e.Raw = raw
	return e
}

func NewInternalError(err error) *DomainError {
	e := NewError(CodeInternal, MsgUnexpected, err)
	if err != nil {
		e.Details = err.Error()
	}
	return e
}
