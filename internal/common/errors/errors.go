// Package errors provides the value-level reply error taxonomy used by
// the intent pipeline. Adapters and aggregators return these instead of
// raising through layers; only genuinely unanticipated faults reach the
// dispatcher's recover boundary.
package errors

import (
	"errors"
	"fmt"
)

// Code represents standardized internal error codes.
type Code string

const (
	CodeInputMissing        Code = "INPUT_MISSING"
	CodeCityUnresolved      Code = "CITY_UNRESOLVED"
	CodeProviderUnavailable Code = "PROVIDER_UNAVAILABLE"
	CodeEmptyResult         Code = "EMPTY_RESULT"
	CodeIntentUnrecognized  Code = "INTENT_UNRECOGNIZED"
	CodeInternalFailure     Code = "INTERNAL_FAILURE"
)

// ReplyError is a structured, recoverable pipeline error. Reply holds the
// user-facing Indonesian text when the error itself is what gets rendered
// (the shipping flow renders these verbatim); Details is operator-facing.
type ReplyError struct {
	Code    Code   `json:"code"`
	Reply   string `json:"reply,omitempty"`
	Details string `json:"details,omitempty"`
	Err     error  `json:"-"`
}

func (e *ReplyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("ReplyError[%s]: %s", e.Code, e.Details)
	}
	return fmt.Sprintf("ReplyError[%s]: %s", e.Code, e.Reply)
}

func (e *ReplyError) Unwrap() error {
	return e.Err
}

// ==========================
// Constructors
// ==========================

// NewInputMissing signals a request that needs geolocation but carried none.
func NewInputMissing(intent string) *ReplyError {
	return &ReplyError{
		Code:    CodeInputMissing,
		Reply:   "Maaf, saya memerlukan lokasi Anda untuk menjawab itu. Pastikan GPS aktif dan coba lagi.",
		Details: fmt.Sprintf("intent %q requires location", intent),
	}
}

// NewCityUnresolved names the city the resolver did not recognize.
func NewCityUnresolved(city string) *ReplyError {
	return &ReplyError{
		Code:    CodeCityUnresolved,
		Reply:   fmt.Sprintf("Maaf, saya belum mengenali kota %q. Database kota saya masih terbatas.", city),
		Details: fmt.Sprintf("city %q not in alias table", city),
	}
}

// NewProviderUnavailable wraps a transport/non-2xx/credential failure.
// reply may carry the provider's own error description for verbatim
// rendering; it is empty for intents whose renderer owns the apology text.
func NewProviderUnavailable(provider, reply string, err error) *ReplyError {
	details := fmt.Sprintf("provider %s unavailable", provider)
	if err != nil {
		details = fmt.Sprintf("provider %s unavailable: %v", provider, err)
	}
	return &ReplyError{
		Code:    CodeProviderUnavailable,
		Reply:   reply,
		Details: details,
		Err:     err,
	}
}

// NewEmptyResult signals a provider call that succeeded but returned no
// usable data.
func NewEmptyResult(provider, reply string) *ReplyError {
	return &ReplyError{
		Code:    CodeEmptyResult,
		Reply:   reply,
		Details: fmt.Sprintf("provider %s returned no usable data", provider),
	}
}

// ==========================
// Utility functions
// ==========================

// CodeOf extracts the taxonomy code from any error chain.
func CodeOf(err error) Code {
	var re *ReplyError
	if errors.As(err, &re) {
		return re.Code
	}
	return CodeInternalFailure
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}

// ReplyText returns the user-facing text carried by err, or "" when the
// renderer owns the message.
func ReplyText(err error) string {
	var re *ReplyError
	if errors.As(err, &re) {
		return re.Reply
	}
	return ""
}
