package domain

import "errors"

var (
	ErrNoSession       = errors.New("no stored session")
	ErrConnection      = errors.New("connection failed")
	ErrEmptyInterests  = errors.New("at least one interest is required")
	ErrTooLittleTime   = errors.New("need at least 10 free minutes")
	ErrRequestInFlight = errors.New("a suggestion request is already in flight")
	ErrBlankMessage    = errors.New("chat message is blank")
)

// Fixed user-facing texts for transport failures. The user is never
// left without visible feedback.
const (
	ConnectionFailedText   = "Connection failed - is your backend running?"
	SuggestionFallbackText = "Something went wrong - is your backend running?"
	ChatErrorText          = "Error connecting to chat"
)

// ServerError carries a structured error message returned by the
// backend, to be shown to the user verbatim. Transport and parse
// failures wrap ErrConnection instead.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}
