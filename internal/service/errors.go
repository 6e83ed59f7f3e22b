package service

import "errors"

// Kind classifies a failure from an outbound call or from response parsing.
type Kind string

const (
	// KindInvalidRequest marks a missing or empty required parameter.
	KindInvalidRequest Kind = "invalid_request"
	// KindUpstreamError marks a transport failure or non-success status from
	// an external service.
	KindUpstreamError Kind = "upstream_error"
	// KindNoResults marks a successful search that returned nothing usable.
	KindNoResults Kind = "no_results"
	// KindIncompleteGeneration marks a generation truncated by the output
	// length cap.
	KindIncompleteGeneration Kind = "incomplete_generation"
	// KindRefused marks a generation the model explicitly declined.
	KindRefused Kind = "refused"
	// KindEmptyResponse marks a completion with neither content nor refusal.
	KindEmptyResponse Kind = "empty_response"
	// KindParseError marks structured content that did not parse as expected.
	KindParseError Kind = "parse_error"
)

// Error is a classified failure with a message suitable for direct display.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a classified error with a human-readable message.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError creates a classified error preserving the underlying cause.
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// AsError extracts the classified error from an error chain.
func AsError(err error) (*Error, bool) {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}
