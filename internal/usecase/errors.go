package usecase

import (
	"errors"
	"fmt"
)

// Messages returned to clients for missing input
const (
	MsgNoText      = "No text provided"
	MsgNoTweetText = "No tweet text provided"
)

// ErrorKind classifies a usecase failure
type ErrorKind int

const (
	// KindInvalidInput means the request was missing or malformed
	KindInvalidInput ErrorKind = iota + 1
	// KindClassification means the classifier failed
	KindClassification
	// KindPublish means forwarding a tweet to the broker failed
	KindPublish
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindClassification:
		return "classification"
	case KindPublish:
		return "publish"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the structured error returned by usecases
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports kind equality so callers can match against ErrInvalidInput and friends
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// Kind-only sentinels for errors.Is
var (
	ErrInvalidInput   = &Error{Kind: KindInvalidInput}
	ErrClassification = &Error{Kind: KindClassification}
	ErrPublish        = &Error{Kind: KindPublish}
)

// InvalidInput creates a KindInvalidInput error
func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// ClassificationFailed reports err as a classification failure
func ClassificationFailed(err error) *Error {
	return wrap(KindClassification, err)
}

// wrap turns err into a usecase error of kind, keeping its description as message
func wrap(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Message: err.Error(), Err: err}
}

// KindOf returns the kind of err, or 0 if err is not a usecase error
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return 0
}
