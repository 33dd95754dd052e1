package collector

import (
	"errors"
	"fmt"
)

// Kind classifies why a fetch failed
type Kind int

const (
	KindTransport Kind = iota + 1
	KindHTTPStatus
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTPStatus:
		return "http_status"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

var (
	ErrTransport  = errors.New("feed transport failure")
	ErrHTTPStatus = errors.New("feed returned non-200 status")
	ErrParse      = errors.New("feed body could not be parsed")

	ErrInvalidCount = errors.New("post count must be positive")
)

// FetchError is returned by every failed fetch. Match the kind with errors.Is
// against ErrTransport, ErrHTTPStatus or ErrParse.
type FetchError struct {
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("feed fetch: unexpected status %d", e.StatusCode)
	default:
		if e.Err == nil {
			return fmt.Sprintf("feed fetch: %s failure", e.Kind)
		}
		return fmt.Sprintf("feed fetch: %s failure: %v", e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrHTTPStatus:
		return e.Kind == KindHTTPStatus
	case ErrParse:
		return e.Kind == KindParse
	}
	return false
}

func transportError(err error) *FetchError {
	return &FetchError{Kind: KindTransport, Err: err}
}

func statusError(code int) *FetchError {
	return &FetchError{Kind: KindHTTPStatus, StatusCode: code}
}

func parseError(err error) *FetchError {
	return &FetchError{Kind: KindParse, Err: err}
}
