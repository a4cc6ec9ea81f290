package update

import (
	"errors"
	"fmt"
)

const (
	subjectVersion = "version string"
	subjectRepoURL = "repository URL"
)

var (
	// ErrInvalidVersion matches any *FormatError raised for a version string.
	ErrInvalidVersion = errors.New("invalid version string")
	// ErrInvalidRepoURL matches any *FormatError raised for a repository reference.
	ErrInvalidRepoURL = errors.New("invalid repository URL")
	// ErrNoVersionTag is wrapped by an *APIError when the release document has
	// neither a tag_name nor an upstream message.
	ErrNoVersionTag = errors.New("no version tag found")
)

// Kind classifies a failure of the update check.
type Kind string

const (
	KindUnknown   Kind = "unknown"
	KindFormat    Kind = "format"    // malformed version string or repository reference
	KindTransport Kind = "transport" // release metadata could not be fetched
	KindParse     Kind = "parse"     // fetched body is not a well-formed document
	KindAPI       Kind = "api"       // document lacks a release tag
)

// FormatError reports a malformed version string or repository reference.
// It is always detected locally and never worth retrying.
type FormatError struct {
	Subject string // "version string" or "repository URL"
	Input   string
	Err     error // optional cause, e.g. a numeric overflow
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Subject, e.Input, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Subject, e.Input)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is lets errors.Is match the ErrInvalidVersion and ErrInvalidRepoURL sentinels.
func (e *FormatError) Is(target error) bool {
	switch target {
	case ErrInvalidVersion:
		return e.Subject == subjectVersion
	case ErrInvalidRepoURL:
		return e.Subject == subjectRepoURL
	}
	return false
}

// TransportError reports that the release endpoint could not be fetched.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("http request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a fetched body that is not a well-formed document.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid release document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// APIError reports a well-formed document without a release tag. Message
// carries the upstream "message" field verbatim (rate limits, "Not Found")
// and is empty when the document had none.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return ErrNoVersionTag.Error()
	}
	return "github api error: " + e.Message
}

func (e *APIError) Unwrap() error {
	if e.Message == "" {
		return ErrNoVersionTag
	}
	return nil
}

// KindOf classifies err. It returns KindUnknown for nil or foreign errors.
func KindOf(err error) Kind {
	var (
		fe *FormatError
		te *TransportError
		pe *ParseError
		ae *APIError
	)
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &fe):
		return KindFormat
	case errors.As(err, &te):
		return KindTransport
	case errors.As(err, &pe):
		return KindParse
	case errors.As(err, &ae):
		return KindAPI
	}
	return KindUnknown
}
