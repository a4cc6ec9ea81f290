package update

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("connection refused")
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"foreign", errors.New("x"), KindUnknown},
		{"format", &FormatError{Subject: subjectVersion, Input: "x"}, KindFormat},
		{"transport", &TransportError{URL: "u", Err: cause}, KindTransport},
		{"parse", &ParseError{Err: cause}, KindParse},
		{"api", &APIError{Message: "Not Found"}, KindAPI},
		{"wrapped", fmt.Errorf("check: %w", &APIError{}), KindAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Fatalf("KindOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatErrorSentinels(t *testing.T) {
	v := &FormatError{Subject: subjectVersion, Input: "dev"}
	u := &FormatError{Subject: subjectRepoURL, Input: "https://example.com"}

	if !errors.Is(v, ErrInvalidVersion) || errors.Is(v, ErrInvalidRepoURL) {
		t.Fatal("version FormatError should match only ErrInvalidVersion")
	}
	if !errors.Is(u, ErrInvalidRepoURL) || errors.Is(u, ErrInvalidVersion) {
		t.Fatal("repository FormatError should match only ErrInvalidRepoURL")
	}
	if got := v.Error(); got != `invalid version string "dev"` {
		t.Fatalf("Error() = %q", got)
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := &TransportError{URL: "https://api.github.com/x", Err: cause}
	if !errors.Is(err, cause) {
		t.Fatal("TransportError should unwrap to its cause")
	}
	if got := err.Error(); got != "http request failed: dial tcp: connection refused" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestAPIErrorText(t *testing.T) {
	if got := (&APIError{Message: "Not Found"}).Error(); got != "github api error: Not Found" {
		t.Fatalf("Error() = %q", got)
	}
	if errors.Is(&APIError{Message: "Not Found"}, ErrNoVersionTag) {
		t.Fatal("APIError with a message should not match ErrNoVersionTag")
	}
	if !errors.Is(&APIError{}, ErrNoVersionTag) {
		t.Fatal("APIError without a message should match ErrNoVersionTag")
	}
}
