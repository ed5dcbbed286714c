package ledchar

import (
	"github.com/pkg/errors"
)

// Kind classifies why a conversion failed.
type Kind int

const (
	// KindFileAccess means the input path is missing, a directory or unreadable.
	KindFileAccess Kind = iota + 1
	// KindDecode means the file exists but is not an image we can read.
	KindDecode
	// KindValidation means the image decoded but is not 5x8.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindFileAccess:
		return "file access"
	case KindDecode:
		return "decode"
	case KindValidation:
		return "validation"
	}
	return "unknown"
}

// Error is returned by every failing step of a conversion. The message is the
// wrapped error's message so callers can print it as is.
type Error struct {
	Kind Kind
	Path string // Empty when the image did not come from a file
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// Cause lets errors.Cause see through the tag.
func (e *Error) Cause() error {
	return e.Err
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err, or anything it wraps, is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == k
}
