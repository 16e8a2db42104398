// Package classerr defines the error kinds raised while decoding and
// plotting CLASS output files. Every kind aborts the invocation; none is
// retried or recovered from.
package classerr

import (
	"errors"
	"fmt"
)

// Kind tags an Error with the failure category it belongs to.
type Kind int

const (
	// Format means the file does not follow the CLASS header convention
	// (missing header line, marker/column mismatch, non-numeric data).
	Format Kind = iota
	// SpectrumType means no field was selected and none could be inferred
	// from the file name.
	SpectrumType
	// FileCount means the requested operation needs a different number of
	// input files than were given.
	FileCount
	// Input means the caller's selection (or an unimplemented mode) is
	// incompatible with the given files.
	Input
)

func (k Kind) String() string {
	switch k {
	case Format:
		return "format"
	case SpectrumType:
		return "spectrum type"
	case FileCount:
		return "number of files"
	case Input:
		return "input"
	}
	return "unknown"
}

// Error is a tagged failure. It carries the kind for callers that dispatch
// on it and a message already phrased for the user.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Msg)
}

// New builds an Error of the given kind.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is (or wraps) an Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == kind
}
