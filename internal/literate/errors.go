// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package literate

import (
	"errors"
	"fmt"
)

// ErrorKind classifies extraction failures.
type ErrorKind int

const (
	// KindUnknown is never produced by a correct run.
	KindUnknown ErrorKind = iota
	// KindIO covers read, write and open failures.
	KindIO
	// KindWalk covers directory enumeration failures.
	KindWalk
	// KindPrefix reports a walked path that is not under the walk root.
	KindPrefix
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindWalk:
		return "walk"
	case KindPrefix:
		return "prefix"
	default:
		return "unknown"
	}
}

// Error wraps the cause of a failed extraction with its kind and, when
// known, the path involved.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String() + ": unknown error"
	}
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns err as an *Error of the given kind. A nil err stays nil. An
// err that is already an *Error keeps its kind and only gains path when it
// had none.
func Wrap(kind ErrorKind, path string, err error) error {
	if err == nil {
		return nil
	}
	var le *Error
	if errors.As(err, &le) {
		if le.Path == "" && path != "" {
			return &Error{Kind: le.Kind, Path: path, Err: le.Err}
		}
		return err
	}
	return &Error{Kind: kind, Path: path, Err: err}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var le *Error
	return errors.As(err, &le) && le.Kind == kind
}
