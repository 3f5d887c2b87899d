package colstats

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError is a malformed data line.
type ParseError struct {
	Path string // empty when parsing a reader
	Line int    // 1-based, 0 when no line was read
	Text string
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	where := e.Path
	if e.Line > 0 {
		if where == "" {
			where = "line"
		}
		where = fmt.Sprintf("%s:%d", where, e.Line)
	}
	msg := e.Msg
	if e.Text != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Text)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	if where == "" {
		return msg
	}
	return where + ": " + msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError is a failure to open, read, create or write a file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("can't %s: %s", e.Op, e.Err)
	}
	return fmt.Sprintf("can't %s %s: %s", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func newIOError(op, path string, err error) error {
	return errors.WithStack(&IOError{Op: op, Path: path, Err: err})
}

// IsParseError reports whether err, or anything it wraps, is a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsIOError reports whether err, or anything it wraps, is an *IOError.
func IsIOError(err error) bool {
	var ioe *IOError
	return errors.As(err, &ioe)
}
