// Package cyberr implements the closed error taxonomy shared by every
// component of the library. Every public operation that can fail returns
// an *Error (or nil); no component invents its own ad-hoc error type.
package cyberr

import "fmt"

// Kind is one member of the closed taxonomy. Order is significant: it is
// the stable numeric order callers may depend on for comparisons/logging.
type Kind int

const (
	NoError Kind = iota
	XMLError
	FormatError
	ActionFormatError
	MetadataFormatError
	NotFound
	BadParameter
	Assert
	NotImplemented
)

func (k Kind) String() string {
	switch k {
	case NoError:
		return "no-error"
	case XMLError:
		return "xml-error"
	case FormatError:
		return "format-error"
	case ActionFormatError:
		return "action-format-error"
	case MetadataFormatError:
		return "metadata-format-error"
	case NotFound:
		return "not-found"
	case BadParameter:
		return "bad-parameter"
	case Assert:
		return "assert"
	case NotImplemented:
		return "not-implemented"
	default:
		return "unknown-error"
	}
}

// Error is the single error type every component returns.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Kind, so that
// errors.Is(err, cyberr.New(cyberr.FormatError, "")) classifies errors
// without string matching.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func XML(format string, args ...any) *Error {
	return New(XMLError, format, args...)
}

func Format(format string, args ...any) *Error {
	return New(FormatError, format, args...)
}

func ActionFormat(format string, args ...any) *Error {
	return New(ActionFormatError, format, args...)
}

func MetadataFormat(format string, args ...any) *Error {
	return New(MetadataFormatError, format, args...)
}

func NotFoundf(format string, args ...any) *Error {
	return New(NotFound, format, args...)
}

func BadParameterf(format string, args ...any) *Error {
	return New(BadParameter, format, args...)
}

func Assertf(format string, args ...any) *Error {
	return New(Assert, format, args...)
}

func NotImplementedf(format string, args ...any) *Error {
	return New(NotImplemented, format, args...)
}

// KindOf extracts the Kind of err if it is (or wraps) a *Error, otherwise
// returns Assert — an untyped error escaping a component is itself a bug.
func KindOf(err error) Kind {
	if err == nil {
		return NoError
	}
	var e *Error
	if as(err, &e) {
		return e.Kind
	}
	return Assert
}

func as(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
