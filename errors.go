package angzarr

import "fmt"

// ErrorKind classifies a failure raised or surfaced by the core, per
// the classification matrix below.
type ErrorKind int

const (
	// KindInvalidArgument: unknown command type, malformed payload,
	// missing required builder field.
	KindInvalidArgument ErrorKind = iota
	// KindPreconditionFailed: sequence mismatch between a command and the
	// aggregate's current head.
	KindPreconditionFailed
	// KindCommandRejected: a handler explicitly rejected a command.
	KindCommandRejected
	// KindInvalidTimestamp: a query/command builder received an
	// unparsable RFC-3339 value. Raised at the boundary; never seen
	// inside dispatch.
	KindInvalidTimestamp
	// KindConnection: a transport-layer failure. Out of this package's
	// scope to raise, but predicates must still classify it correctly
	// when a transport wraps one in a *CommandError.
	KindConnection
	// KindNotFound: an upstream transport reports the target doesn't
	// exist.
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "INVALID_ARGUMENT"
	case KindPreconditionFailed:
		return "FAILED_PRECONDITION"
	case KindCommandRejected:
		return "COMMAND_REJECTED"
	case KindInvalidTimestamp:
		return "INVALID_TIMESTAMP"
	case KindConnection:
		return "CONNECTION"
	case KindNotFound:
		return "NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// CommandError is returned when a command is rejected or otherwise fails
// business validation. Kept as the name every example handler in this
// module raises.
type CommandError struct {
	Kind    ErrorKind
	Message string
}

func (e *CommandError) Error() string { return e.Message }

// Kind-specific constructors, one per ErrorKind.

func NewInvalidArgument(message string) *CommandError {
	return &CommandError{Kind: KindInvalidArgument, Message: message}
}

func NewFailedPrecondition(message string) *CommandError {
	return &CommandError{Kind: KindPreconditionFailed, Message: message}
}

func NewFailedPreconditionf(format string, args ...interface{}) *CommandError {
	return &CommandError{Kind: KindPreconditionFailed, Message: fmt.Sprintf(format, args...)}
}

func NewCommandRejected(message string) *CommandError {
	return &CommandError{Kind: KindCommandRejected, Message: message}
}

func NewInvalidTimestamp(message string) *CommandError {
	return &CommandError{Kind: KindInvalidTimestamp, Message: message}
}

func NewConnectionError(message string) *CommandError {
	return &CommandError{Kind: KindConnection, Message: message}
}

func NewNotFound(message string) *CommandError {
	return &CommandError{Kind: KindNotFound, Message: message}
}

// Predicates — classification must agree with the matrix above. All
// return false for errors that aren't *CommandError, and for kinds that
// don't match.

func IsInvalidArgument(err error) bool { return kindOf(err) == KindInvalidArgument }
func IsPreconditionFailed(err error) bool { return kindOf(err) == KindPreconditionFailed }
func IsCommandRejected(err error) bool { return kindOf(err) == KindCommandRejected }
func IsConnectionError(err error) bool { return kindOf(err) == KindConnection }
func IsNotFound(err error) bool { return kindOf(err) == KindNotFound }

func kindOf(err error) ErrorKind {
	if ce, ok := err.(*CommandError); ok {
		return ce.Kind
	}
	return -1
}
