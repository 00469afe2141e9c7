package angzarr

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapCommandError converts a *CommandError to a gRPC status error.
// Non-CommandError values are wrapped as Internal, matching the
// teacher's grpc_errors.go.
func MapCommandError(err error) error {
	if cmdErr, ok := err.(*CommandError); ok {
		switch cmdErr.Kind {
		case KindInvalidArgument:
			return status.Error(codes.InvalidArgument, cmdErr.Message)
		case KindPreconditionFailed:
			return status.Error(codes.FailedPrecondition, cmdErr.Message)
		case KindCommandRejected:
			return status.Error(codes.FailedPrecondition, cmdErr.Message)
		case KindInvalidTimestamp:
			return status.Error(codes.InvalidArgument, cmdErr.Message)
		case KindConnection:
			return status.Error(codes.Unavailable, cmdErr.Message)
		case KindNotFound:
			return status.Error(codes.NotFound, cmdErr.Message)
		}
	}
	return status.Errorf(codes.Internal, "internal error: %v", err)
}
