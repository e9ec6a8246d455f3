package model

import "errors"

var (
	ErrNotFound      = errors.New("no such resource")
	ErrInvalidState  = errors.New("operation not permitted in current room status")
	ErrForbidden     = errors.New("not a member of the room")
	ErrConflict      = errors.New("conflict")
	ErrLimitExceeded = errors.New("limit exceeded")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInternal      = errors.New("internal error")
)

// ErrStalePool means a draft changed between reading it and creating the pool.
var ErrStalePool = errors.New("media pool is stale")

type ErrorCode = string

const (
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeInvalidState  ErrorCode = "INVALID_STATE"
	CodeForbidden     ErrorCode = "FORBIDDEN"
	CodeConflict      ErrorCode = "CONFLICT"
	CodeLimitExceeded ErrorCode = "LIMIT_EXCEEDED"
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeInternal      ErrorCode = "INTERNAL"
)

// CodeOf maps an error onto the code reported to clients.
// Store failures and unknown errors collapse into CodeInternal.
func CodeOf(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrInternal):
		return CodeInternal
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrLimitExceeded):
		return CodeLimitExceeded
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	}
	return CodeInternal
}

var domainErrors = []error{
	ErrNotFound,
	ErrInvalidState,
	ErrForbidden,
	ErrConflict,
	ErrLimitExceeded,
	ErrInvalidInput,
	ErrInternal,
}

// Internal passes domain errors through and joins anything else with ErrInternal.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return err
		}
	}
	return errors.Join(ErrInternal, err)
}
