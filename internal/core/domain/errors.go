package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrTaskAlreadyCompleted = errors.New("task already completed")
)

type ErrorKind string

const (
	KindNotFound          ErrorKind = "not_found"
	KindValidation        ErrorKind = "validation"
	KindAlreadyCompleted  ErrorKind = "already_completed"
	KindMalformedArgument ErrorKind = "malformed_argument"
	KindUnauthorized      ErrorKind = "unauthorized"
	KindInvalidOperation  ErrorKind = "invalid_operation"
	KindTimeout           ErrorKind = "timeout"
	KindRouteNotFound     ErrorKind = "route_not_found"
	KindMethodNotAllowed  ErrorKind = "method_not_allowed"
	KindInternal          ErrorKind = "internal"
)

const (
	RuleRequired  = "required"
	RuleMaxLength = "max_length"
	RuleBoolean   = "boolean"
	RuleDatetime  = "datetime"
	RuleInteger   = "integer"
)

// FieldError describes one rejected input field. Rule names the broken
// constraint and Limit carries its bound when there is one.
type FieldError struct {
	Field string
	Rule  string
	Limit int
}

func (f FieldError) String() string {
	if f.Limit > 0 {
		return fmt.Sprintf("%s: %s(%d)", f.Field, f.Rule, f.Limit)
	}
	return fmt.Sprintf("%s: %s", f.Field, f.Rule)
}

// Error is a failure tagged with its kind. It is translated to a transport
// status once, at the HTTP boundary.
type Error struct {
	Kind   ErrorKind
	TaskID int64
	Fields []FieldError
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.TaskID != 0 {
		msg = fmt.Sprintf("%s: task %d", msg, e.TaskID)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if len(e.Fields) > 0 {
		msg = fmt.Sprintf("%s: %v", msg, e.Fields)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(taskID int64) *Error {
	return &Error{Kind: KindNotFound, TaskID: taskID, Err: ErrTaskNotFound}
}

func AlreadyCompleted(taskID int64) *Error {
	return &Error{Kind: KindAlreadyCompleted, TaskID: taskID, Err: ErrTaskAlreadyCompleted}
}

func Validation(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Fields: fields}
}

func MalformedArgument(detail string, cause error) *Error {
	return &Error{Kind: KindMalformedArgument, Detail: detail, Err: cause}
}

func Unauthorized(detail string) *Error {
	return &Error{Kind: KindUnauthorized, Detail: detail}
}

func InvalidOperation(detail string) *Error {
	return &Error{Kind: KindInvalidOperation, Detail: detail}
}

func Timeout(detail string, cause error) *Error {
	return &Error{Kind: KindTimeout, Detail: detail, Err: cause}
}

func RouteNotFound(route string) *Error {
	return &Error{Kind: KindRouteNotFound, Detail: route}
}

func MethodNotAllowed(route string) *Error {
	return &Error{Kind: KindMethodNotAllowed, Detail: route}
}

// KindOf classifies any error. Deadline expiry is a timeout wherever it
// happened; everything unrecognised is internal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	if errors.Is(err, ErrTaskNotFound) {
		return KindNotFound
	}
	if errors.Is(err, ErrTaskAlreadyCompleted) {
		return KindAlreadyCompleted
	}
	return KindInternal
}
