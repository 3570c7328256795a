/*
   Copyright 2026 The SvcLib Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package apperr defines the canonical application error value shared by
// svclib services.
//
// An Error carries:
//   - Kind: which failure category it belongs to (business, security, system);
//   - HTTPStatus: the status a transport boundary should answer with;
//   - DomainStatus: the outcome classification (never status.Success);
//   - Payload: structured error details (stable code + diagnostics);
//   - Message: the human-readable explanation;
//   - Cause: the wrapped underlying error, exposed via Unwrap.
//
// All invariants are checked exactly once, inside New. A violated invariant
// fails construction with an error wrapping ErrInvalidArgument; no partially
// constructed value ever escapes. Once built, an Error is immutable — the
// single exception is the payload's native error text, which is written at
// most once (see payload.Payload.SetNativeErrorText).
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"svclib.dev/apperr/payload"
	"svclib.dev/apperr/status"
)

// ErrInvalidArgument is the single failure this package itself produces.
// Every constructor error wraps it, so callers can test with errors.Is.
var ErrInvalidArgument = errors.New("apperr: invalid argument")

// unknownRootCause is written into the payload's native error text when a
// cause chain is present but carries no usable message anywhere.
const unknownRootCause = "unknown root cause"

// maxErrorStatus is the upper bound of the server-error status class.
const maxErrorStatus = 599

// IsErrorStatus reports whether s denotes a client or server error,
// i.e. lies in [400, 599].
func IsErrorStatus(s int) bool {
	return s >= http.StatusBadRequest && s <= maxErrorStatus
}

// Error is the validated application error value.
//
// Fields are unexported on purpose: the invariants below hold for every
// reachable instance precisely because the only way to obtain one is through
// New (or the kind-specific constructors), and nothing can be reassigned
// afterwards.
type Error struct {
	kind         Kind
	httpStatus   int
	domainStatus status.Status
	payload      *payload.Payload
	message      string
	cause        error
}

// New constructs a validated Error.
//
// Invariants, checked in order:
//   - k must be one of the declared kinds;
//   - httpStatus must satisfy IsErrorStatus;
//   - domainStatus must be a known status other than status.Success;
//   - message must be non-blank after trimming.
//
// Any violation returns a nil Error and an error wrapping ErrInvalidArgument.
//
// Side effect: unless disabled via WithoutNativeErrorBackfill, a present
// cause chain is walked to its deepest non-empty message and that text is
// written into the payload's native error text. The write is first-write-wins;
// a payload that already carries native error text is left untouched. When the
// chain yields no text at all, the fixed sentinel "unknown root cause" is
// written instead.
func New(k Kind, httpStatus int, domainStatus status.Status, p *payload.Payload, message string, opts ...Option) (*Error, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := k.Validate(); err != nil {
		return nil, err
	}
	if !IsErrorStatus(httpStatus) {
		return nil, fmt.Errorf("%w: http status %d is not a client or server error", ErrInvalidArgument, httpStatus)
	}
	if err := status.Validate(domainStatus); err != nil {
		return nil, fmt.Errorf("%w: domain status %q is not a known status", ErrInvalidArgument, domainStatus)
	}
	if domainStatus == status.Success {
		return nil, fmt.Errorf("%w: domain status %q cannot describe an error", ErrInvalidArgument, status.Success)
	}
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: blank message", ErrInvalidArgument)
	}

	e := &Error{
		kind:         k,
		httpStatus:   httpStatus,
		domainStatus: domainStatus,
		payload:      p,
		message:      message,
		cause:        o.cause,
	}
	if !o.noBackfill && e.cause != nil && e.payload != nil {
		e.payload.SetNativeErrorText(rootCauseText(e.cause))
	}
	return e, nil
}

// NewBusiness constructs a KindBusiness error. See New for the contract.
func NewBusiness(httpStatus int, domainStatus status.Status, p *payload.Payload, message string, opts ...Option) (*Error, error) {
	return New(KindBusiness, httpStatus, domainStatus, p, message, opts...)
}

// NewSecurity constructs a KindSecurity error. See New for the contract.
func NewSecurity(httpStatus int, domainStatus status.Status, p *payload.Payload, message string, opts ...Option) (*Error, error) {
	return New(KindSecurity, httpStatus, domainStatus, p, message, opts...)
}

// NewSystem constructs a KindSystem error. See New for the contract.
func NewSystem(httpStatus int, domainStatus status.Status, p *payload.Payload, message string, opts ...Option) (*Error, error) {
	return New(KindSystem, httpStatus, domainStatus, p, message, opts...)
}

// MustNew is the panic-on-error variant of New. It is useful for declaring
// well-known errors in var blocks, where the arguments are literals and a
// violation is a programmer error.
func MustNew(k Kind, httpStatus int, domainStatus status.Status, p *payload.Payload, message string, opts ...Option) *Error {
	e, err := New(k, httpStatus, domainStatus, p, message, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind> [<domainStatus>] (<httpStatus>): <message>
//
// with the payload's native error text appended when present. This keeps log
// lines both human- and machine-scannable; structured consumers should read
// the fields or go through the adapter package instead of parsing this.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if native := e.nativeErrorText(); native != "" {
		return fmt.Sprintf("%s [%s] (%d): %s: %s", e.kind, e.domainStatus, e.httpStatus, e.message, native)
	}
	return fmt.Sprintf("%s [%s] (%d): %s", e.kind, e.domainStatus, e.httpStatus, e.message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.cause }

// Cause returns the underlying cause. It is the explicit-contract twin of
// Unwrap (see apis.CausedError).
func (e *Error) Cause() error { return e.cause }

// Kind returns the failure category of the error.
func (e *Error) Kind() Kind { return e.kind }

// HTTPStatus returns the transport status the boundary should answer with.
func (e *Error) HTTPStatus() int { return e.httpStatus }

// DomainStatus returns the outcome classification. Never status.Success.
func (e *Error) DomainStatus() status.Status { return e.domainStatus }

// Payload returns the structured error details. May be nil.
func (e *Error) Payload() *payload.Payload { return e.payload }

// Message returns the human-readable explanation. Never blank.
func (e *Error) Message() string { return e.message }

// ErrorCode returns the payload's stable error code, or the empty string when
// no payload is attached (see apis.CodedError).
func (e *Error) ErrorCode() string {
	if e.payload == nil {
		return ""
	}
	return e.payload.Code.Code.String()
}

func (e *Error) nativeErrorText() string {
	if e.payload == nil {
		return ""
	}
	return e.payload.NativeErrorText()
}

// rootCauseText walks the unwrap chain of cause and returns the deepest
// non-empty message, or unknownRootCause when the whole chain is silent.
func rootCauseText(cause error) string {
	text := ""
	for c := cause; c != nil; c = errors.Unwrap(c) {
		if s := strings.TrimSpace(c.Error()); s != "" {
			text = s
		}
	}
	if text == "" {
		return unknownRootCause
	}
	return text
}
