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

package apis

// CodedError represents an error that carries a stable, machine-readable
// error code, e.g. "order_rejected" or "token_expired".
//
// Codes are the value clients key on; they must be stable and enumerable.
// Implementations are expected to return an already-normalized code (see the
// errcode package). An empty return value means "no code attached" and should
// be treated by boundaries as an internal error.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code, or "" when the
	// error carries none.
	ErrorCode() string
}

// HTTPStatusedError represents an error that knows which HTTP status a
// transport boundary should answer with.
//
// The returned status MUST denote a client or server error (4xx/5xx);
// apperr guarantees this by construction.
type HTTPStatusedError interface {
	error

	// HTTPStatus returns the HTTP response status for this error.
	HTTPStatus() int
}

// CausedError represents an error that exposes its underlying cause.
//
// errors.Unwrap covers the same ground, but keeping the contract explicit
// lets adapters and registries talk about causes without reaching for
// errors.As everywhere.
//
// Implementations SHOULD return the direct, immediate cause, or nil when
// there is none.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this one. May be nil.
	Cause() error
}

// ViewProvider is implemented by errors that can produce a transport-friendly,
// self-contained representation of themselves.
//
// The returned view MUST be safe to marshal to JSON and SHOULD contain only
// information that is safe to disclose to the client.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}
