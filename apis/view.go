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

// PayloadView is the serializable snapshot of an error payload.
type PayloadView struct {
	// Code is the stable, machine-readable error code.
	Code string `json:"code"`

	// Description explains the failure class in general terms.
	Description string `json:"description,omitempty"`

	// NativeErrorText is the low-level diagnostic for the root technical
	// cause. Expose with care: it may name internal components.
	NativeErrorText string `json:"native_error_text,omitempty"`
}

// ErrorView is a minimal, serializable representation of an application
// error.
//
// This is not the concrete error type used internally — it is the shape we
// are comfortable putting on the wire or in logs. Both the HTTP and gRPC
// adapters share it.
type ErrorView struct {
	// Kind is the failure category: "business", "security" or "system".
	Kind string `json:"kind"`

	// DomainStatus is the outcome classification, e.g. "failure".
	DomainStatus string `json:"domain_status"`

	// Message is the human-readable explanation.
	Message string `json:"message,omitempty"`

	// Payload carries the structured error details, when present.
	Payload *PayloadView `json:"payload,omitempty"`

	// Correlation is a client/server correlation token (request id,
	// idempotency key). Filled by the transport layer, not the error.
	Correlation string `json:"correlation,omitempty"`

	// TraceID is the distributed trace identifier (W3C traceparent).
	TraceID string `json:"trace_id,omitempty"`

	// SpanID is the span identifier within the trace.
	SpanID string `json:"span_id,omitempty"`

	// RetryAfterSeconds hints the client when a retry may succeed.
	// Zero means "no hint".
	RetryAfterSeconds int32 `json:"retry_after_seconds,omitempty"`
}
