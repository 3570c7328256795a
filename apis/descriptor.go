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

// ErrorDescriptor is a flat, transport-friendly description of one error
// occurrence together with its resolved transport statuses.
//
// It intentionally uses plain strings and ints (not the internal Kind /
// Status value types) so that it can cross process boundaries: structured
// logs, message buses, audit trails.
type ErrorDescriptor struct {
	// Kind is the failure category: "business", "security" or "system".
	Kind string `json:"kind"`

	// Code is the stable error code from the payload. May be empty when the
	// error carried no payload.
	Code string `json:"code,omitempty"`

	// DomainStatus is the outcome classification, e.g. "failure".
	DomainStatus string `json:"domain_status"`

	// HTTPStatus is the HTTP status the boundary answered with.
	HTTPStatus int `json:"http_status"`

	// GRPCCode is the resolved gRPC status code as an integer.
	// Zero means "not resolved" (gRPC OK is never a valid projection of an
	// error).
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the human-readable explanation.
	Message string `json:"message,omitempty"`

	// NativeErrorText is the root-cause diagnostic, when recorded.
	NativeErrorText string `json:"native_error_text,omitempty"`
}
