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

// Package payload defines the structured error details carried by an
// application error: a stable error code, a description, and an optional
// write-once diagnostic text for the underlying technical cause.
package payload

import (
	"strings"

	"svclib.dev/apperr/errcode"
)

// ErrorCode pairs a stable code identifier with its human description.
// It is a plain value: copy it freely.
type ErrorCode struct {
	// Code is the machine-readable identity of the failure class,
	// e.g. "order_rejected". Store only normalized, validated codes here
	// (see errcode.Parse).
	Code errcode.Code `json:"code"`

	// Description explains the failure class in general terms, independent
	// of any single occurrence.
	Description string `json:"description,omitempty"`
}

// Payload is the structured detail object attached to an application error.
//
// Code and Description are fixed at construction. The native error text — the
// low-level diagnostic for the root technical cause, as opposed to the
// user-facing message — starts empty and can be written exactly once, either
// by the caller before raising the error or by apperr's root-cause backfill.
// The write-once rule is enforced here structurally instead of relying on
// callers to behave.
type Payload struct {
	Code        ErrorCode
	Description string

	nativeErrorText string
}

// New constructs a Payload with an empty native error text.
func New(code ErrorCode, description string) *Payload {
	return &Payload{Code: code, Description: description}
}

// NativeErrorText returns the diagnostic text for the underlying technical
// cause, or the empty string when none has been recorded.
func (p *Payload) NativeErrorText() string {
	if p == nil {
		return ""
	}
	return p.nativeErrorText
}

// SetNativeErrorText records the diagnostic text, first-write-wins.
//
// It reports whether the write happened: false when the payload already
// carries a text, or when the input is blank after trimming. The stored value
// is never overwritten or cleared.
func (p *Payload) SetNativeErrorText(text string) bool {
	if p == nil || p.nativeErrorText != "" {
		return false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	p.nativeErrorText = text
	return true
}
