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

package status

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Status is the canonical, validated representation of an operation outcome.
//
// It is a separate type (not just string) so that other packages can declare
// exactly which values they expect and so that raw user input cannot be mixed
// with validated values by accident.
type Status string

const (
	// Success indicates that the operation completed as requested.
	// It is never a legal domain status for an error value — apperr rejects
	// it at construction time.
	Success Status = "success"

	// Failure indicates that the operation was attempted and did not
	// complete. This is the default classification for error values.
	Failure Status = "failure"

	// Partial indicates that the operation completed for some of its targets
	// but not all of them (batch writes, fan-out calls, multi-step flows).
	Partial Status = "partial"

	// Unprocessed indicates that the operation was never attempted —
	// typically because a precondition failed or an earlier step in the same
	// unit of work already failed.
	Unprocessed Status = "unprocessed"
)

// ErrStatusInvalid is returned when a value cannot be parsed or validated as
// a domain status.
var ErrStatusInvalid = errors.New("status: unknown domain status")

// Ensure Status implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Status)(nil)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

// Values returns the closed set of declared statuses. The slice is a fresh
// copy on every call.
func Values() []Status {
	return []Status{Success, Failure, Partial, Unprocessed}
}

// Normalize takes an arbitrary string and brings it closer to canonical form:
// surrounding spaces are trimmed and the value is lowercased. It does NOT
// guarantee validity — callers should still use Parse or Validate.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Parse normalizes and validates a user-provided string. On success it
// returns a canonical Status value.
func Parse(s string) (Status, error) {
	st := Status(Normalize(s))
	if err := Validate(st); err != nil {
		return "", err
	}
	return st, nil
}

// MustParse is the panic-on-error variant of Parse, for var-block
// declarations with literal input.
func MustParse(s string) Status {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return st
}

// Validate checks whether st is one of the declared statuses.
func Validate(st Status) error {
	switch st {
	case Success, Failure, Partial, Unprocessed:
		return nil
	}
	return ErrStatusInvalid
}

// String returns the canonical string representation of the status.
func (st Status) String() string { return string(st) }

// MarshalText implements encoding.TextMarshaler. Unknown values refuse to
// marshal rather than leak out of process.
func (st Status) MarshalText() ([]byte, error) {
	if err := Validate(st); err != nil {
		return nil, err
	}
	return []byte(st), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is normalized
// and validated before assignment.
func (st *Status) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*st = parsed
	return nil
}
