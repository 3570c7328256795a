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

package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the closed set of failure categories.
//
// It replaces what other ecosystems would model as an error subclass
// hierarchy: the three kinds share one validated record and add no fields or
// behavior of their own. They exist so that catching code can discriminate the
// failure category — e.g. route business errors to the client and system
// errors to alerting — without inspecting field values.
type Kind string

const (
	// KindBusiness marks violations of domain rules: the request was
	// understood but the domain refused it. Typically surfaced to the client
	// as-is with a 4xx status.
	KindBusiness Kind = "business"

	// KindSecurity marks authentication/authorization failures. Kept apart
	// from business errors so boundaries can apply stricter disclosure and
	// auditing policies.
	KindSecurity Kind = "security"

	// KindSystem marks technical failures: broken dependencies, timeouts,
	// bugs. Usually mapped to 5xx and wired into alerting rather than shown
	// to end users verbatim.
	KindSystem Kind = "system"
)

// ParseKind normalizes s (trim, lowercase) and validates it against the
// declared kinds.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

// Validate reports whether k is one of the declared kinds.
// The returned error wraps ErrInvalidArgument.
func (k Kind) Validate() error {
	switch k {
	case KindBusiness, KindSecurity, KindSystem:
		return nil
	}
	return fmt.Errorf("%w: unknown kind %q", ErrInvalidArgument, string(k))
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string { return string(k) }

// IsBusiness reports whether err is (or wraps) a KindBusiness *Error.
func IsBusiness(err error) bool { return isKind(err, KindBusiness) }

// IsSecurity reports whether err is (or wraps) a KindSecurity *Error.
func IsSecurity(err error) bool { return isKind(err, KindSecurity) }

// IsSystem reports whether err is (or wraps) a KindSystem *Error.
func IsSystem(err error) bool { return isKind(err, KindSystem) }

func isKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.kind == k
}
