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

package errcode

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated representation of an error-code
// identifier. Declaring it as its own type keeps raw user input and
// normalized values from being mixed up.
type Code string

// MinLength and MaxLength bound the length of a canonical code.
const (
	// MinLength rejects ultra-short, ambiguous identifiers like "a" or "x1".
	MinLength = 3

	// MaxLength is generous enough for descriptive codes like
	// "payment_method_expired" while keeping accidental blobs out.
	MaxLength = 64
)

// codeFmt is the canonical pattern for a code: a lowercase letter followed by
// lowercase letters, digits or underscores. The quantifier {2,63} ties the
// total length to MinLength/MaxLength above — keep them in sync.
const codeFmt = `^[a-z][a-z0-9_]{2,63}$`

var codeRe = regexp.MustCompile(codeFmt)

// ErrCodeInvalid is returned when a value cannot be parsed or validated as an
// error code.
var ErrCodeInvalid = errors.New("errcode: invalid code")

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Normalize brings an arbitrary string closer to canonical form. Only
// obvious, non-lossy transformations are applied: trim, lowercase, and
// '-' -> '_'. The result is not guaranteed to be valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "-", "_")
}

// Parse normalizes and validates a user-provided string, returning the
// canonical Code value on success.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return "", err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse, for declaring
// package-level code constants in var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks whether c is a canonical code. The empty code is invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// String returns the canonical string representation of the code.
func (c Code) String() string { return string(c) }

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is normalized
// and validated before assignment.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
