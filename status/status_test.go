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
	"errors"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Status
	}{
		{"plain", "failure", Failure},
		{"upper", "FAILURE", Failure},
		{"spaces", "  partial  ", Partial},
		{"success parses fine on its own", "success", Success},
		{"unprocessed", "Unprocessed", Unprocessed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "ok", "failed", "partial_success"} {
		got, err := Parse(in)
		if err == nil {
			t.Fatalf("Parse(%q) = %q, want error", in, got)
		}
		if !errors.Is(err, ErrStatusInvalid) {
			t.Fatalf("Parse(%q) error = %v, want ErrStatusInvalid", in, err)
		}
	}
}

func TestValidate(t *testing.T) {
	for _, st := range Values() {
		if err := Validate(st); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", st, err)
		}
	}
	if err := Validate(Status("degraded")); err == nil {
		t.Fatalf("Validate(unknown) expected error")
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("definitely_not_a_status")
}

func TestStatus_TextRoundTrip(t *testing.T) {
	text, err := Failure.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}

	var back Status
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if back != Failure {
		t.Fatalf("round trip = %q, want %q", back, Failure)
	}

	if _, err := Status("degraded").MarshalText(); err == nil {
		t.Fatalf("MarshalText() on unknown status must return error")
	}
	var bad Status
	if err := bad.UnmarshalText([]byte("nope")); err == nil {
		t.Fatalf("UnmarshalText() expected error for unknown input")
	}
}

func TestValues_FreshCopy(t *testing.T) {
	v := Values()
	v[0] = Status("mutated")
	if Values()[0] != Success {
		t.Fatalf("Values() must return a fresh copy")
	}
}
